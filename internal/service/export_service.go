package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/models"
	"github.com/davg505/portal-estagio-api/pkg/export"
)

type rosterRepository interface {
	Roster(ctx context.Context) ([]models.EstagioRoster, error)
}

// ExportService renders the professor-facing internship roster as CSV or
// PDF.
type ExportService struct {
	repo    rosterRepository
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
	timeout time.Duration
}

// NewExportService constructs an ExportService.
func NewExportService(repo rosterRepository, logger *zap.Logger, timeout time.Duration) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:    repo,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		timeout: timeout,
	}
}

// RosterCSV renders the roster as CSV bytes.
func (s *ExportService) RosterCSV(ctx context.Context) ([]byte, error) {
	table, err := s.rosterTable(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.csv.Render(*table)
	if err != nil {
		return nil, storeError(err, "")
	}
	return raw, nil
}

// RosterPDF renders the roster as PDF bytes.
func (s *ExportService) RosterPDF(ctx context.Context) ([]byte, error) {
	table, err := s.rosterTable(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.pdf.Render(*table, "Relação de Estágios")
	if err != nil {
		return nil, storeError(err, "")
	}
	return raw, nil
}

func (s *ExportService) rosterTable(ctx context.Context) (*export.Table, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	rows, err := s.repo.Roster(ctx)
	if err != nil {
		return nil, storeError(err, "")
	}

	table := &export.Table{
		Columns: []string{"Aluno", "RA", "Curso", "Modalidade", "Status", "Empresa"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.NomeAluno,
			row.RA,
			row.Curso,
			row.Modalidade,
			deref(row.Status),
			deref(row.NomeEmpresa),
		})
	}
	return table, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
