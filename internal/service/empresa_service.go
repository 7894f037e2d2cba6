package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
)

type empresaRepository interface {
	GetDetalheByAluno(ctx context.Context, idAluno int64) (*models.EmpresaAlunoDetalhe, error)
	RegisterForAluno(ctx context.Context, idAluno int64, req dto.AddDadosEmpresaRequest) (*models.EmpresaAlunoDetalhe, error)
}

// EmpresaService manages the student's hosting company.
type EmpresaService struct {
	repo      empresaRepository
	validator *validator.Validate
	logger    *zap.Logger
	timeout   time.Duration
}

// NewEmpresaService constructs an EmpresaService.
func NewEmpresaService(repo empresaRepository, validate *validator.Validate, logger *zap.Logger, timeout time.Duration) *EmpresaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EmpresaService{repo: repo, validator: validate, logger: logger, timeout: timeout}
}

// GetDetalhe returns the student's company link with the company row; nil
// when the student has none.
func (s *EmpresaService) GetDetalhe(ctx context.Context, idAluno int64) (*models.EmpresaAlunoDetalhe, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	detalhe, err := s.repo.GetDetalheByAluno(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return detalhe, nil
}

// Register links the student to a company, reusing an existing company with
// the same CNPJ instead of duplicating it.
func (s *EmpresaService) Register(ctx context.Context, idAluno int64, req dto.AddDadosEmpresaRequest) (*models.EmpresaAlunoDetalhe, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	detalhe, err := s.repo.RegisterForAluno(ctx, idAluno, req)
	if err != nil {
		return nil, storeError(err, "")
	}
	return detalhe, nil
}
