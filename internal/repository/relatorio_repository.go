package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/davg505/portal-estagio-api/internal/models"
)

// Document slots updatable by the upload endpoints. Routes resolve to one of
// these; anything else never reaches the repository.
const (
	SlotRelatorio                = "relatorio"
	SlotCartaApresentacao        = "carta_apresentacao"
	SlotCartaAvaliacao           = "carta_avaliacao"
	SlotComprovanteVinculo       = "comprovante_vinculo"
	SlotRequerimentoEquivalencia = "requerimento_equivalencia"
)

var icSlots = []string{SlotRelatorio, SlotCartaApresentacao, SlotCartaAvaliacao}

var epSlots = []string{SlotRelatorio, SlotComprovanteVinculo, SlotCartaApresentacao, SlotRequerimentoEquivalencia}

func slotAllowed(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// RelatorioRepository manages the per-modality document bundles.
type RelatorioRepository struct {
	db *sqlx.DB
}

// NewRelatorioRepository constructs a RelatorioRepository.
func NewRelatorioRepository(db *sqlx.DB) *RelatorioRepository {
	return &RelatorioRepository{db: db}
}

// GetEPByAluno returns the professional-internship bundle, or nil.
func (r *RelatorioRepository) GetEPByAluno(ctx context.Context, idAluno int64) (*models.RelatorioEP, error) {
	var bundle models.RelatorioEP
	query := fmt.Sprintf(`SELECT %s FROM public.relatoriosep WHERE id_aluno = $1`, relatorioEPColumns)
	if err := r.db.GetContext(ctx, &bundle, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get relatoriosep: %w", err)
	}
	return &bundle, nil
}

// GetICByAluno returns the scientific-initiation bundle, or nil.
func (r *RelatorioRepository) GetICByAluno(ctx context.Context, idAluno int64) (*models.RelatorioIC, error) {
	var bundle models.RelatorioIC
	query := fmt.Sprintf(`SELECT %s FROM public.relatorios_ic WHERE id_aluno = $1`, relatorioICColumns)
	if err := r.db.GetContext(ctx, &bundle, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get relatorios_ic: %w", err)
	}
	return &bundle, nil
}

// SetICSlot points one scientific-initiation slot at a stored file, scoped by
// the student id. The first document inserts the bundle row.
func (r *RelatorioRepository) SetICSlot(ctx context.Context, idAluno int64, slot, path string) error {
	if !slotAllowed(icSlots, slot) {
		return fmt.Errorf("unknown ic slot %q", slot)
	}
	return r.setSlot(ctx, "public.relatorios_ic", icSlots, idAluno, slot, path)
}

// SetEPSlot points one professional-internship slot at a stored file.
func (r *RelatorioRepository) SetEPSlot(ctx context.Context, idAluno int64, slot, path string) error {
	if !slotAllowed(epSlots, slot) {
		return fmt.Errorf("unknown ep slot %q", slot)
	}
	return r.setSlot(ctx, "public.relatoriosep", epSlots, idAluno, slot, path)
}

func (r *RelatorioRepository) setSlot(ctx context.Context, table string, slots []string, idAluno int64, slot, path string) error {
	// slot is validated against the allowed set above, never caller input.
	update := fmt.Sprintf(`UPDATE %s SET %s = $1, %s_existe = $2 WHERE id_aluno = $3`, table, slot, slot)
	res, err := r.db.ExecContext(ctx, update, path, models.FlagSim, idAluno)
	if err != nil {
		return fmt.Errorf("update slot %s: %w", slot, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update slot rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	columns := fmt.Sprintf(`(id_aluno, %s, %s_existe`, slot, slot)
	values := `VALUES ($1, $2, $3`
	args := []interface{}{idAluno, path, models.FlagSim}
	for _, other := range slots {
		if other == slot {
			continue
		}
		columns += fmt.Sprintf(", %s_existe", other)
		values += fmt.Sprintf(", $%d", len(args)+1)
		args = append(args, models.FlagNao)
	}
	insert := fmt.Sprintf(`INSERT INTO %s %s) %s)`, table, columns, values)
	if _, err := r.db.ExecContext(ctx, insert, args...); err != nil {
		return fmt.Errorf("insert bundle with slot %s: %w", slot, err)
	}
	return nil
}
