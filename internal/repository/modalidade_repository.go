package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
)

// ModalidadeRepository manages the scientific-initiation and professional-
// internship detail rows and their report bundles.
type ModalidadeRepository struct {
	db *sqlx.DB
}

// NewModalidadeRepository constructs a ModalidadeRepository.
func NewModalidadeRepository(db *sqlx.DB) *ModalidadeRepository {
	return &ModalidadeRepository{db: db}
}

const (
	relatorioICColumns = `id, id_aluno, relatorio, relatorio_existe,
        carta_apresentacao, carta_apresentacao_existe,
        carta_avaliacao, carta_avaliacao_existe`
	relatorioEPColumns = `id, id_aluno, relatorio, relatorio_existe,
        comprovante_vinculo, comprovante_vinculo_existe,
        carta_apresentacao, carta_apresentacao_existe,
        requerimento_equivalencia, requerimento_equivalencia_existe`
)

// GetIC returns the student's scientific-initiation detail row, or nil.
func (r *ModalidadeRepository) GetIC(ctx context.Context, idAluno int64) (*models.IniciacaoCientifica, error) {
	var ic models.IniciacaoCientifica
	query := `SELECT id, id_aluno, orientador, tema, data_inicio, data_termino
        FROM public.iniciacaocientifica WHERE id_aluno = $1`
	if err := r.db.GetContext(ctx, &ic, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ic: %w", err)
	}
	return &ic, nil
}

// GetEP returns the student's professional-internship detail row, or nil.
func (r *ModalidadeRepository) GetEP(ctx context.Context, idAluno int64) (*models.EstagioProfissional, error) {
	var ep models.EstagioProfissional
	query := `SELECT id, id_aluno, empresa, cargo, data_inicio, carga_horaria
        FROM public.estagioprofissional WHERE id_aluno = $1`
	if err := r.db.GetContext(ctx, &ep, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ep: %w", err)
	}
	return &ep, nil
}

// SelectIC switches the student to the scientific-initiation modality:
// updates the student row, inserts the detail row and seeds the all-absent
// report bundle, in one transaction.
func (r *ModalidadeRepository) SelectIC(ctx context.Context, idAluno int64, req dto.SolicitacaoICRequest) (*dto.SolicitacaoICResponse, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin solicitacao ic: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var out dto.SolicitacaoICResponse

	updateAluno := `UPDATE public.aluno SET modalidade = $1 WHERE id = $2
        RETURNING id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token`
	if err := tx.GetContext(ctx, &out.Aluno, updateAluno, models.ModalidadeIniciacaoCientifica, idAluno); err != nil {
		return nil, err
	}

	insertDetalhe := `INSERT INTO public.iniciacaocientifica (id_aluno, orientador, tema, data_inicio, data_termino)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''))
        RETURNING id, id_aluno, orientador, tema, data_inicio, data_termino`
	if err := tx.GetContext(ctx, &out.Detalhe, insertDetalhe,
		idAluno, req.Orientador, req.Tema, req.DataInicio, req.DataTermino); err != nil {
		return nil, fmt.Errorf("insert ic: %w", err)
	}

	insertBundle := fmt.Sprintf(`INSERT INTO public.relatorios_ic
        (id_aluno, relatorio_existe, carta_apresentacao_existe, carta_avaliacao_existe)
        VALUES ($1, $2, $2, $2)
        RETURNING %s`, relatorioICColumns)
	if err := tx.GetContext(ctx, &out.Relatorios, insertBundle, idAluno, models.FlagNao); err != nil {
		return nil, fmt.Errorf("insert relatorios ic: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit solicitacao ic: %w", err)
	}
	return &out, nil
}

// SelectEP switches the student to the professional-internship modality with
// the same three dependent writes as SelectIC.
func (r *ModalidadeRepository) SelectEP(ctx context.Context, idAluno int64, req dto.SolicitacaoEPRequest) (*dto.SolicitacaoEPResponse, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin solicitacao ep: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var out dto.SolicitacaoEPResponse

	updateAluno := `UPDATE public.aluno SET modalidade = $1 WHERE id = $2
        RETURNING id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token`
	if err := tx.GetContext(ctx, &out.Aluno, updateAluno, models.ModalidadeEstagioProfissional, idAluno); err != nil {
		return nil, err
	}

	insertDetalhe := `INSERT INTO public.estagioprofissional (id_aluno, empresa, cargo, data_inicio, carga_horaria)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''))
        RETURNING id, id_aluno, empresa, cargo, data_inicio, carga_horaria`
	if err := tx.GetContext(ctx, &out.Detalhe, insertDetalhe,
		idAluno, req.Empresa, req.Cargo, req.DataInicio, req.CargaHoraria); err != nil {
		return nil, fmt.Errorf("insert ep: %w", err)
	}

	insertBundle := fmt.Sprintf(`INSERT INTO public.relatoriosep
        (id_aluno, relatorio_existe, comprovante_vinculo_existe, carta_apresentacao_existe, requerimento_equivalencia_existe)
        VALUES ($1, $2, $2, $2, $2)
        RETURNING %s`, relatorioEPColumns)
	if err := tx.GetContext(ctx, &out.Relatorios, insertBundle, idAluno, models.FlagNao); err != nil {
		return nil, fmt.Errorf("insert relatorios ep: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit solicitacao ep: %w", err)
	}
	return &out, nil
}

// CancelIC resets the student's modality and removes the detail row and the
// report bundle. The transaction rolls back when the student has no detail
// row, reported as sql.ErrNoRows.
func (r *ModalidadeRepository) CancelIC(ctx context.Context, idAluno int64) (*models.Aluno, error) {
	return r.cancel(ctx, idAluno, "public.iniciacaocientifica", "public.relatorios_ic")
}

// CancelEP is the professional-internship counterpart of CancelIC.
func (r *ModalidadeRepository) CancelEP(ctx context.Context, idAluno int64) (*models.Aluno, error) {
	return r.cancel(ctx, idAluno, "public.estagioprofissional", "public.relatoriosep")
}

func (r *ModalidadeRepository) cancel(ctx context.Context, idAluno int64, detailTable, bundleTable string) (*models.Aluno, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin cancelamento: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var aluno models.Aluno
	updateAluno := `UPDATE public.aluno SET modalidade = $1 WHERE id = $2
        RETURNING id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token`
	if err := tx.GetContext(ctx, &aluno, updateAluno, models.ModalidadeNenhuma, idAluno); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id_aluno = $1`, detailTable), idAluno)
	if err != nil {
		return nil, fmt.Errorf("delete detalhe: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("delete detalhe rows: %w", err)
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id_aluno = $1`, bundleTable), idAluno); err != nil {
		return nil, fmt.Errorf("delete relatorios: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancelamento: %w", err)
	}
	return &aluno, nil
}
