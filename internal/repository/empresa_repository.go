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

// EmpresaRepository manages companies and the student-company link table.
type EmpresaRepository struct {
	db *sqlx.DB
}

// NewEmpresaRepository constructs an EmpresaRepository.
func NewEmpresaRepository(db *sqlx.DB) *EmpresaRepository {
	return &EmpresaRepository{db: db}
}

// GetDetalheByAluno returns the student's company link joined with the
// company row, or nil when the student has none.
func (r *EmpresaRepository) GetDetalheByAluno(ctx context.Context, idAluno int64) (*models.EmpresaAlunoDetalhe, error) {
	var detalhe models.EmpresaAlunoDetalhe
	query := `SELECT ea.id, ea.id_aluno, ea.id_empresa, ea.cargo, ea.supervisor, ea.telefone_supervisor,
        e.cnpj, e.razao_social, e.nome_fantasia
        FROM public.empresaaluno ea
        JOIN public.empresa e ON e.id = ea.id_empresa
        WHERE ea.id_aluno = $1`
	if err := r.db.GetContext(ctx, &detalhe, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa do aluno: %w", err)
	}
	return &detalhe, nil
}

// RegisterForAluno links the student to a company. The company is looked up
// by CNPJ first; an existing one is reused, otherwise it is inserted. Both
// writes share one transaction.
func (r *EmpresaRepository) RegisterForAluno(ctx context.Context, idAluno int64, req dto.AddDadosEmpresaRequest) (*models.EmpresaAlunoDetalhe, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin register empresa: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var idEmpresa int64
	err = tx.GetContext(ctx, &idEmpresa, `SELECT id FROM public.empresa WHERE cnpj = $1`, req.CNPJ)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		insert := `INSERT INTO public.empresa (cnpj, razao_social, nome_fantasia, telefone, email, endereco)
            VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
            RETURNING id`
		if err := tx.GetContext(ctx, &idEmpresa, insert,
			req.CNPJ, req.RazaoSocial, req.NomeFantasia, req.Telefone, req.Email, req.Endereco); err != nil {
			return nil, fmt.Errorf("insert empresa: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("find empresa by cnpj: %w", err)
	}

	var detalhe models.EmpresaAlunoDetalhe
	link := `INSERT INTO public.empresaaluno (id_aluno, id_empresa, cargo, supervisor, telefone_supervisor)
        VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
        RETURNING id, id_aluno, id_empresa, cargo, supervisor, telefone_supervisor`
	if err := tx.GetContext(ctx, &detalhe, link,
		idAluno, idEmpresa, req.Cargo, req.Supervisor, req.TelefoneSupervisor); err != nil {
		return nil, fmt.Errorf("insert empresaaluno: %w", err)
	}
	detalhe.CNPJ = req.CNPJ
	detalhe.RazaoSocial = req.RazaoSocial
	if req.NomeFantasia != "" {
		detalhe.NomeFantasia = &req.NomeFantasia
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit register empresa: %w", err)
	}
	return &detalhe, nil
}
