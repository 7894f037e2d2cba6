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

// AlunoRepository manages persistence for student records and their personal
// data.
type AlunoRepository struct {
	db *sqlx.DB
}

// NewAlunoRepository constructs an AlunoRepository.
func NewAlunoRepository(db *sqlx.DB) *AlunoRepository {
	return &AlunoRepository{db: db}
}

// FindByEmail fetches a student by login email.
func (r *AlunoRepository) FindByEmail(ctx context.Context, email string) (*models.Aluno, error) {
	var aluno models.Aluno
	query := `SELECT id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token
        FROM public.aluno WHERE email = $1`
	if err := r.db.GetContext(ctx, &aluno, query, email); err != nil {
		return nil, err
	}
	return &aluno, nil
}

// FindByID fetches a student by primary key.
func (r *AlunoRepository) FindByID(ctx context.Context, id int64) (*models.Aluno, error) {
	var aluno models.Aluno
	query := `SELECT id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token
        FROM public.aluno WHERE id = $1`
	if err := r.db.GetContext(ctx, &aluno, query, id); err != nil {
		return nil, err
	}
	return &aluno, nil
}

// StoreToken records the latest issued token on the student row. Kept for
// future invalidation; verification does not consult it.
func (r *AlunoRepository) StoreToken(ctx context.Context, id int64, token string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE public.aluno SET token = $1 WHERE id = $2`, token, id)
	if err != nil {
		return fmt.Errorf("store aluno token: %w", err)
	}
	return nil
}

// GetDadosPessoal returns the student's personal data row, or nil when the
// student has none yet.
func (r *AlunoRepository) GetDadosPessoal(ctx context.Context, idAluno int64) (*models.DadosPessoal, error) {
	var dados models.DadosPessoal
	query := `SELECT id, id_aluno, cpf, rg, data_nascimento, telefone, endereco,
        nome_representante, email_representante, telefone_representante
        FROM public.dadospessoalaluno WHERE id_aluno = $1`
	if err := r.db.GetContext(ctx, &dados, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dados pessoais: %w", err)
	}
	return &dados, nil
}

// GetDadosFatecAluno returns the institutional record joined with the
// student row, or nil when absent.
func (r *AlunoRepository) GetDadosFatecAluno(ctx context.Context, idAluno int64) (*models.DadosFatecAluno, error) {
	var dados models.DadosFatecAluno
	query := `SELECT d.id, d.id_aluno, d.curso, d.periodo, d.ciclo, d.ra,
        a.nome AS nome_aluno, a.email AS email_aluno
        FROM public.dadosfatec d
        JOIN public.aluno a ON a.id = d.id_aluno
        WHERE d.id_aluno = $1`
	if err := r.db.GetContext(ctx, &dados, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dados fatec: %w", err)
	}
	return &dados, nil
}

// UpdateRepresentante updates the legal representative contact block scoped
// by the student id. Returns sql.ErrNoRows when the student has no personal
// data row.
func (r *AlunoRepository) UpdateRepresentante(ctx context.Context, idAluno int64, req dto.AtualizacaoRepresentanteRequest) (*models.DadosPessoal, error) {
	var dados models.DadosPessoal
	query := `UPDATE public.dadospessoalaluno
        SET nome_representante = $1, email_representante = $2, telefone_representante = $3
        WHERE id_aluno = $4
        RETURNING id, id_aluno, cpf, rg, data_nascimento, telefone, endereco,
            nome_representante, email_representante, telefone_representante`
	if err := r.db.GetContext(ctx, &dados, query,
		req.NomeRepresentante, req.EmailRepresentante, req.TelefoneRepresentante, idAluno); err != nil {
		return nil, err
	}
	return &dados, nil
}

// UpdateDadosAluno updates the student row and the personal data row inside a
// single transaction. Either both statements hit a row or nothing commits.
func (r *AlunoRepository) UpdateDadosAluno(ctx context.Context, idAluno int64, req dto.AtualizacaoDadosAlunoRequest) (*models.Aluno, *models.DadosPessoal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin update dados aluno: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var aluno models.Aluno
	alunoQuery := `UPDATE public.aluno SET nome = $1 WHERE id = $2
        RETURNING id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token`
	if err := tx.GetContext(ctx, &aluno, alunoQuery, req.Nome, idAluno); err != nil {
		return nil, nil, err
	}

	var dados models.DadosPessoal
	dadosQuery := `UPDATE public.dadospessoalaluno
        SET telefone = $1, endereco = $2,
            cpf = COALESCE(NULLIF($3, ''), cpf),
            rg = COALESCE(NULLIF($4, ''), rg)
        WHERE id_aluno = $5
        RETURNING id, id_aluno, cpf, rg, data_nascimento, telefone, endereco,
            nome_representante, email_representante, telefone_representante`
	if err := tx.GetContext(ctx, &dados, dadosQuery,
		req.Telefone, req.Endereco, req.CPF, req.RG, idAluno); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit update dados aluno: %w", err)
	}
	return &aluno, &dados, nil
}
