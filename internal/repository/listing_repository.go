package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/davg505/portal-estagio-api/internal/models"
)

// ListingRepository serves the unfiltered table listings. These back the
// legacy public endpoints and are intentionally unscoped.
type ListingRepository struct {
	db *sqlx.DB
}

// NewListingRepository constructs a ListingRepository.
func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Alunos returns every student row.
func (r *ListingRepository) Alunos(ctx context.Context) ([]models.Aluno, error) {
	rows := []models.Aluno{}
	query := `SELECT id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token
        FROM public.aluno ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list alunos: %w", err)
	}
	return rows, nil
}

// DadosFatec returns every institutional record.
func (r *ListingRepository) DadosFatec(ctx context.Context) ([]models.DadosFatec, error) {
	rows := []models.DadosFatec{}
	query := `SELECT id, id_aluno, curso, periodo, ciclo, ra FROM public.dadosfatec ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list dadosfatec: %w", err)
	}
	return rows, nil
}

// DadosPessoais returns every personal data record.
func (r *ListingRepository) DadosPessoais(ctx context.Context) ([]models.DadosPessoal, error) {
	rows := []models.DadosPessoal{}
	query := `SELECT id, id_aluno, cpf, rg, data_nascimento, telefone, endereco,
        nome_representante, email_representante, telefone_representante
        FROM public.dadospessoalaluno ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list dadospessoalaluno: %w", err)
	}
	return rows, nil
}

// Empresas returns every company.
func (r *ListingRepository) Empresas(ctx context.Context) ([]models.Empresa, error) {
	rows := []models.Empresa{}
	query := `SELECT id, cnpj, razao_social, nome_fantasia, telefone, email, endereco
        FROM public.empresa ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	return rows, nil
}

// EmpresaAlunos returns every student-company link.
func (r *ListingRepository) EmpresaAlunos(ctx context.Context) ([]models.EmpresaAluno, error) {
	rows := []models.EmpresaAluno{}
	query := `SELECT id, id_aluno, id_empresa, cargo, supervisor, telefone_supervisor
        FROM public.empresaaluno ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list empresaaluno: %w", err)
	}
	return rows, nil
}

// Estagios returns every internship status record.
func (r *ListingRepository) Estagios(ctx context.Context) ([]models.Estagio, error) {
	rows := []models.Estagio{}
	query := `SELECT id, id_aluno, status, solicitacao, status_termo, termo_assinado,
        plano_entregue, relatorio_entregue, avaliacao_entregue,
        data_inicio, data_termino, carga_horaria, supervisor_empresa
        FROM public.estagio ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list estagios: %w", err)
	}
	return rows, nil
}
