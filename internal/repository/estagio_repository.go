package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
)

// EstagioRepository manages internship status records and their requests.
type EstagioRepository struct {
	db *sqlx.DB
}

// NewEstagioRepository constructs an EstagioRepository.
func NewEstagioRepository(db *sqlx.DB) *EstagioRepository {
	return &EstagioRepository{db: db}
}

const estagioColumns = `id, id_aluno, status, solicitacao, status_termo, termo_assinado,
        plano_entregue, relatorio_entregue, avaliacao_entregue,
        data_inicio, data_termino, carga_horaria, supervisor_empresa`

// GetByAluno returns the student's status record, or nil when absent.
func (r *EstagioRepository) GetByAluno(ctx context.Context, idAluno int64) (*models.Estagio, error) {
	var estagio models.Estagio
	query := fmt.Sprintf(`SELECT %s FROM public.estagio WHERE id_aluno = $1`, estagioColumns)
	if err := r.db.GetContext(ctx, &estagio, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estagio: %w", err)
	}
	return &estagio, nil
}

// GetInfoByAluno returns the status record joined with the originating
// request, or nil when absent.
func (r *EstagioRepository) GetInfoByAluno(ctx context.Context, idAluno int64) (*models.EstagioInfo, error) {
	var info models.EstagioInfo
	query := `SELECT e.id, e.id_aluno, e.status, e.solicitacao, e.status_termo, e.termo_assinado,
        e.plano_entregue, e.relatorio_entregue, e.avaliacao_entregue,
        e.data_inicio, e.data_termino, e.carga_horaria, e.supervisor_empresa,
        s.nome_empresa, s.cnpj, s.data_solicitacao
        FROM public.estagio e
        LEFT JOIN public.estagiosolicitacao s ON s.id_aluno = e.id_aluno
        WHERE e.id_aluno = $1`
	if err := r.db.GetContext(ctx, &info, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estagio info: %w", err)
	}
	return &info, nil
}

// GetSolicitacaoByAluno returns the student's internship request, or nil.
func (r *EstagioRepository) GetSolicitacaoByAluno(ctx context.Context, idAluno int64) (*models.EstagioSolicitacao, error) {
	var solicitacao models.EstagioSolicitacao
	query := `SELECT id, id_aluno, data_solicitacao, nome_empresa, cnpj, cargo, data_inicio, carga_horaria
        FROM public.estagiosolicitacao WHERE id_aluno = $1`
	if err := r.db.GetContext(ctx, &solicitacao, query, idAluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitacao: %w", err)
	}
	return &solicitacao, nil
}

// CreateSolicitacao opens an internship request: inserts the request row,
// inserts the defaulted status record and updates the student's modality,
// all in one transaction.
func (r *EstagioRepository) CreateSolicitacao(ctx context.Context, idAluno int64, req dto.SolicitacaoEstagioRequest) (*dto.SolicitacaoEstagioResponse, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin solicitacao estagio: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var out dto.SolicitacaoEstagioResponse

	insertSolicitacao := `INSERT INTO public.estagiosolicitacao
        (id_aluno, data_solicitacao, nome_empresa, cnpj, cargo, data_inicio, carga_horaria)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
        RETURNING id, id_aluno, data_solicitacao, nome_empresa, cnpj, cargo, data_inicio, carga_horaria`
	if err := tx.GetContext(ctx, &out.Solicitacao, insertSolicitacao,
		idAluno, time.Now().Format("2006-01-02"), req.NomeEmpresa, req.CNPJ,
		req.Cargo, req.DataInicio, req.CargaHoraria); err != nil {
		return nil, fmt.Errorf("insert solicitacao: %w", err)
	}

	insertEstagio := fmt.Sprintf(`INSERT INTO public.estagio
        (id_aluno, status, solicitacao, status_termo, termo_assinado, plano_entregue, relatorio_entregue, avaliacao_entregue)
        VALUES ($1, $2, $3, $4, $5, $5, $5, $5)
        RETURNING %s`, estagioColumns)
	if err := tx.GetContext(ctx, &out.Estagio, insertEstagio,
		idAluno, models.EstagioStatusPendente, models.EstagioSolicitado,
		models.StatusTermoPendente, models.FlagNao); err != nil {
		return nil, fmt.Errorf("insert estagio: %w", err)
	}

	updateAluno := `UPDATE public.aluno SET modalidade = $1, status_estagio = $2 WHERE id = $3
        RETURNING id, nome, email, senha, ra, curso, semestre, modalidade, status_estagio, token`
	if err := tx.GetContext(ctx, &out.Aluno, updateAluno,
		models.ModalidadeEstagio, models.EstagioStatusPendente, idAluno); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit solicitacao estagio: %w", err)
	}
	return &out, nil
}

// UpdateDados records the signed internship's working details, scoped by the
// student id. Returns sql.ErrNoRows when the student has no status record.
func (r *EstagioRepository) UpdateDados(ctx context.Context, idAluno int64, req dto.AddDadosEstagioRequest) (*models.Estagio, error) {
	var estagio models.Estagio
	query := fmt.Sprintf(`UPDATE public.estagio
        SET data_inicio = $1, data_termino = NULLIF($2, ''), carga_horaria = $3,
            supervisor_empresa = NULLIF($4, '')
        WHERE id_aluno = $5
        RETURNING %s`, estagioColumns)
	if err := r.db.GetContext(ctx, &estagio, query,
		req.DataInicio, req.DataTermino, req.CargaHoraria, req.SupervisorEmpresa, idAluno); err != nil {
		return nil, err
	}
	return &estagio, nil
}

// Roster returns one line per student for the professor-facing export.
func (r *EstagioRepository) Roster(ctx context.Context) ([]models.EstagioRoster, error) {
	rows := []models.EstagioRoster{}
	query := `SELECT a.nome AS nome_aluno, a.ra, a.curso, a.modalidade,
        e.status, s.nome_empresa
        FROM public.aluno a
        LEFT JOIN public.estagio e ON e.id_aluno = a.id
        LEFT JOIN public.estagiosolicitacao s ON s.id_aluno = a.id
        ORDER BY a.nome`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return rows, nil
}
