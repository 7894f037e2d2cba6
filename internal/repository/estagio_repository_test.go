package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
)

func newEstagioRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

var estagioTestColumns = []string{"id", "id_aluno", "status", "solicitacao", "status_termo", "termo_assinado",
	"plano_entregue", "relatorio_entregue", "avaliacao_entregue",
	"data_inicio", "data_termino", "carga_horaria", "supervisor_empresa"}

func TestEstagioRepositoryGetByAlunoAbsent(t *testing.T) {
	db, mock, cleanup := newEstagioRepoMock(t)
	defer cleanup()

	repo := NewEstagioRepository(db)
	mock.ExpectQuery("SELECT id, id_aluno, status").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	estagio, err := repo.GetByAluno(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, estagio)
}

func TestEstagioRepositoryCreateSolicitacao(t *testing.T) {
	db, mock, cleanup := newEstagioRepoMock(t)
	defer cleanup()

	repo := NewEstagioRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO public.estagiosolicitacao").
		WithArgs(int64(7), sqlmock.AnyArg(), "ACME LTDA", "12345678000199", "Estagiário", "2026-09-01", "30h").
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_aluno", "data_solicitacao", "nome_empresa", "cnpj", "cargo", "data_inicio", "carga_horaria"}).
			AddRow(int64(5), int64(7), "2026-08-29", "ACME LTDA", "12345678000199", "Estagiário", "2026-09-01", "30h"))
	mock.ExpectQuery("INSERT INTO public.estagio").
		WithArgs(int64(7), models.EstagioStatusPendente, models.EstagioSolicitado, models.StatusTermoPendente, models.FlagNao).
		WillReturnRows(sqlmock.NewRows(estagioTestColumns).
			AddRow(int64(3), int64(7), models.EstagioStatusPendente, models.EstagioSolicitado, models.StatusTermoPendente,
				models.FlagNao, models.FlagNao, models.FlagNao, models.FlagNao, nil, nil, nil, nil))
	mock.ExpectQuery("UPDATE public.aluno SET modalidade").
		WithArgs(models.ModalidadeEstagio, models.EstagioStatusPendente, int64(7)).
		WillReturnRows(sqlmock.NewRows(alunoColumns).
			AddRow(int64(7), "Maria", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", models.ModalidadeEstagio, models.EstagioStatusPendente, nil))
	mock.ExpectCommit()

	out, err := repo.CreateSolicitacao(context.Background(), 7, dto.SolicitacaoEstagioRequest{
		NomeEmpresa:  "ACME LTDA",
		CNPJ:         "12345678000199",
		Cargo:        "Estagiário",
		DataInicio:   "2026-09-01",
		CargaHoraria: "30h",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EstagioStatusPendente, out.Estagio.Status)
	assert.Equal(t, models.ModalidadeEstagio, out.Aluno.Modalidade)
	assert.Equal(t, models.FlagNao, out.Estagio.TermoAssinado)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstagioRepositoryCreateSolicitacaoRollsBackOnInsertFailure(t *testing.T) {
	db, mock, cleanup := newEstagioRepoMock(t)
	defer cleanup()

	repo := NewEstagioRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO public.estagiosolicitacao").
		WithArgs(int64(7), sqlmock.AnyArg(), "ACME LTDA", "12345678000199", "", "", "").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.CreateSolicitacao(context.Background(), 7, dto.SolicitacaoEstagioRequest{
		NomeEmpresa: "ACME LTDA",
		CNPJ:        "12345678000199",
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstagioRepositoryUpdateDados(t *testing.T) {
	db, mock, cleanup := newEstagioRepoMock(t)
	defer cleanup()

	repo := NewEstagioRepository(db)
	mock.ExpectQuery("UPDATE public.estagio").
		WithArgs("2026-09-01", "2026-12-20", "30h", "Chefe", int64(7)).
		WillReturnRows(sqlmock.NewRows(estagioTestColumns).
			AddRow(int64(3), int64(7), models.EstagioStatusPendente, models.EstagioSolicitado, models.StatusTermoPendente,
				models.FlagNao, models.FlagNao, models.FlagNao, models.FlagNao, "2026-09-01", "2026-12-20", "30h", "Chefe"))
	estagio, err := repo.UpdateDados(context.Background(), 7, dto.AddDadosEstagioRequest{
		DataInicio:        "2026-09-01",
		DataTermino:       "2026-12-20",
		CargaHoraria:      "30h",
		SupervisorEmpresa: "Chefe",
	})
	require.NoError(t, err)
	require.NotNil(t, estagio.DataInicio)
	assert.Equal(t, "2026-09-01", *estagio.DataInicio)
}

func TestEstagioRepositoryUpdateDadosMissingRecord(t *testing.T) {
	db, mock, cleanup := newEstagioRepoMock(t)
	defer cleanup()

	repo := NewEstagioRepository(db)
	mock.ExpectQuery("UPDATE public.estagio").
		WithArgs("2026-09-01", "", "30h", "", int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateDados(context.Background(), 9, dto.AddDadosEstagioRequest{
		DataInicio:   "2026-09-01",
		CargaHoraria: "30h",
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEstagioRepositoryRoster(t *testing.T) {
	db, mock, cleanup := newEstagioRepoMock(t)
	defer cleanup()

	repo := NewEstagioRepository(db)
	rows := sqlmock.NewRows([]string{"nome_aluno", "ra", "curso", "modalidade", "status", "nome_empresa"}).
		AddRow("Maria", "123456", "ADS", models.ModalidadeEstagio, models.EstagioStatusPendente, "ACME LTDA").
		AddRow("Joao", "654321", "GE", models.ModalidadeNenhuma, nil, nil)
	mock.ExpectQuery("SELECT a.nome AS nome_aluno").WillReturnRows(rows)

	roster, err := repo.Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Maria", roster[0].NomeAluno)
	assert.Nil(t, roster[1].Status)
}
