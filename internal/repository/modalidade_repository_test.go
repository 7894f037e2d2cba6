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

func newModalidadeRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

var relatorioICTestColumns = []string{"id", "id_aluno", "relatorio", "relatorio_existe",
	"carta_apresentacao", "carta_apresentacao_existe",
	"carta_avaliacao", "carta_avaliacao_existe"}

func TestModalidadeRepositorySelectIC(t *testing.T) {
	db, mock, cleanup := newModalidadeRepoMock(t)
	defer cleanup()

	repo := NewModalidadeRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE public.aluno SET modalidade").
		WithArgs(models.ModalidadeIniciacaoCientifica, int64(7)).
		WillReturnRows(sqlmock.NewRows(alunoColumns).
			AddRow(int64(7), "Maria", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", models.ModalidadeIniciacaoCientifica, nil, nil))
	mock.ExpectQuery("INSERT INTO public.iniciacaocientifica").
		WithArgs(int64(7), "Prof. Orientador", "Tema X", "2026-09-01", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_aluno", "orientador", "tema", "data_inicio", "data_termino"}).
			AddRow(int64(2), int64(7), "Prof. Orientador", "Tema X", "2026-09-01", nil))
	mock.ExpectQuery("INSERT INTO public.relatorios_ic").
		WithArgs(int64(7), models.FlagNao).
		WillReturnRows(sqlmock.NewRows(relatorioICTestColumns).
			AddRow(int64(4), int64(7), nil, models.FlagNao, nil, models.FlagNao, nil, models.FlagNao))
	mock.ExpectCommit()

	out, err := repo.SelectIC(context.Background(), 7, dto.SolicitacaoICRequest{
		Orientador: "Prof. Orientador",
		Tema:       "Tema X",
		DataInicio: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ModalidadeIniciacaoCientifica, out.Aluno.Modalidade)
	assert.Equal(t, "Tema X", out.Detalhe.Tema)
	assert.Equal(t, models.FlagNao, out.Relatorios.RelatorioExiste)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestModalidadeRepositorySelectEPRollsBackOnDetailFailure(t *testing.T) {
	db, mock, cleanup := newModalidadeRepoMock(t)
	defer cleanup()

	repo := NewModalidadeRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE public.aluno SET modalidade").
		WithArgs(models.ModalidadeEstagioProfissional, int64(7)).
		WillReturnRows(sqlmock.NewRows(alunoColumns).
			AddRow(int64(7), "Maria", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", models.ModalidadeEstagioProfissional, nil, nil))
	mock.ExpectQuery("INSERT INTO public.estagioprofissional").
		WithArgs(int64(7), "ACME LTDA", "Dev", "2026-09-01", "").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.SelectEP(context.Background(), 7, dto.SolicitacaoEPRequest{
		Empresa:    "ACME LTDA",
		Cargo:      "Dev",
		DataInicio: "2026-09-01",
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestModalidadeRepositoryCancelIC(t *testing.T) {
	db, mock, cleanup := newModalidadeRepoMock(t)
	defer cleanup()

	repo := NewModalidadeRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE public.aluno SET modalidade").
		WithArgs(models.ModalidadeNenhuma, int64(7)).
		WillReturnRows(sqlmock.NewRows(alunoColumns).
			AddRow(int64(7), "Maria", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", models.ModalidadeNenhuma, nil, nil))
	mock.ExpectExec("DELETE FROM public.iniciacaocientifica").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM public.relatorios_ic").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	aluno, err := repo.CancelIC(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.ModalidadeNenhuma, aluno.Modalidade)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestModalidadeRepositoryCancelEPWithoutEnrollmentRollsBack(t *testing.T) {
	db, mock, cleanup := newModalidadeRepoMock(t)
	defer cleanup()

	repo := NewModalidadeRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE public.aluno SET modalidade").
		WithArgs(models.ModalidadeNenhuma, int64(7)).
		WillReturnRows(sqlmock.NewRows(alunoColumns).
			AddRow(int64(7), "Maria", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", models.ModalidadeNenhuma, nil, nil))
	mock.ExpectExec("DELETE FROM public.estagioprofissional").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CancelEP(context.Background(), 7)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestModalidadeRepositoryGetICAbsent(t *testing.T) {
	db, mock, cleanup := newModalidadeRepoMock(t)
	defer cleanup()

	repo := NewModalidadeRepository(db)
	mock.ExpectQuery("SELECT id, id_aluno, orientador").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	ic, err := repo.GetIC(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, ic)
}
