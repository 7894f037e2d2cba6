package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davg505/portal-estagio-api/internal/models"
)

func newRelatorioRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestRelatorioRepositorySetICSlotUpdatesExistingBundle(t *testing.T) {
	db, mock, cleanup := newRelatorioRepoMock(t)
	defer cleanup()

	repo := NewRelatorioRepository(db)
	mock.ExpectExec("UPDATE public.relatorios_ic SET relatorio").
		WithArgs("1700000000000-abcd1234-relatorio.pdf", models.FlagSim, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetICSlot(context.Background(), 7, SlotRelatorio, "1700000000000-abcd1234-relatorio.pdf")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelatorioRepositorySetEPSlotInsertsBundleOnFirstDocument(t *testing.T) {
	db, mock, cleanup := newRelatorioRepoMock(t)
	defer cleanup()

	repo := NewRelatorioRepository(db)
	mock.ExpectExec("UPDATE public.relatoriosep SET comprovante_vinculo").
		WithArgs("arquivo.pdf", models.FlagSim, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO public.relatoriosep").
		WithArgs(int64(7), "arquivo.pdf", models.FlagSim, models.FlagNao, models.FlagNao, models.FlagNao).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SetEPSlot(context.Background(), 7, SlotComprovanteVinculo, "arquivo.pdf")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelatorioRepositorySetICSlotRejectsUnknownSlot(t *testing.T) {
	db, _, cleanup := newRelatorioRepoMock(t)
	defer cleanup()

	repo := NewRelatorioRepository(db)
	err := repo.SetICSlot(context.Background(), 7, SlotComprovanteVinculo, "arquivo.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ic slot")
}

func TestRelatorioRepositoryGetEPByAlunoAbsent(t *testing.T) {
	db, mock, cleanup := newRelatorioRepoMock(t)
	defer cleanup()

	repo := NewRelatorioRepository(db)
	mock.ExpectQuery("SELECT id, id_aluno, relatorio").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	bundle, err := repo.GetEPByAluno(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, bundle)
}
