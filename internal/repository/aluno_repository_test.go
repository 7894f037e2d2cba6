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
)

func newAlunoRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

var alunoColumns = []string{"id", "nome", "email", "senha", "ra", "curso", "semestre", "modalidade", "status_estagio", "token"}

func TestAlunoRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newAlunoRepoMock(t)
	defer cleanup()

	repo := NewAlunoRepository(db)
	rows := sqlmock.NewRows(alunoColumns).
		AddRow(int64(7), "Maria Silva", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", "nenhuma", nil, nil)
	mock.ExpectQuery("SELECT id, nome, email, senha").
		WithArgs("maria@fatec.sp.gov.br").
		WillReturnRows(rows)

	aluno, err := repo.FindByEmail(context.Background(), "maria@fatec.sp.gov.br")
	require.NoError(t, err)
	assert.Equal(t, int64(7), aluno.ID)
	assert.Equal(t, "nenhuma", aluno.Modalidade)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAlunoRepositoryFindByEmailNotFound(t *testing.T) {
	db, mock, cleanup := newAlunoRepoMock(t)
	defer cleanup()

	repo := NewAlunoRepository(db)
	mock.ExpectQuery("SELECT id, nome, email, senha").
		WithArgs("ninguem@fatec.sp.gov.br").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ninguem@fatec.sp.gov.br")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAlunoRepositoryGetDadosPessoalAbsent(t *testing.T) {
	db, mock, cleanup := newAlunoRepoMock(t)
	defer cleanup()

	repo := NewAlunoRepository(db)
	mock.ExpectQuery("SELECT id, id_aluno, cpf").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	dados, err := repo.GetDadosPessoal(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, dados)
}

func TestAlunoRepositoryUpdateRepresentante(t *testing.T) {
	db, mock, cleanup := newAlunoRepoMock(t)
	defer cleanup()

	repo := NewAlunoRepository(db)
	rows := sqlmock.NewRows([]string{"id", "id_aluno", "cpf", "rg", "data_nascimento", "telefone", "endereco",
		"nome_representante", "email_representante", "telefone_representante"}).
		AddRow(int64(3), int64(7), nil, nil, nil, nil, nil, "Jose Silva", "jose@example.com", "11999990000")
	mock.ExpectQuery("UPDATE public.dadospessoalaluno").
		WithArgs("Jose Silva", "jose@example.com", "11999990000", int64(7)).
		WillReturnRows(rows)

	dados, err := repo.UpdateRepresentante(context.Background(), 7, dto.AtualizacaoRepresentanteRequest{
		NomeRepresentante:     "Jose Silva",
		EmailRepresentante:    "jose@example.com",
		TelefoneRepresentante: "11999990000",
	})
	require.NoError(t, err)
	require.NotNil(t, dados.NomeRepresentante)
	assert.Equal(t, "Jose Silva", *dados.NomeRepresentante)
}

func TestAlunoRepositoryUpdateRepresentanteMissingRow(t *testing.T) {
	db, mock, cleanup := newAlunoRepoMock(t)
	defer cleanup()

	repo := NewAlunoRepository(db)
	mock.ExpectQuery("UPDATE public.dadospessoalaluno").
		WithArgs("Jose Silva", "jose@example.com", "11999990000", int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateRepresentante(context.Background(), 9, dto.AtualizacaoRepresentanteRequest{
		NomeRepresentante:     "Jose Silva",
		EmailRepresentante:    "jose@example.com",
		TelefoneRepresentante: "11999990000",
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAlunoRepositoryUpdateDadosAluno(t *testing.T) {
	db, mock, cleanup := newAlunoRepoMock(t)
	defer cleanup()

	repo := NewAlunoRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE public.aluno SET nome").
		WithArgs("Maria Souza", int64(7)).
		WillReturnRows(sqlmock.NewRows(alunoColumns).
			AddRow(int64(7), "Maria Souza", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", "nenhuma", nil, nil))
	mock.ExpectQuery("UPDATE public.dadospessoalaluno").
		WithArgs("11988887777", "Rua Nova, 10", "", "", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_aluno", "cpf", "rg", "data_nascimento", "telefone", "endereco",
			"nome_representante", "email_representante", "telefone_representante"}).
			AddRow(int64(3), int64(7), "11122233344", nil, nil, "11988887777", "Rua Nova, 10", nil, nil, nil))
	mock.ExpectCommit()

	aluno, dados, err := repo.UpdateDadosAluno(context.Background(), 7, dto.AtualizacaoDadosAlunoRequest{
		Nome:     "Maria Souza",
		Telefone: "11988887777",
		Endereco: "Rua Nova, 10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", aluno.Nome)
	require.NotNil(t, dados.Telefone)
	assert.Equal(t, "11988887777", *dados.Telefone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAlunoRepositoryUpdateDadosAlunoRollsBackOnMissingDados(t *testing.T) {
	db, mock, cleanup := newAlunoRepoMock(t)
	defer cleanup()

	repo := NewAlunoRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE public.aluno SET nome").
		WithArgs("Maria Souza", int64(7)).
		WillReturnRows(sqlmock.NewRows(alunoColumns).
			AddRow(int64(7), "Maria Souza", "maria@fatec.sp.gov.br", "hash", "123456", "ADS", "4", "nenhuma", nil, nil))
	mock.ExpectQuery("UPDATE public.dadospessoalaluno").
		WithArgs("11988887777", "Rua Nova, 10", "", "", int64(7)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, _, err := repo.UpdateDadosAluno(context.Background(), 7, dto.AtualizacaoDadosAlunoRequest{
		Nome:     "Maria Souza",
		Telefone: "11988887777",
		Endereco: "Rua Nova, 10",
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
