package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davg505/portal-estagio-api/internal/models"
)

type fakeRosterRepo struct {
	rows []models.EstagioRoster
	err  error
}

func (f *fakeRosterRepo) Roster(context.Context) ([]models.EstagioRoster, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func strPtr(s string) *string { return &s }

func TestExportServiceRosterCSV(t *testing.T) {
	repo := &fakeRosterRepo{rows: []models.EstagioRoster{
		{NomeAluno: "Maria", RA: "123456", Curso: "ADS", Modalidade: models.ModalidadeEstagio, Status: strPtr("Pendente"), NomeEmpresa: strPtr("ACME LTDA")},
		{NomeAluno: "Joao", RA: "654321", Curso: "GE", Modalidade: models.ModalidadeNenhuma},
	}}
	svc := NewExportService(repo, nil, 0)

	raw, err := svc.RosterCSV(context.Background())
	require.NoError(t, err)

	out := string(raw)
	assert.Contains(t, out, "Aluno,RA,Curso,Modalidade,Status,Empresa")
	assert.Contains(t, out, "Maria,123456,ADS,estagio,Pendente,ACME LTDA")
	assert.Contains(t, out, "Joao,654321,GE,nenhuma,,")
}

func TestExportServiceRosterPDF(t *testing.T) {
	repo := &fakeRosterRepo{rows: []models.EstagioRoster{
		{NomeAluno: "Maria", RA: "123456", Curso: "ADS", Modalidade: models.ModalidadeEstagio},
	}}
	svc := NewExportService(repo, nil, 0)

	raw, err := svc.RosterPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}
