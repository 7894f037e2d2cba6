package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

type fakeModalidadeRepo struct {
	icOut     *dto.SolicitacaoICResponse
	epOut     *dto.SolicitacaoEPResponse
	cancelOut *models.Aluno
	cancelErr error
	selected  bool
}

func (f *fakeModalidadeRepo) GetIC(context.Context, int64) (*models.IniciacaoCientifica, error) {
	return nil, nil
}

func (f *fakeModalidadeRepo) GetEP(context.Context, int64) (*models.EstagioProfissional, error) {
	return nil, nil
}

func (f *fakeModalidadeRepo) SelectIC(context.Context, int64, dto.SolicitacaoICRequest) (*dto.SolicitacaoICResponse, error) {
	f.selected = true
	return f.icOut, nil
}

func (f *fakeModalidadeRepo) SelectEP(context.Context, int64, dto.SolicitacaoEPRequest) (*dto.SolicitacaoEPResponse, error) {
	f.selected = true
	return f.epOut, nil
}

func (f *fakeModalidadeRepo) CancelIC(context.Context, int64) (*models.Aluno, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelOut, nil
}

func (f *fakeModalidadeRepo) CancelEP(context.Context, int64) (*models.Aluno, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelOut, nil
}

type fakeModalidadeReader struct {
	aluno *models.Aluno
	err   error
}

func (f *fakeModalidadeReader) FindByID(context.Context, int64) (*models.Aluno, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.aluno, nil
}

func TestModalidadeServiceSelectICRejectsActiveModality(t *testing.T) {
	repo := &fakeModalidadeRepo{}
	reader := &fakeModalidadeReader{aluno: &models.Aluno{ID: 7, Modalidade: models.ModalidadeEstagio}}
	svc := NewModalidadeService(repo, reader, nil, nil, 0)

	_, err := svc.SelectIC(context.Background(), 7, dto.SolicitacaoICRequest{
		Orientador: "Prof. Orientador",
		Tema:       "Tema X",
		DataInicio: "2026-09-01",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Kind, appErr.Kind)
	assert.False(t, repo.selected)
}

func TestModalidadeServiceSelectICAllowsNoModality(t *testing.T) {
	repo := &fakeModalidadeRepo{icOut: &dto.SolicitacaoICResponse{
		Aluno: models.Aluno{ID: 7, Modalidade: models.ModalidadeIniciacaoCientifica},
	}}
	reader := &fakeModalidadeReader{aluno: &models.Aluno{ID: 7, Modalidade: models.ModalidadeNenhuma}}
	svc := NewModalidadeService(repo, reader, nil, nil, 0)

	out, err := svc.SelectIC(context.Background(), 7, dto.SolicitacaoICRequest{
		Orientador: "Prof. Orientador",
		Tema:       "Tema X",
		DataInicio: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ModalidadeIniciacaoCientifica, out.Aluno.Modalidade)
	assert.True(t, repo.selected)
}

func TestModalidadeServiceSelectEPValidatesBeforeReads(t *testing.T) {
	repo := &fakeModalidadeRepo{}
	reader := &fakeModalidadeReader{err: sql.ErrConnDone}
	svc := NewModalidadeService(repo, reader, nil, nil, 0)

	_, err := svc.SelectEP(context.Background(), 7, dto.SolicitacaoEPRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrBadRequest.Kind, appErr.Kind)
	assert.Contains(t, appErr.Message, "Campos obrigatórios ausentes ou inválidos")
	assert.False(t, repo.selected)
}

func TestModalidadeServiceCancelICNotEnrolled(t *testing.T) {
	repo := &fakeModalidadeRepo{cancelErr: sql.ErrNoRows}
	svc := NewModalidadeService(repo, &fakeModalidadeReader{}, nil, nil, 0)

	_, err := svc.CancelIC(context.Background(), 7)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Kind, appErr.Kind)
	assert.Equal(t, "iniciação científica não encontrada", appErr.Message)
}

func TestModalidadeServiceCancelEPResetsModality(t *testing.T) {
	repo := &fakeModalidadeRepo{cancelOut: &models.Aluno{ID: 7, Modalidade: models.ModalidadeNenhuma}}
	svc := NewModalidadeService(repo, &fakeModalidadeReader{}, nil, nil, 0)

	aluno, err := svc.CancelEP(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.ModalidadeNenhuma, aluno.Modalidade)
}
