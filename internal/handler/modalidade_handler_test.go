package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

type fakeModalidadeService struct {
	ic        *models.IniciacaoCientifica
	icOut     *dto.SolicitacaoICResponse
	selectErr error
	cancelOut *models.Aluno
	cancelErr error
}

func (f *fakeModalidadeService) GetIC(context.Context, int64) (*models.IniciacaoCientifica, error) {
	return f.ic, nil
}

func (f *fakeModalidadeService) GetEP(context.Context, int64) (*models.EstagioProfissional, error) {
	return nil, nil
}

func (f *fakeModalidadeService) SelectIC(context.Context, int64, dto.SolicitacaoICRequest) (*dto.SolicitacaoICResponse, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.icOut, nil
}

func (f *fakeModalidadeService) SelectEP(context.Context, int64, dto.SolicitacaoEPRequest) (*dto.SolicitacaoEPResponse, error) {
	return nil, f.selectErr
}

func (f *fakeModalidadeService) CancelIC(context.Context, int64) (*models.Aluno, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelOut, nil
}

func (f *fakeModalidadeService) CancelEP(context.Context, int64) (*models.Aluno, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return f.cancelOut, nil
}

func newModalidadeTestRouter(svc *fakeModalidadeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewModalidadeHandler(svc)
	r := gin.New()
	claims := setClaims(&models.JWTClaims{ID: 7, Tipo: models.RoleAluno})
	r.GET("/api/ic", claims, h.IC)
	r.POST("/api/solicitacao_ic", claims, h.SolicitarIC)
	r.PUT("/api/cancelar_ic_aluno", claims, h.CancelarIC)
	return r
}

func TestModalidadeHandlerICAbsentIsEmptyObject(t *testing.T) {
	r := newModalidadeTestRouter(&fakeModalidadeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ic", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestModalidadeHandlerSolicitarICCreated(t *testing.T) {
	svc := &fakeModalidadeService{icOut: &dto.SolicitacaoICResponse{
		Aluno:   models.Aluno{ID: 7, Modalidade: models.ModalidadeIniciacaoCientifica},
		Detalhe: models.IniciacaoCientifica{ID: 2, IDAluno: 7, Orientador: "Prof. Orientador", Tema: "Tema X"},
	}}
	r := newModalidadeTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/solicitacao_ic",
		strings.NewReader(`{"orientador":"Prof. Orientador","tema":"Tema X","data_inicio":"2026-09-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	aluno, ok := body["aluno"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "iniciacao_cientifica", aluno["modalidade"])
}

func TestModalidadeHandlerSolicitarICConflict(t *testing.T) {
	svc := &fakeModalidadeService{selectErr: appErrors.Clone(appErrors.ErrConflict, "aluno já possui uma modalidade ativa")}
	r := newModalidadeTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/solicitacao_ic",
		strings.NewReader(`{"orientador":"Prof. Orientador","tema":"Tema X","data_inicio":"2026-09-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestModalidadeHandlerCancelarIC(t *testing.T) {
	svc := &fakeModalidadeService{cancelOut: &models.Aluno{ID: 7, Modalidade: models.ModalidadeNenhuma}}
	r := newModalidadeTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/cancelar_ic_aluno", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	aluno, ok := body["aluno"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "nenhuma", aluno["modalidade"])
}

func TestModalidadeHandlerCancelarICNotEnrolled(t *testing.T) {
	svc := &fakeModalidadeService{cancelErr: appErrors.Clone(appErrors.ErrNotFound, "iniciação científica não encontrada")}
	r := newModalidadeTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/cancelar_ic_aluno", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["kind"])
}
