package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

type fakeListingService struct {
	alunos []models.Aluno
	err    error
}

func (f *fakeListingService) Alunos(context.Context) ([]models.Aluno, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.alunos, nil
}

func (f *fakeListingService) DadosFatec(context.Context) ([]models.DadosFatec, error) {
	return []models.DadosFatec{}, nil
}

func (f *fakeListingService) DadosPessoais(context.Context) ([]models.DadosPessoal, error) {
	return []models.DadosPessoal{}, nil
}

func (f *fakeListingService) Empresas(context.Context) ([]models.Empresa, error) {
	return []models.Empresa{}, nil
}

func (f *fakeListingService) EmpresaAlunos(context.Context) ([]models.EmpresaAluno, error) {
	return []models.EmpresaAluno{}, nil
}

func (f *fakeListingService) Estagios(context.Context) ([]models.Estagio, error) {
	return []models.Estagio{}, nil
}

func TestListingHandlerAlunosSetsFreshnessHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewListingHandler(&fakeListingService{alunos: []models.Aluno{{ID: 1, Nome: "Maria"}}}, 300)
	r := gin.New()
	r.GET("/api/alunos", h.Alunos)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alunos", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

	// The body is the bare array, not an envelope.
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Maria", rows[0]["nome"])
	_, exposed := rows[0]["senha"]
	assert.False(t, exposed)
}

func TestListingHandlerEmpresasEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewListingHandler(&fakeListingService{}, 300)
	r := gin.New()
	r.GET("/api/empresa", h.Empresas)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/empresa", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListingHandlerSurfacesErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewListingHandler(&fakeListingService{err: appErrors.Wrap(errors.New("down"), appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)}, 300)
	r := gin.New()
	r.GET("/api/alunos", h.Alunos)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alunos", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL", body["kind"])
}
