package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/middleware"
	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
	"github.com/davg505/portal-estagio-api/pkg/response"
)

type empresaService interface {
	GetDetalhe(ctx context.Context, idAluno int64) (*models.EmpresaAlunoDetalhe, error)
	Register(ctx context.Context, idAluno int64, req dto.AddDadosEmpresaRequest) (*models.EmpresaAlunoDetalhe, error)
}

// EmpresaHandler serves the student's hosting company.
type EmpresaHandler struct {
	service empresaService
}

// NewEmpresaHandler constructs the handler.
func NewEmpresaHandler(svc empresaService) *EmpresaHandler {
	return &EmpresaHandler{service: svc}
}

// DadosEmpresa returns the authenticated student's company link joined with
// the company row.
func (h *EmpresaHandler) DadosEmpresa(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	detalhe, err := h.service.GetDetalhe(c.Request.Context(), claims.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if detalhe == nil {
		response.JSON(c, http.StatusOK, gin.H{})
		return
	}
	response.JSON(c, http.StatusOK, detalhe)
}

// AddDadosEmpresa links the student to a company, deduplicated by CNPJ.
func (h *EmpresaHandler) AddDadosEmpresa(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	var req dto.AddDadosEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "corpo da requisição inválido"))
		return
	}
	detalhe, err := h.service.Register(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, detalhe)
}
