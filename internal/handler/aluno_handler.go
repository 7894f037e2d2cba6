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

type alunoService interface {
	Get(ctx context.Context, idAluno int64) (*models.Aluno, error)
	GetDadosFatec(ctx context.Context, idAluno int64) (*models.DadosFatecAluno, error)
	UpdateRepresentante(ctx context.Context, idAluno int64, req dto.AtualizacaoRepresentanteRequest) (*models.DadosPessoal, error)
	UpdateDados(ctx context.Context, idAluno int64, req dto.AtualizacaoDadosAlunoRequest) (*models.Aluno, *models.DadosPessoal, error)
}

// AlunoHandler serves the student's own record.
type AlunoHandler struct {
	service alunoService
}

// NewAlunoHandler constructs the handler.
func NewAlunoHandler(svc alunoService) *AlunoHandler {
	return &AlunoHandler{service: svc}
}

// Get returns the authenticated student's row.
func (h *AlunoHandler) Get(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	aluno, err := h.service.Get(c.Request.Context(), claims.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, aluno)
}

// DadosFatec returns the authenticated student's institutional record.
func (h *AlunoHandler) DadosFatec(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	dados, err := h.service.GetDadosFatec(c.Request.Context(), claims.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if dados == nil {
		response.JSON(c, http.StatusOK, gin.H{})
		return
	}
	response.JSON(c, http.StatusOK, dados)
}

// AtualizacaoRepresentante updates the legal representative contact block.
func (h *AlunoHandler) AtualizacaoRepresentante(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	var req dto.AtualizacaoRepresentanteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "corpo da requisição inválido"))
		return
	}
	dados, err := h.service.UpdateRepresentante(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dados)
}

// AtualizacaoDados updates the student row plus the personal data row.
func (h *AlunoHandler) AtualizacaoDados(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	var req dto.AtualizacaoDadosAlunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "corpo da requisição inválido"))
		return
	}
	aluno, dados, err := h.service.UpdateDados(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"aluno": aluno, "dados_pessoais": dados})
}
