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

type estagioService interface {
	Get(ctx context.Context, idAluno int64) (*models.Estagio, error)
	GetInfo(ctx context.Context, idAluno int64) (*models.EstagioInfo, error)
	GetSolicitacao(ctx context.Context, idAluno int64) (*models.EstagioSolicitacao, error)
	CreateSolicitacao(ctx context.Context, idAluno int64, req dto.SolicitacaoEstagioRequest) (*dto.SolicitacaoEstagioResponse, error)
	UpdateDados(ctx context.Context, idAluno int64, req dto.AddDadosEstagioRequest) (*models.Estagio, error)
}

// EstagioHandler serves the internship status record and its request.
type EstagioHandler struct {
	service estagioService
}

// NewEstagioHandler constructs the handler.
func NewEstagioHandler(svc estagioService) *EstagioHandler {
	return &EstagioHandler{service: svc}
}

// DadosEstagio returns the authenticated student's status record.
func (h *EstagioHandler) DadosEstagio(c *gin.Context) {
	scopedRead(c, h.service.Get)
}

// DadosEstagioInfo returns the status record joined with the request.
func (h *EstagioHandler) DadosEstagioInfo(c *gin.Context) {
	scopedRead(c, h.service.GetInfo)
}

// Solicitacao returns the student's internship request row.
func (h *EstagioHandler) Solicitacao(c *gin.Context) {
	scopedRead(c, h.service.GetSolicitacao)
}

// SolicitarEstagio opens an internship request.
func (h *EstagioHandler) SolicitarEstagio(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	var req dto.SolicitacaoEstagioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "corpo da requisição inválido"))
		return
	}
	out, err := h.service.CreateSolicitacao(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, out)
}

// AddDadosEstagio records the signed internship's working details.
func (h *EstagioHandler) AddDadosEstagio(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	var req dto.AddDadosEstagioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "corpo da requisição inválido"))
		return
	}
	estagio, err := h.service.UpdateDados(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, estagio)
}

// scopedRead factors the recurring "identity from context, single scoped
// lookup, empty object when absent" shape shared by the protected reads.
func scopedRead[T any](c *gin.Context, load func(context.Context, int64) (*T, error)) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	row, err := load(c.Request.Context(), claims.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if row == nil {
		response.JSON(c, http.StatusOK, gin.H{})
		return
	}
	response.JSON(c, http.StatusOK, row)
}
