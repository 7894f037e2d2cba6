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

type modalidadeService interface {
	GetIC(ctx context.Context, idAluno int64) (*models.IniciacaoCientifica, error)
	GetEP(ctx context.Context, idAluno int64) (*models.EstagioProfissional, error)
	SelectIC(ctx context.Context, idAluno int64, req dto.SolicitacaoICRequest) (*dto.SolicitacaoICResponse, error)
	SelectEP(ctx context.Context, idAluno int64, req dto.SolicitacaoEPRequest) (*dto.SolicitacaoEPResponse, error)
	CancelIC(ctx context.Context, idAluno int64) (*models.Aluno, error)
	CancelEP(ctx context.Context, idAluno int64) (*models.Aluno, error)
}

// ModalidadeHandler serves the scientific initiation and professional
// internship tracks: selection, scoped reads and cancellation.
type ModalidadeHandler struct {
	service modalidadeService
}

// NewModalidadeHandler constructs the handler.
func NewModalidadeHandler(svc modalidadeService) *ModalidadeHandler {
	return &ModalidadeHandler{service: svc}
}

// IC returns the student's scientific initiation record.
func (h *ModalidadeHandler) IC(c *gin.Context) {
	scopedRead(c, h.service.GetIC)
}

// EP returns the student's professional internship record.
func (h *ModalidadeHandler) EP(c *gin.Context) {
	scopedRead(c, h.service.GetEP)
}

// SolicitarIC enrolls the student in scientific initiation.
func (h *ModalidadeHandler) SolicitarIC(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	var req dto.SolicitacaoICRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "corpo da requisição inválido"))
		return
	}
	out, err := h.service.SelectIC(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, out)
}

// SolicitarEP enrolls the student in the professional internship track.
func (h *ModalidadeHandler) SolicitarEP(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	var req dto.SolicitacaoEPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "corpo da requisição inválido"))
		return
	}
	out, err := h.service.SelectEP(c.Request.Context(), claims.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, out)
}

// CancelarIC drops the scientific initiation enrollment and resets the
// student's modality.
func (h *ModalidadeHandler) CancelarIC(c *gin.Context) {
	h.cancel(c, h.service.CancelIC)
}

// CancelarEP drops the professional internship enrollment and resets the
// student's modality.
func (h *ModalidadeHandler) CancelarEP(c *gin.Context) {
	h.cancel(c, h.service.CancelEP)
}

func (h *ModalidadeHandler) cancel(c *gin.Context, op func(context.Context, int64) (*models.Aluno, error)) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	aluno, err := op(c.Request.Context(), claims.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "aluno": aluno})
}
