package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/middleware"
	"github.com/davg505/portal-estagio-api/internal/models"
	"github.com/davg505/portal-estagio-api/internal/repository"
	"github.com/davg505/portal-estagio-api/internal/service"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
	"github.com/davg505/portal-estagio-api/pkg/response"
)

// uploadFileField is the multipart form field carrying the document.
const uploadFileField = "arquivo"

type uploadService interface {
	Store(ctx context.Context, idAluno int64, bundle, slot, originalName string, size int64, r io.Reader) (string, error)
	GetRelatoriosEP(ctx context.Context, idAluno int64) (*models.RelatorioEP, error)
}

type uploadMetrics interface {
	RecordUpload(bundle, slot string)
}

// UploadHandler receives report documents and files them into the owning
// student's bundle. Every upload route is the same flow with a fixed
// bundle and slot.
type UploadHandler struct {
	service uploadService
	metrics uploadMetrics
	logger  *zap.Logger
}

// NewUploadHandler constructs the handler. metrics may be nil.
func NewUploadHandler(svc uploadService, metrics uploadMetrics, logger *zap.Logger) *UploadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadHandler{service: svc, metrics: metrics, logger: logger}
}

// RelatorioIC stores the scientific-initiation report.
func (h *UploadHandler) RelatorioIC(c *gin.Context) {
	h.receive(c, service.BundleIC, repository.SlotRelatorio)
}

// CartaApresentacaoIC stores the scientific-initiation presentation letter.
func (h *UploadHandler) CartaApresentacaoIC(c *gin.Context) {
	h.receive(c, service.BundleIC, repository.SlotCartaApresentacao)
}

// CartaAvaliacaoIC stores the scientific-initiation evaluation letter.
func (h *UploadHandler) CartaAvaliacaoIC(c *gin.Context) {
	h.receive(c, service.BundleIC, repository.SlotCartaAvaliacao)
}

// RelatorioEP stores the professional-internship report.
func (h *UploadHandler) RelatorioEP(c *gin.Context) {
	h.receive(c, service.BundleEP, repository.SlotRelatorio)
}

// ComprovanteVinculoEP stores the employment-link proof.
func (h *UploadHandler) ComprovanteVinculoEP(c *gin.Context) {
	h.receive(c, service.BundleEP, repository.SlotComprovanteVinculo)
}

// CartaApresentacaoEP stores the professional-internship presentation letter.
func (h *UploadHandler) CartaApresentacaoEP(c *gin.Context) {
	h.receive(c, service.BundleEP, repository.SlotCartaApresentacao)
}

// RequerimentoEquivalenciaEP stores the equivalence request form.
func (h *UploadHandler) RequerimentoEquivalenciaEP(c *gin.Context) {
	h.receive(c, service.BundleEP, repository.SlotRequerimentoEquivalencia)
}

// RelatoriosEP returns the authenticated student's document bundle for the
// professional-internship track.
func (h *UploadHandler) RelatoriosEP(c *gin.Context) {
	scopedRead(c, h.service.GetRelatoriosEP)
}

func (h *UploadHandler) receive(c *gin.Context, bundle, slot string) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	fileHeader, err := c.FormFile(uploadFileField)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "nenhum arquivo enviado"))
		return
	}

	// The legacy client still posts an idAluno form field. Ownership comes
	// from the verified token, never from the form.
	if posted := c.PostForm("idAluno"); posted != "" {
		h.logger.Debug("ignoring posted idAluno, using token identity",
			zap.String("posted", posted),
			zap.Int64("id_aluno", claims.ID),
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "não foi possível ler o arquivo enviado"))
		return
	}
	defer file.Close()

	stored, err := h.service.Store(c.Request.Context(), claims.ID, bundle, slot, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordUpload(bundle, slot)
	}

	response.JSON(c, http.StatusOK, dto.UploadResponse{Success: true, Arquivo: stored, Campo: slot})
}
