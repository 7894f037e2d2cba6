package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davg505/portal-estagio-api/pkg/response"
)

type exportService interface {
	RosterCSV(ctx context.Context) ([]byte, error)
	RosterPDF(ctx context.Context) ([]byte, error)
}

// ExportHandler serves the internship roster downloads for professors.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// EstagiosCSV streams the roster as a CSV download.
func (h *ExportHandler) EstagiosCSV(c *gin.Context) {
	data, err := h.service.RosterCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="estagios.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// EstagiosPDF streams the roster as a PDF download.
func (h *ExportHandler) EstagiosPDF(c *gin.Context) {
	data, err := h.service.RosterPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="estagios.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
