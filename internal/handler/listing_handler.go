package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/davg505/portal-estagio-api/internal/models"
	"github.com/davg505/portal-estagio-api/pkg/response"
)

type listingService interface {
	Alunos(ctx context.Context) ([]models.Aluno, error)
	DadosFatec(ctx context.Context) ([]models.DadosFatec, error)
	DadosPessoais(ctx context.Context) ([]models.DadosPessoal, error)
	Empresas(ctx context.Context) ([]models.Empresa, error)
	EmpresaAlunos(ctx context.Context) ([]models.EmpresaAluno, error)
	Estagios(ctx context.Context) ([]models.Estagio, error)
}

// ListingHandler serves the unfiltered table listings. Responses carry the
// advisory five-minute freshness header the legacy portal set.
type ListingHandler struct {
	service listingService
	maxAge  int
}

// NewListingHandler constructs the handler.
func NewListingHandler(svc listingService, maxAge int) *ListingHandler {
	if maxAge <= 0 {
		maxAge = 300
	}
	return &ListingHandler{service: svc, maxAge: maxAge}
}

// Alunos lists every student row.
func (h *ListingHandler) Alunos(c *gin.Context) {
	list(h, c, h.service.Alunos)
}

// DadosFatec lists every institutional record.
func (h *ListingHandler) DadosFatec(c *gin.Context) {
	list(h, c, h.service.DadosFatec)
}

// DadosPessoais lists every personal data record.
func (h *ListingHandler) DadosPessoais(c *gin.Context) {
	list(h, c, h.service.DadosPessoais)
}

// Empresas lists every company.
func (h *ListingHandler) Empresas(c *gin.Context) {
	list(h, c, h.service.Empresas)
}

// EmpresaAlunos lists every student-company link.
func (h *ListingHandler) EmpresaAlunos(c *gin.Context) {
	list(h, c, h.service.EmpresaAlunos)
}

// Estagios lists every internship status record.
func (h *ListingHandler) Estagios(c *gin.Context) {
	list(h, c, h.service.Estagios)
}

func list[T any](h *ListingHandler, c *gin.Context, load func(context.Context) ([]T, error)) {
	rows, err := load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, rows, h.maxAge)
}
