package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/models"
)

type listingRepository interface {
	Alunos(ctx context.Context) ([]models.Aluno, error)
	DadosFatec(ctx context.Context) ([]models.DadosFatec, error)
	DadosPessoais(ctx context.Context) ([]models.DadosPessoal, error)
	Empresas(ctx context.Context) ([]models.Empresa, error)
	EmpresaAlunos(ctx context.Context) ([]models.EmpresaAluno, error)
	Estagios(ctx context.Context) ([]models.Estagio, error)
}

// ListingService serves the unfiltered table listings, optionally backed by
// the Redis cache. The cache is off by default; the only caching the legacy
// portal had was the advisory freshness header.
type ListingService struct {
	repo    listingRepository
	cache   *CacheService
	logger  *zap.Logger
	timeout time.Duration
}

// NewListingService constructs a ListingService.
func NewListingService(repo listingRepository, cache *CacheService, logger *zap.Logger, timeout time.Duration) *ListingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListingService{repo: repo, cache: cache, logger: logger, timeout: timeout}
}

// Alunos lists every student row.
func (s *ListingService) Alunos(ctx context.Context) ([]models.Aluno, error) {
	return listCached(s, ctx, "listing:alunos", s.repo.Alunos)
}

// DadosFatec lists every institutional record.
func (s *ListingService) DadosFatec(ctx context.Context) ([]models.DadosFatec, error) {
	return listCached(s, ctx, "listing:dadosfatec", s.repo.DadosFatec)
}

// DadosPessoais lists every personal data record.
func (s *ListingService) DadosPessoais(ctx context.Context) ([]models.DadosPessoal, error) {
	return listCached(s, ctx, "listing:dadospessoalaluno", s.repo.DadosPessoais)
}

// Empresas lists every company.
func (s *ListingService) Empresas(ctx context.Context) ([]models.Empresa, error) {
	return listCached(s, ctx, "listing:empresa", s.repo.Empresas)
}

// EmpresaAlunos lists every student-company link.
func (s *ListingService) EmpresaAlunos(ctx context.Context) ([]models.EmpresaAluno, error) {
	return listCached(s, ctx, "listing:empresaaluno", s.repo.EmpresaAlunos)
}

// Estagios lists every internship status record.
func (s *ListingService) Estagios(ctx context.Context) ([]models.Estagio, error) {
	return listCached(s, ctx, "listing:estagio", s.repo.Estagios)
}

func listCached[T any](s *ListingService, ctx context.Context, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	rows, err := load(ctx)
	if err != nil {
		return nil, storeError(err, "")
	}
	s.cache.Set(ctx, key, rows)
	return rows, nil
}
