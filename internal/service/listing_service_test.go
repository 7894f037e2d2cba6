package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

type fakeListingRepo struct {
	alunos   []models.Aluno
	empresas []models.Empresa
	err      error
	calls    int
}

func (f *fakeListingRepo) Alunos(context.Context) ([]models.Aluno, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.alunos, nil
}

func (f *fakeListingRepo) DadosFatec(context.Context) ([]models.DadosFatec, error) {
	return nil, nil
}

func (f *fakeListingRepo) DadosPessoais(context.Context) ([]models.DadosPessoal, error) {
	return nil, nil
}

func (f *fakeListingRepo) Empresas(context.Context) ([]models.Empresa, error) {
	f.calls++
	return f.empresas, nil
}

func (f *fakeListingRepo) EmpresaAlunos(context.Context) ([]models.EmpresaAluno, error) {
	return nil, nil
}

func (f *fakeListingRepo) Estagios(context.Context) ([]models.Estagio, error) {
	return nil, nil
}

// memoryCacheRepo is a map-backed CacheRepository mirroring the JSON codec of
// the Redis one.
type memoryCacheRepo struct {
	entries map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func TestListingServiceWithoutCache(t *testing.T) {
	repo := &fakeListingRepo{alunos: []models.Aluno{{ID: 1, Nome: "Maria"}}}
	svc := NewListingService(repo, nil, nil, 0)

	alunos, err := svc.Alunos(context.Background())
	require.NoError(t, err)
	require.Len(t, alunos, 1)

	_, err = svc.Alunos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestListingServiceCachesSecondRead(t *testing.T) {
	repo := &fakeListingRepo{alunos: []models.Aluno{{ID: 1, Nome: "Maria"}}}
	cache := NewCacheService(newMemoryCacheRepo(), nil, time.Minute, nil, true)
	svc := NewListingService(repo, cache, nil, 0)

	first, err := svc.Alunos(context.Background())
	require.NoError(t, err)
	second, err := svc.Alunos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first[0].Nome, second[0].Nome)
}

func TestListingServiceSurfacesStoreFailure(t *testing.T) {
	repo := &fakeListingRepo{err: errors.New("connection refused")}
	svc := NewListingService(repo, nil, nil, 0)

	_, err := svc.Alunos(context.Background())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Kind, appErr.Kind)
}

func TestListingServiceEmpresasEmptySlice(t *testing.T) {
	repo := &fakeListingRepo{empresas: []models.Empresa{}}
	svc := NewListingService(repo, nil, nil, 0)

	empresas, err := svc.Empresas(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empresas)
	assert.Empty(t, empresas)
}
