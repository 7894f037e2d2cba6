package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

type estagioRepository interface {
	GetByAluno(ctx context.Context, idAluno int64) (*models.Estagio, error)
	GetInfoByAluno(ctx context.Context, idAluno int64) (*models.EstagioInfo, error)
	GetSolicitacaoByAluno(ctx context.Context, idAluno int64) (*models.EstagioSolicitacao, error)
	CreateSolicitacao(ctx context.Context, idAluno int64, req dto.SolicitacaoEstagioRequest) (*dto.SolicitacaoEstagioResponse, error)
	UpdateDados(ctx context.Context, idAluno int64, req dto.AddDadosEstagioRequest) (*models.Estagio, error)
}

type modalidadeReader interface {
	FindByID(ctx context.Context, id int64) (*models.Aluno, error)
}

// EstagioService serves the internship status record: scoped reads, the
// request that opens it and the working-details update.
type EstagioService struct {
	repo      estagioRepository
	alunos    modalidadeReader
	validator *validator.Validate
	logger    *zap.Logger
	timeout   time.Duration
}

// NewEstagioService constructs an EstagioService.
func NewEstagioService(repo estagioRepository, alunos modalidadeReader, validate *validator.Validate, logger *zap.Logger, timeout time.Duration) *EstagioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EstagioService{repo: repo, alunos: alunos, validator: validate, logger: logger, timeout: timeout}
}

// Get returns the student's status record; nil when none exists.
func (s *EstagioService) Get(ctx context.Context, idAluno int64) (*models.Estagio, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	estagio, err := s.repo.GetByAluno(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return estagio, nil
}

// GetInfo returns the status record joined with the originating request.
func (s *EstagioService) GetInfo(ctx context.Context, idAluno int64) (*models.EstagioInfo, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	info, err := s.repo.GetInfoByAluno(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return info, nil
}

// GetSolicitacao returns the student's internship request.
func (s *EstagioService) GetSolicitacao(ctx context.Context, idAluno int64) (*models.EstagioSolicitacao, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	solicitacao, err := s.repo.GetSolicitacaoByAluno(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return solicitacao, nil
}

// CreateSolicitacao opens an internship request. A student who already has
// an active modality is rejected before anything is written.
func (s *EstagioService) CreateSolicitacao(ctx context.Context, idAluno int64, req dto.SolicitacaoEstagioRequest) (*dto.SolicitacaoEstagioResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	aluno, err := s.alunos.FindByID(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "aluno não encontrado")
	}
	if aluno.Modalidade != "" && aluno.Modalidade != models.ModalidadeNenhuma {
		return nil, appErrors.Clone(appErrors.ErrConflict, "aluno já possui uma modalidade ativa")
	}

	out, err := s.repo.CreateSolicitacao(ctx, idAluno, req)
	if err != nil {
		return nil, storeError(err, "aluno não encontrado")
	}
	return out, nil
}

// UpdateDados records the signed internship's working details.
func (s *EstagioService) UpdateDados(ctx context.Context, idAluno int64, req dto.AddDadosEstagioRequest) (*models.Estagio, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	estagio, err := s.repo.UpdateDados(ctx, idAluno, req)
	if err != nil {
		return nil, storeError(err, "estágio não encontrado")
	}
	return estagio, nil
}
