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

type modalidadeRepository interface {
	GetIC(ctx context.Context, idAluno int64) (*models.IniciacaoCientifica, error)
	GetEP(ctx context.Context, idAluno int64) (*models.EstagioProfissional, error)
	SelectIC(ctx context.Context, idAluno int64, req dto.SolicitacaoICRequest) (*dto.SolicitacaoICResponse, error)
	SelectEP(ctx context.Context, idAluno int64, req dto.SolicitacaoEPRequest) (*dto.SolicitacaoEPResponse, error)
	CancelIC(ctx context.Context, idAluno int64) (*models.Aluno, error)
	CancelEP(ctx context.Context, idAluno int64) (*models.Aluno, error)
}

// ModalidadeService runs the modality state machine: nenhuma → IC/EP via the
// selection operations, anything → nenhuma via the cancellations. Selecting
// while another modality is active is rejected with CONFLICT.
type ModalidadeService struct {
	repo      modalidadeRepository
	alunos    modalidadeReader
	validator *validator.Validate
	logger    *zap.Logger
	timeout   time.Duration
}

// NewModalidadeService constructs a ModalidadeService.
func NewModalidadeService(repo modalidadeRepository, alunos modalidadeReader, validate *validator.Validate, logger *zap.Logger, timeout time.Duration) *ModalidadeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ModalidadeService{repo: repo, alunos: alunos, validator: validate, logger: logger, timeout: timeout}
}

// GetIC returns the student's scientific-initiation detail row; nil when the
// modality is not active.
func (s *ModalidadeService) GetIC(ctx context.Context, idAluno int64) (*models.IniciacaoCientifica, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	ic, err := s.repo.GetIC(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return ic, nil
}

// GetEP returns the student's professional-internship detail row.
func (s *ModalidadeService) GetEP(ctx context.Context, idAluno int64) (*models.EstagioProfissional, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	ep, err := s.repo.GetEP(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return ep, nil
}

// SelectIC activates the scientific-initiation modality.
func (s *ModalidadeService) SelectIC(ctx context.Context, idAluno int64, req dto.SolicitacaoICRequest) (*dto.SolicitacaoICResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	if err := s.requireNoModality(ctx, idAluno); err != nil {
		return nil, err
	}

	out, err := s.repo.SelectIC(ctx, idAluno, req)
	if err != nil {
		return nil, storeError(err, "aluno não encontrado")
	}
	return out, nil
}

// SelectEP activates the professional-internship modality.
func (s *ModalidadeService) SelectEP(ctx context.Context, idAluno int64, req dto.SolicitacaoEPRequest) (*dto.SolicitacaoEPResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	if err := s.requireNoModality(ctx, idAluno); err != nil {
		return nil, err
	}

	out, err := s.repo.SelectEP(ctx, idAluno, req)
	if err != nil {
		return nil, storeError(err, "aluno não encontrado")
	}
	return out, nil
}

// CancelIC deactivates the scientific-initiation modality and removes its
// detail row and report bundle.
func (s *ModalidadeService) CancelIC(ctx context.Context, idAluno int64) (*models.Aluno, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	aluno, err := s.repo.CancelIC(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "iniciação científica não encontrada")
	}
	return aluno, nil
}

// CancelEP deactivates the professional-internship modality.
func (s *ModalidadeService) CancelEP(ctx context.Context, idAluno int64) (*models.Aluno, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	aluno, err := s.repo.CancelEP(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "estágio profissional não encontrado")
	}
	return aluno, nil
}

func (s *ModalidadeService) requireNoModality(ctx context.Context, idAluno int64) error {
	aluno, err := s.alunos.FindByID(ctx, idAluno)
	if err != nil {
		return storeError(err, "aluno não encontrado")
	}
	if aluno.Modalidade != "" && aluno.Modalidade != models.ModalidadeNenhuma {
		return appErrors.Clone(appErrors.ErrConflict, "aluno já possui uma modalidade ativa")
	}
	return nil
}
