package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
)

type alunoRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Aluno, error)
	GetDadosPessoal(ctx context.Context, idAluno int64) (*models.DadosPessoal, error)
	GetDadosFatecAluno(ctx context.Context, idAluno int64) (*models.DadosFatecAluno, error)
	UpdateRepresentante(ctx context.Context, idAluno int64, req dto.AtualizacaoRepresentanteRequest) (*models.DadosPessoal, error)
	UpdateDadosAluno(ctx context.Context, idAluno int64, req dto.AtualizacaoDadosAlunoRequest) (*models.Aluno, *models.DadosPessoal, error)
}

// AlunoService serves the student's own record: scoped reads and the two
// profile updates. Every operation is keyed by the id from the verified
// token.
type AlunoService struct {
	repo      alunoRepository
	validator *validator.Validate
	logger    *zap.Logger
	timeout   time.Duration
}

// NewAlunoService constructs an AlunoService.
func NewAlunoService(repo alunoRepository, validate *validator.Validate, logger *zap.Logger, timeout time.Duration) *AlunoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AlunoService{repo: repo, validator: validate, logger: logger, timeout: timeout}
}

// Get returns the student's own row.
func (s *AlunoService) Get(ctx context.Context, idAluno int64) (*models.Aluno, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	aluno, err := s.repo.FindByID(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "aluno não encontrado")
	}
	return aluno, nil
}

// GetDadosFatec returns the institutional record joined with the student
// row; nil means the student has none yet.
func (s *AlunoService) GetDadosFatec(ctx context.Context, idAluno int64) (*models.DadosFatecAluno, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	dados, err := s.repo.GetDadosFatecAluno(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return dados, nil
}

// UpdateRepresentante updates the legal representative contact block.
func (s *AlunoService) UpdateRepresentante(ctx context.Context, idAluno int64, req dto.AtualizacaoRepresentanteRequest) (*models.DadosPessoal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	dados, err := s.repo.UpdateRepresentante(ctx, idAluno, req)
	if err != nil {
		return nil, storeError(err, "dados pessoais não encontrados")
	}
	return dados, nil
}

// UpdateDados updates the student row plus the personal data row; both must
// exist or nothing is written.
func (s *AlunoService) UpdateDados(ctx context.Context, idAluno int64, req dto.AtualizacaoDadosAlunoRequest) (*models.Aluno, *models.DadosPessoal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, validationError(err)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	aluno, dados, err := s.repo.UpdateDadosAluno(ctx, idAluno, req)
	if err != nil {
		return nil, nil, storeError(err, "cadastro do aluno não encontrado")
	}
	return aluno, dados, nil
}
