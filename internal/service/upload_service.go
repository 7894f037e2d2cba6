package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

// Bundle discriminators for the upload endpoints.
const (
	BundleIC = "ic"
	BundleEP = "ep"
)

type relatorioRepository interface {
	GetICByAluno(ctx context.Context, idAluno int64) (*models.RelatorioIC, error)
	GetEPByAluno(ctx context.Context, idAluno int64) (*models.RelatorioEP, error)
	SetICSlot(ctx context.Context, idAluno int64, slot, path string) error
	SetEPSlot(ctx context.Context, idAluno int64, slot, path string) error
}

type uploadStorage interface {
	SaveUpload(originalName string, r io.Reader) (string, error)
	Delete(filename string) error
}

// UploadService persists one report document per request and points the
// owning bundle slot at it. Ownership always comes from the verified token.
type UploadService struct {
	repo    relatorioRepository
	storage uploadStorage
	logger  *zap.Logger
	maxSize int64
	timeout time.Duration
}

// NewUploadService constructs an UploadService.
func NewUploadService(repo relatorioRepository, storage uploadStorage, logger *zap.Logger, maxSize int64, timeout time.Duration) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{repo: repo, storage: storage, logger: logger, maxSize: maxSize, timeout: timeout}
}

// Store writes the document to disk and records it on the student's bundle.
// When the slot update fails the stored file is removed again so disk and
// store do not drift.
func (s *UploadService) Store(ctx context.Context, idAluno int64, bundle, slot, originalName string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", appErrors.Clone(appErrors.ErrBadRequest, "arquivo excede o tamanho máximo permitido")
	}

	stored, err := s.storage.SaveUpload(originalName, r)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	switch bundle {
	case BundleIC:
		err = s.repo.SetICSlot(ctx, idAluno, slot, stored)
	case BundleEP:
		err = s.repo.SetEPSlot(ctx, idAluno, slot, stored)
	default:
		err = appErrors.Clone(appErrors.ErrInternal, "")
	}
	if err != nil {
		if cleanupErr := s.storage.Delete(stored); cleanupErr != nil {
			s.logger.Warn("failed to remove orphaned upload", zap.String("arquivo", stored), zap.Error(cleanupErr))
		}
		return "", storeError(err, "")
	}

	s.logger.Info("documento recebido",
		zap.Int64("id_aluno", idAluno),
		zap.String("bundle", bundle),
		zap.String("campo", slot),
		zap.String("arquivo", stored),
	)
	return stored, nil
}

// GetRelatoriosEP returns the professional-internship bundle for the
// relatoriosep read; nil when the modality is not active.
func (s *UploadService) GetRelatoriosEP(ctx context.Context, idAluno int64) (*models.RelatorioEP, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	bundle, err := s.repo.GetEPByAluno(ctx, idAluno)
	if err != nil {
		return nil, storeError(err, "")
	}
	return bundle, nil
}
