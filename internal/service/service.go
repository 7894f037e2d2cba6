package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

// defaultStatementTimeout bounds every store round-trip when no timeout is
// configured.
const defaultStatementTimeout = 5 * time.Second

// opContext derives a bounded context for one store or disk operation.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultStatementTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// storeError maps low-level failures onto the client-facing kinds: missing
// rows become NOT_FOUND, deadline hits become TIMEOUT, the rest INTERNAL.
func storeError(err error, message string) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, message)
	case errors.Is(err, context.DeadlineExceeded):
		return appErrors.Wrap(err, appErrors.ErrTimeout.Kind, appErrors.ErrTimeout.Status, appErrors.ErrTimeout.Message)
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
}

// validationError turns validator failures into a BAD_REQUEST naming every
// missing field, before any write happens.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		names := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			names = append(names, strings.ToLower(fe.Field()))
		}
		return appErrors.Clone(appErrors.ErrBadRequest, "Campos obrigatórios ausentes ou inválidos: "+strings.Join(names, ", "))
	}
	return appErrors.Wrap(err, appErrors.ErrBadRequest.Kind, appErrors.ErrBadRequest.Status, appErrors.ErrBadRequest.Message)
}
