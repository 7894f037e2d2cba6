package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error carrying a stable machine-readable kind and
// the HTTP status it maps to.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(kind string, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, kind string, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message, Err: err}
}

// Predefined errors for the kinds handlers can surface.
var (
	ErrUnauthenticated = New("UNAUTHENTICATED", http.StatusUnauthorized, "credenciais não fornecidas")
	ErrForbidden       = New("FORBIDDEN", http.StatusForbidden, "token inválido ou expirado")
	ErrBadRequest      = New("BAD_REQUEST", http.StatusBadRequest, "requisição inválida")
	ErrNotFound        = New("NOT_FOUND", http.StatusNotFound, "registro não encontrado")
	ErrConflict        = New("CONFLICT", http.StatusConflict, "conflito com o estado atual")
	ErrTimeout         = New("TIMEOUT", http.StatusGatewayTimeout, "operação excedeu o tempo limite")
	ErrInternal        = New("INTERNAL", http.StatusInternalServerError, "erro no servidor")

	// ErrCacheMiss signals an absent cache entry; never sent to clients.
	ErrCacheMiss = errors.New("cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Kind, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
