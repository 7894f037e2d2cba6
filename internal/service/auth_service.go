package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/models"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
)

type alunoAuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Aluno, error)
	StoreToken(ctx context.Context, id int64, token string) error
}

type professorAuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Professor, error)
	StoreToken(ctx context.Context, id int64, token string) error
}

// AuthConfig defines configuration for token issuance.
type AuthConfig struct {
	Secret           string
	Expiration       time.Duration
	StatementTimeout time.Duration
}

// AuthService authenticates students and professors and owns the token
// codec: HS256, fixed TTL, identity claims only.
type AuthService struct {
	alunos      alunoAuthRepository
	professores professorAuthRepository
	validator   *validator.Validate
	logger      *zap.Logger
	config      AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(alunos alunoAuthRepository, professores professorAuthRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{alunos: alunos, professores: professores, validator: validate, logger: logger, config: config}
}

const invalidCredentialsMessage = "Usuário ou senha inválidos"

// Login checks the credentials against the aluno table first and the
// professor table second, exactly like the legacy portal. The rejection is
// identical whether the email exists or not.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, invalidCredentialsMessage)
	}

	ctx, cancel := opContext(ctx, s.config.StatementTimeout)
	defer cancel()

	aluno, err := s.alunos.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if passwordMatches(aluno.Senha, req.Senha) {
			return s.issueFor(ctx, aluno.ID, aluno.Email, models.RoleAluno)
		}
	case errors.Is(err, sql.ErrNoRows):
		// fall through to professor lookup
	default:
		return nil, storeError(err, "")
	}

	professor, err := s.professores.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if passwordMatches(professor.Senha, req.Senha) {
			return s.issueFor(ctx, professor.ID, professor.Email, models.RoleProfessor)
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, storeError(err, "")
	}

	return nil, appErrors.Clone(appErrors.ErrUnauthenticated, invalidCredentialsMessage)
}

func (s *AuthService) issueFor(ctx context.Context, id int64, email, tipo string) (*dto.LoginResponse, error) {
	token, err := s.IssueToken(id, email, tipo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	// Bookkeeping only; verification never consults the stored value.
	var storeErr error
	if tipo == models.RoleProfessor {
		storeErr = s.professores.StoreToken(ctx, id, token)
	} else {
		storeErr = s.alunos.StoreToken(ctx, id, token)
	}
	if storeErr != nil {
		s.logger.Warn("failed to persist issued token", zap.Int64("id", id), zap.Error(storeErr))
	}

	return &dto.LoginResponse{Success: true, Tipo: tipo, Token: token}, nil
}

// IssueToken mints a signed identity token with the configured TTL.
func (s *AuthService) IssueToken(id int64, email, tipo string) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		ID:    id,
		Email: email,
		Tipo:  tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// ValidateToken parses a bearer token. Malformed, tampered and expired
// tokens all surface the same FORBIDDEN rejection.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrForbidden.Kind, appErrors.ErrForbidden.Status, appErrors.ErrForbidden.Message)
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "")
	}

	return claims, nil
}

// passwordMatches accepts a bcrypt hash or, for rows predating hashing, the
// plain stored value.
func passwordMatches(stored, provided string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}
