package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davg505/portal-estagio-api/internal/dto"
	"github.com/davg505/portal-estagio-api/internal/middleware"
	appErrors "github.com/davg505/portal-estagio-api/pkg/errors"
	"github.com/davg505/portal-estagio-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthHandler wires the login and token-validation endpoints.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate student or professor
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} response.ErrorBody
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Same rejection as a wrong password so the response shape never
		// reveals whether the payload or the credential was bad.
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthenticated, "Usuário ou senha inválidos"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// ValidarToken godoc
// @Summary Return the identity decoded from the bearer token
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} response.ErrorBody
// @Router /api/validar-token [get]
func (h *AuthHandler) ValidarToken(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}
	response.JSON(c, http.StatusOK, dto.IdentityResponse{ID: claims.ID, Email: claims.Email, Tipo: claims.Tipo})
}
