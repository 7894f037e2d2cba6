package dto

// LoginRequest is the body of POST /api/login. Field names follow the
// legacy portal front-end.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse is the legacy login contract: success flag, matched role and
// the issued bearer token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Tipo    string `json:"tipo"`
	Token   string `json:"token,omitempty"`
}

// IdentityResponse is returned by GET /api/validar-token.
type IdentityResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Tipo  string `json:"tipo"`
}
