package models

import "github.com/golang-jwt/jwt/v5"

// User roles as they travel on the token's tipo claim.
const (
	RoleAluno     = "aluno"
	RoleProfessor = "professor"
)

// JWTClaims is the identity minted at login and carried by every bearer
// token: subject id, email and role.
type JWTClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Tipo  string `json:"tipo"`
	jwt.RegisteredClaims
}
