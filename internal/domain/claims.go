package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims transporta a identidade autenticada extraída do token Bearer. A
// emissão do token é responsabilidade do serviço de sessão, fora deste
// sistema; aqui apenas validamos e lemos.
type Claims struct {
	UserID     string
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
