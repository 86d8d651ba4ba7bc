package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT custom claims for dashboard access
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
