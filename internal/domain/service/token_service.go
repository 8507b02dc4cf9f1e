package service

import (
	"contacts/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	AccountID string `json:"account_id"`
	Locale    string `json:"locale,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity service.
type TokenService interface {
	// ValidateAccessToken checks the signature and expiry and returns the principal.
	ValidateAccessToken(tokenString string) (*entity.Principal, error)
}
