// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"contacts/config"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid access token")

// jwtService is a concrete implementation of the TokenService interface using HMAC-signed JWTs.
type jwtService struct {
	accessSecret []byte // Secret key for signing access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: []byte(cfg.SecretKey.Access)}, nil
}

// ValidateAccessToken checks the validity of a token string and extracts the principal.
func (s *jwtService) ValidateAccessToken(tokenString string) (*entity.Principal, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, errors.Wrap(err, "subject"))
	}
	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, errors.Wrap(err, "account_id"))
	}

	return &entity.Principal{
		UserID:    userID,
		AccountID: accountID,
		Locale:    claims.Locale,
	}, nil
}
