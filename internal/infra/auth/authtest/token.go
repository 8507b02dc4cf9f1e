// Package authtest mints access tokens for tests, signed the way the identity service signs them.
package authtest

import (
	"testing"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// SignAccessToken returns an HS256 access token carrying principal, valid for ttl.
// A negative ttl yields an already expired token.
func SignAccessToken(t testing.TB, secret string, principal entity.Principal, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := service.Claims{
		AccountID: principal.AccountID.String(),
		Locale:    principal.Locale,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign access token: %v", err)
	}

	return signed
}
