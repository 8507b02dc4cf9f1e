package middleware

import (
	"strings"

	"contacts/internal/delivery/api/response"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// AuthMiddleware authenticates requests with a JWT access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		principal, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		// Every address route is tenant scoped; callers outside any account are refused.
		if principal.AccountID == uuid.Nil {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}

		c.Set(principalKey, principal)

		return next(c)
	}
}

// GetPrincipal returns the authenticated caller. It must be used after Authenticate.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(*entity.Principal)

	return principal, ok && principal != nil
}
