package middleware

import (
	"contacts/internal/infra/locale"

	"github.com/labstack/echo/v4"
)

// LocaleMiddleware records the locale hints of a request for the LocaleResolver.
type LocaleMiddleware struct{}

// NewLocaleMiddleware creates a new locale middleware
func NewLocaleMiddleware() *LocaleMiddleware {
	return &LocaleMiddleware{}
}

// Capture stores the user's locale claim and the Accept-Language header on the request context.
func (m *LocaleMiddleware) Capture(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		prefs := locale.Preferences{
			AcceptLanguage: c.Request().Header.Get("Accept-Language"),
		}
		if principal, ok := GetPrincipal(c); ok {
			prefs.UserLocale = principal.Locale
		}

		ctx := locale.WithPreferences(c.Request().Context(), prefs)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
