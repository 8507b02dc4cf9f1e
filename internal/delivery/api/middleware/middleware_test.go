package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/infra/auth"
	"contacts/internal/infra/auth/authtest"
	"contacts/internal/infra/locale"
	mockUsecase "contacts/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEchoContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	m := NewAuthMiddleware(tokenSvc)

	principal := entity.Principal{UserID: uuid.New(), AccountID: uuid.New(), Locale: "fr"}
	token := authtest.SignAccessToken(t, cfg.SecretKey.Access, principal, time.Minute)

	t.Run("valid token", func(t *testing.T) {
		c, rec := newEchoContext(http.MethodGet, "/")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		var seen *entity.Principal
		err := m.Authenticate(func(c echo.Context) error {
			seen, _ = GetPrincipal(c)
			return okHandler(c)
		})(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, principal, *seen)
	})

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "MISSING_TOKEN"},
		{"not bearer", "Basic abc", "INVALID_TOKEN"},
		{"empty bearer", "Bearer ", "INVALID_TOKEN"},
		{"garbage token", "Bearer not-a-jwt", "INVALID_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newEchoContext(http.MethodGet, "/")
			if tt.header != "" {
				c.Request().Header.Set(echo.HeaderAuthorization, tt.header)
			}

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}

	t.Run("token without account", func(t *testing.T) {
		c, rec := newEchoContext(http.MethodGet, "/")
		noAccount := authtest.SignAccessToken(t, cfg.SecretKey.Access, entity.Principal{UserID: uuid.New()}, time.Minute)
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+noAccount)

		require.NoError(t, m.Authenticate(func(c echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		})(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})
}

func TestLocaleMiddleware_Capture(t *testing.T) {
	c, _ := newEchoContext(http.MethodGet, "/")
	c.Request().Header.Set("Accept-Language", "de-CH,de;q=0.9")
	c.Set(principalKey, &entity.Principal{Locale: "fr"})

	var prefs locale.Preferences
	err := NewLocaleMiddleware().Capture(func(c echo.Context) error {
		prefs = locale.PreferencesFromContext(c.Request().Context())
		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "fr", prefs.UserLocale)
	assert.Equal(t, "de-CH,de;q=0.9", prefs.AcceptLanguage)
}

func TestContactMiddleware_Bind(t *testing.T) {
	accountID, contactID := uuid.New(), uuid.New()

	bind := func(t *testing.T, contactUC *mockUsecase.MockContactUsecase, param string, withPrincipal bool) (*httptest.ResponseRecorder, *entity.Contact) {
		t.Helper()
		c, rec := newEchoContext(http.MethodGet, "/")
		c.SetParamNames(contactParam)
		c.SetParamValues(param)
		if withPrincipal {
			c.Set(principalKey, &entity.Principal{AccountID: accountID})
		}

		var bound *entity.Contact
		err := NewContactMiddleware(contactUC).Bind(func(c echo.Context) error {
			bound, _ = GetContact(c)
			return okHandler(c)
		})(c)
		require.NoError(t, err)

		return rec, bound
	}

	t.Run("found", func(t *testing.T) {
		contactUC := mockUsecase.NewMockContactUsecase(t)
		contactUC.EXPECT().
			GetContact(mock.Anything, accountID, contactID).
			Return(&entity.Contact{ID: contactID, AccountID: accountID}, nil)

		rec, bound := bind(t, contactUC, contactID.String(), true)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, bound)
		assert.Equal(t, contactID, bound.ID)
	})

	t.Run("not in account", func(t *testing.T) {
		contactUC := mockUsecase.NewMockContactUsecase(t)
		contactUC.EXPECT().
			GetContact(mock.Anything, accountID, contactID).
			Return(nil, domainerrors.ErrContactNotFound)

		rec, bound := bind(t, contactUC, contactID.String(), true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "CONTACT_NOT_FOUND")
		assert.Nil(t, bound)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec, _ := bind(t, mockUsecase.NewMockContactUsecase(t), "42", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_ID")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec, _ := bind(t, mockUsecase.NewMockContactUsecase(t), contactID.String(), false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", errors.Wrap(domainerrors.ErrAddressNotFound, "delete"), http.StatusNotFound, "ADDRESS_NOT_FOUND"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"echo error without message", echo.ErrNotFound, http.StatusNotFound, "HTTP_ERROR"},
		{"unknown error", errors.New("db exploded"), http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newEchoContext(http.MethodGet, "/")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.NotContains(t, rec.Body.String(), "db exploded")
		})
	}
}
