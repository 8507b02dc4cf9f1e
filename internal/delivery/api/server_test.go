package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router"
	"contacts/internal/delivery/api/router/handler"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/infra/auth"
	"contacts/internal/infra/auth/authtest"
	"contacts/internal/infra/cache"
	"contacts/internal/infra/countries"
	"contacts/internal/infra/locale"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	token     string
	principal entity.Principal
	addressUC *mockUsecase.MockAddressUsecase
	contactUC *mockUsecase.MockContactUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Locale: &config.LocaleConfig{Default: "en", Supported: []string{"en", "fr", "de"}},
		Maps: &config.MapsConfig{
			PlaceURL:       "https://www.google.com/maps/place/",
			CoordinatesURL: "https://maps.google.com/maps",
			Zoom:           7,
		},
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "1M"

	return cfg
}

func createTestServer(t *testing.T) serverFixtures {
	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	catalog, err := countries.NewCatalog()
	require.NoError(t, err)
	resolver, err := locale.NewResolver(cfg)
	require.NoError(t, err)

	addressUC := mockUsecase.NewMockAddressUsecase(t)
	contactUC := mockUsecase.NewMockContactUsecase(t)
	countryUC := impl.NewCountryService(impl.CountryServiceParams{
		Catalog:  catalog,
		Resolver: resolver,
		Memo:     cache.NewMemo[[]entity.Country](),
		Logger:   logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{
			AddressUC:      addressUC,
			LocaleResolver: resolver,
			Presenter:      handler.NewAddressPresenter(catalog, cfg),
			Logger:         logger,
		}),
		CountryHandler:    handler.NewCountryHandler(countryUC),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokenSvc),
		LocaleMiddleware:  middleware.NewLocaleMiddleware(),
		ContactMiddleware: middleware.NewContactMiddleware(contactUC),
	})

	principal := entity.Principal{UserID: uuid.New(), AccountID: uuid.New()}
	token := authtest.SignAccessToken(t, cfg.SecretKey.Access, principal, time.Minute)

	return serverFixtures{echo: e, token: token, principal: principal, addressUC: addressUC, contactUC: contactUC}
}

func (fx serverFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.token)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthIsPublic(t *testing.T) {
	fx := createTestServer(t)

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_RequiresToken(t *testing.T) {
	fx := createTestServer(t)

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/countries", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestServer_GetCountries_FollowsAcceptLanguage(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/api/v1/countries", "", map[string]string{"Accept-Language": "fr-CH, fr;q=0.9"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data)

	names := map[string]string{}
	for _, country := range body.Data {
		require.Len(t, country, 2)
		names[country["code"]] = country["name"]
	}
	assert.Equal(t, "Allemagne", names["DE"])
}

func TestServer_ContactOutsideAccount(t *testing.T) {
	fx := createTestServer(t)
	contactID := uuid.New()

	fx.contactUC.EXPECT().
		GetContact(mock.Anything, fx.principal.AccountID, contactID).
		Return(nil, domainerrors.ErrContactNotFound)

	rec := fx.do(http.MethodGet, "/api/v1/contacts/"+contactID.String()+"/addresses", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONTACT_NOT_FOUND")
}

func TestServer_DeleteAddress(t *testing.T) {
	fx := createTestServer(t)
	contactID, addressID := uuid.New(), uuid.New()

	fx.contactUC.EXPECT().
		GetContact(mock.Anything, fx.principal.AccountID, contactID).
		Return(&entity.Contact{ID: contactID, AccountID: fx.principal.AccountID}, nil)
	fx.addressUC.EXPECT().
		DestroyAddress(mock.Anything, fx.principal.AccountID, addressID).
		Return(nil)

	rec := fx.do(http.MethodDelete, "/api/v1/contacts/"+contactID.String()+"/addresses/"+addressID.String(), "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":true`)
	assert.Contains(t, rec.Body.String(), addressID.String())
}
