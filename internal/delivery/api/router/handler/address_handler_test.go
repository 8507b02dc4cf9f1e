package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/internal/delivery/api/response"
	"contacts/internal/delivery/api/validator"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/infra/countries"
	mockService "contacts/internal/mocks/service"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressHandlerFixtures holds all test dependencies for address handler tests.
type addressHandlerFixtures struct {
	handler   *AddressHandler
	addressUC *mockUsecase.MockAddressUsecase
	echo      *echo.Echo
	principal *entity.Principal
	contact   *entity.Contact
}

func createTestAddressHandler(t *testing.T) addressHandlerFixtures {
	catalog, err := countries.NewCatalog()
	require.NoError(t, err)

	resolver := mockService.NewMockLocaleResolver(t)
	resolver.EXPECT().Resolve(mock.Anything).Return("en").Maybe()

	addressUC := mockUsecase.NewMockAddressUsecase(t)
	e := echo.New()
	e.Validator = validator.New()

	accountID := uuid.New()

	return addressHandlerFixtures{
		handler: NewAddressHandler(AddressHandlerParams{
			AddressUC:      addressUC,
			LocaleResolver: resolver,
			Presenter:      NewAddressPresenter(catalog, testMapsConfig()),
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		addressUC: addressUC,
		echo:      e,
		principal: &entity.Principal{UserID: uuid.New(), AccountID: accountID, Locale: "en"},
		contact:   &entity.Contact{ID: uuid.New(), AccountID: accountID},
	}
}

func (fx addressHandlerFixtures) newContext(method, body string, addressID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set("principal", fx.principal)
	c.Set("contact", fx.contact)
	if addressID != "" {
		c.SetParamNames("contact", "address")
		c.SetParamValues(fx.contact.ID.String(), addressID)
	}

	return c, rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func storedAddress(fx addressHandlerFixtures, input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		ID:        uuid.New(),
		AccountID: fx.principal.AccountID,
		ContactID: fx.contact.ID,
		Name:      input.Name,
		Place: &entity.Place{
			Country:    input.Country,
			Street:     input.Street,
			City:       input.City,
			Province:   input.Province,
			PostalCode: input.PostalCode,
			Location:   entity.NewLocation(input.Latitude, input.Longitude),
		},
	}
}

func TestAddressHandler_CreateAddress_Springfield(t *testing.T) {
	fx := createTestAddressHandler(t)
	body := `{"name":"Home","country":"US","street":"1 Main St","city":"Springfield","province":"IL",
		"postal_code":"62704","latitude":"39.8","longitude":"-89.6","account_id":"ignored","edit":true}`

	var captured *usecase.AddressInput
	fx.addressUC.EXPECT().
		CreateAddress(mock.Anything, fx.principal.AccountID, fx.contact.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
			captured = input
			return storedAddress(fx, input), nil
		})

	c, rec := fx.newContext(http.MethodPost, body, "")
	require.NoError(t, fx.handler.CreateAddress(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "Home", captured.Name)
	assert.InDelta(t, 39.8, *captured.Latitude, 1e-9)
	assert.InDelta(t, -89.6, *captured.Longitude, 1e-9)

	view := decodeData[AddressView](t, rec)
	assert.Equal(t, "1 Main St", view.Street)
	assert.Equal(t, "Springfield", view.City)
	assert.Equal(t, "United States", view.CountryName)
	assert.NotEmpty(t, view.Address)
	assert.False(t, view.Edit)
}

func TestAddressHandler_CreateAddress_NumericCoordinatesAndLowercaseCountry(t *testing.T) {
	fx := createTestAddressHandler(t)

	fx.addressUC.EXPECT().
		CreateAddress(mock.Anything, fx.principal.AccountID, fx.contact.ID, mock.MatchedBy(func(input *usecase.AddressInput) bool {
			return input.Country == "FR" && *input.Latitude == 48.85 && *input.Longitude == 2.35
		})).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
			return storedAddress(fx, input), nil
		})

	c, rec := fx.newContext(http.MethodPost, `{"name":"Flat","country":"fr","latitude":48.85,"longitude":2.35}`, "")
	require.NoError(t, fx.handler.CreateAddress(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddressHandler_CreateAddress_ValidationFailure(t *testing.T) {
	fx := createTestAddressHandler(t)

	c, rec := fx.newContext(http.MethodPost, `{"name":"Home","country":"XX","latitude":"123"}`, "")
	require.NoError(t, fx.handler.CreateAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, rec.Body.String(), `"field":"country"`)
	assert.Contains(t, rec.Body.String(), `"field":"latitude"`)
}

func TestAddressHandler_CreateAddress_MalformedBody(t *testing.T) {
	fx := createTestAddressHandler(t)

	c, rec := fx.newContext(http.MethodPost, `{"name":`, "")
	require.NoError(t, fx.handler.CreateAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	fx := createTestAddressHandler(t)
	home := storedAddress(fx, &usecase.AddressInput{Name: "Home", Country: "DE", City: "Berlin"})
	work := storedAddress(fx, &usecase.AddressInput{Name: "Work", City: "Potsdam"})

	fx.addressUC.EXPECT().
		ListAddresses(mock.Anything, fx.principal.AccountID, fx.contact.ID).
		Return([]*entity.Address{home, work}, nil)

	c, rec := fx.newContext(http.MethodGet, "", "")
	require.NoError(t, fx.handler.ListAddresses(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	views := decodeData[[]AddressView](t, rec)
	require.Len(t, views, 2)
	assert.Equal(t, home.ID, views[0].ID)
	assert.Equal(t, "Germany", views[0].CountryName)
	assert.Equal(t, "Berlin Germany", views[0].Address)
	assert.Equal(t, work.ID, views[1].ID)
}

func TestAddressHandler_ListAddresses_Empty(t *testing.T) {
	fx := createTestAddressHandler(t)
	fx.addressUC.EXPECT().ListAddresses(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	c, rec := fx.newContext(http.MethodGet, "", "")
	require.NoError(t, fx.handler.ListAddresses(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestAddressHandler_UpdateAddress(t *testing.T) {
	fx := createTestAddressHandler(t)
	addressID := uuid.New()

	fx.addressUC.EXPECT().
		UpdateAddress(mock.Anything, fx.principal.AccountID, fx.contact.ID, addressID, mock.MatchedBy(func(input *usecase.AddressInput) bool {
			return input.Name == "Office" && input.Street == "" && input.Latitude == nil
		})).
		RunAndReturn(func(_ context.Context, _, _, id uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
			address := storedAddress(fx, input)
			address.ID = id
			return address, nil
		})

	c, rec := fx.newContext(http.MethodPut, `{"name":"Office","city":"Chicago"}`, addressID.String())
	require.NoError(t, fx.handler.UpdateAddress(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	view := decodeData[AddressView](t, rec)
	assert.Equal(t, addressID, view.ID)
	assert.Equal(t, "Chicago", view.City)
}

func TestAddressHandler_UpdateAddress_NotFound(t *testing.T) {
	fx := createTestAddressHandler(t)
	addressID := uuid.New()

	fx.addressUC.EXPECT().
		UpdateAddress(mock.Anything, mock.Anything, mock.Anything, addressID, mock.Anything).
		Return(nil, domainerrors.ErrAddressNotFound)

	c, rec := fx.newContext(http.MethodPut, `{"name":"Office"}`, addressID.String())
	require.NoError(t, fx.handler.UpdateAddress(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADDRESS_NOT_FOUND")
}

func TestAddressHandler_UpdateAddress_InvalidID(t *testing.T) {
	fx := createTestAddressHandler(t)

	c, rec := fx.newContext(http.MethodPut, `{"name":"Office"}`, "not-a-uuid")
	require.NoError(t, fx.handler.UpdateAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	fx := createTestAddressHandler(t)
	addressID := uuid.New()

	fx.addressUC.EXPECT().DestroyAddress(mock.Anything, fx.principal.AccountID, addressID).Return(nil).Once()

	c, rec := fx.newContext(http.MethodDelete, "", addressID.String())
	require.NoError(t, fx.handler.DeleteAddress(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, DeleteAddressResponse{Deleted: true, ID: addressID}, decodeData[DeleteAddressResponse](t, rec))

	fx.addressUC.EXPECT().DestroyAddress(mock.Anything, fx.principal.AccountID, addressID).Return(domainerrors.ErrAddressNotFound).Once()

	c, rec = fx.newContext(http.MethodDelete, "", addressID.String())
	require.NoError(t, fx.handler.DeleteAddress(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADDRESS_NOT_FOUND")
}

func TestAddressHandler_RequiresBoundContact(t *testing.T) {
	fx := createTestAddressHandler(t)
	c, _ := fx.newContext(http.MethodGet, "", "")
	c.Set("contact", nil)

	err := fx.handler.ListAddresses(c)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}
