// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/delivery/api/validator"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressRequest is the body accepted by create and update. Unknown fields are ignored.
// Coordinates may be sent as JSON numbers or numeric strings.
type AddressRequest struct {
	Name       string      `json:"name" validate:"max=255"`
	Country    string      `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	Street     string      `json:"street" validate:"max=255"`
	City       string      `json:"city" validate:"max=255"`
	Province   string      `json:"province" validate:"max=255"`
	PostalCode string      `json:"postal_code" validate:"max=255"`
	Latitude   json.Number `json:"latitude" validate:"omitempty,latitude"`
	Longitude  json.Number `json:"longitude" validate:"omitempty,longitude"`
}

// DeleteAddressResponse confirms a deletion.
type DeleteAddressResponse struct {
	Deleted bool      `json:"deleted"`
	ID      uuid.UUID `json:"id"`
}

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC      usecase.AddressUsecase
	LocaleResolver service.LocaleResolver
	Presenter      *AddressPresenter
	Logger         *slog.Logger
}

// AddressHandler serves the addresses of a contact.
type AddressHandler struct {
	addressUC      usecase.AddressUsecase
	localeResolver service.LocaleResolver
	presenter      *AddressPresenter
	logger         *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC:      params.AddressUC,
		localeResolver: params.LocaleResolver,
		presenter:      params.Presenter,
		logger:         params.Logger,
	}
}

// ListAddresses returns every address of the contact.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	principal, contact, err := h.scope(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	addresses, err := h.addressUC.ListAddresses(ctx, principal.AccountID, contact.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views, err := h.presenter.PresentAll(h.localeResolver.Resolve(ctx), addresses)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// CreateAddress adds an address to the contact.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	principal, contact, err := h.scope(c)
	if err != nil {
		return err
	}

	input, err := h.bindInput(c)
	if err != nil || input == nil {
		return err
	}

	ctx := c.Request().Context()
	address, err := h.addressUC.CreateAddress(ctx, principal.AccountID, contact.ID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.present(c, http.StatusCreated, address)
}

// UpdateAddress replaces the fields of one of the contact's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	principal, contact, err := h.scope(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("address"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	input, err := h.bindInput(c)
	if err != nil || input == nil {
		return err
	}

	ctx := c.Request().Context()
	address, err := h.addressUC.UpdateAddress(ctx, principal.AccountID, contact.ID, addressID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.present(c, http.StatusOK, address)
}

// DeleteAddress removes an address. A missing address is reported as not found.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	principal, _, err := h.scope(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("address"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DestroyAddress(c.Request().Context(), principal.AccountID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeleteAddressResponse{Deleted: true, ID: addressID})
}

func (h *AddressHandler) present(c echo.Context, status int, address *entity.Address) error {
	view, err := h.presenter.Present(h.localeResolver.Resolve(c.Request().Context()), address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, view)
}

// scope returns the caller and the contact bound by the middleware chain.
// The error is left to the echo error handler.
func (h *AddressHandler) scope(c echo.Context) (*entity.Principal, *entity.Contact, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, nil, echo.ErrUnauthorized
	}

	contact, ok := middleware.GetContact(c)
	if !ok {
		return nil, nil, domainerrors.ErrContactNotFound
	}

	return principal, contact, nil
}

// bindInput decodes and validates the request body. A nil input with a nil
// error means a 400 response has been written.
func (h *AddressHandler) bindInput(c echo.Context) (*usecase.AddressInput, error) {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}
	req.Country = strings.ToUpper(strings.TrimSpace(req.Country))

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.FieldErrors(err))
	}

	input, err := req.toInput()
	if err != nil {
		return nil, response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	return input, nil
}

func (req *AddressRequest) toInput() (*usecase.AddressInput, error) {
	input := &usecase.AddressInput{
		Name:       strings.TrimSpace(req.Name),
		Country:    req.Country,
		Street:     strings.TrimSpace(req.Street),
		City:       strings.TrimSpace(req.City),
		Province:   strings.TrimSpace(req.Province),
		PostalCode: strings.TrimSpace(req.PostalCode),
	}

	var err error
	if input.Latitude, err = parseCoordinate(req.Latitude); err != nil {
		return nil, err
	}
	if input.Longitude, err = parseCoordinate(req.Longitude); err != nil {
		return nil, err
	}

	return input, nil
}

func parseCoordinate(n json.Number) (*float64, error) {
	if n == "" {
		return nil, nil
	}

	v, err := n.Float64()
	if err != nil {
		return nil, err
	}

	return &v, nil
}
