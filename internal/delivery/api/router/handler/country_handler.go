package handler

import (
	"net/http"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CountryHandler serves the country reference list.
type CountryHandler struct {
	countryUC usecase.CountryUsecase
}

// NewCountryHandler is the constructor for CountryHandler
func NewCountryHandler(countryUC usecase.CountryUsecase) *CountryHandler {
	return &CountryHandler{countryUC: countryUC}
}

// GetCountries returns every country named in the request locale.
func (h *CountryHandler) GetCountries(c echo.Context) error {
	countries, err := h.countryUC.GetCountries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countries)
}
