// Package router registers the routes of the API server.
package router

import (
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler    *handler.AddressHandler
	CountryHandler    *handler.CountryHandler
	AuthMiddleware    *middleware.AuthMiddleware
	LocaleMiddleware  *middleware.LocaleMiddleware
	ContactMiddleware *middleware.ContactMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler    *handler.AddressHandler
	countryHandler    *handler.CountryHandler
	authMiddleware    *middleware.AuthMiddleware
	localeMiddleware  *middleware.LocaleMiddleware
	contactMiddleware *middleware.ContactMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:    params.AddressHandler,
		countryHandler:    params.CountryHandler,
		authMiddleware:    params.AuthMiddleware,
		localeMiddleware:  params.LocaleMiddleware,
		contactMiddleware: params.ContactMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	apiV1.Use(r.localeMiddleware.Capture)

	apiV1.GET("/countries", r.countryHandler.GetCountries)

	addressesGroup := apiV1.Group("/contacts/:contact/addresses")
	addressesGroup.Use(r.contactMiddleware.Bind)
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.PUT("/:address", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:address", r.addressHandler.DeleteAddress)
	}
}
