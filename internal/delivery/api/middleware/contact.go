package middleware

import (
	"contacts/internal/delivery/api/response"
	"contacts/internal/domain/entity"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contactKey   = "contact"
	contactParam = "contact"
)

// ContactMiddleware loads the contact named in the route.
type ContactMiddleware struct {
	contactUC usecase.ContactUsecase
}

// NewContactMiddleware is the constructor for ContactMiddleware.
func NewContactMiddleware(contactUC usecase.ContactUsecase) *ContactMiddleware {
	return &ContactMiddleware{contactUC: contactUC}
}

// Bind resolves the :contact path parameter within the caller's account.
// It must be used after Authenticate.
func (m *ContactMiddleware) Bind(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated user")
		}

		contactID, err := uuid.Parse(c.Param(contactParam))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
		}

		contact, err := m.contactUC.GetContact(c.Request().Context(), principal.AccountID, contactID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(contactKey, contact)

		return next(c)
	}
}

// GetContact returns the contact resolved by Bind.
func GetContact(c echo.Context) (*entity.Contact, bool) {
	contact, ok := c.Get(contactKey).(*entity.Contact)

	return contact, ok && contact != nil
}
