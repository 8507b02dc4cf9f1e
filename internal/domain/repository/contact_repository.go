package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when a contact does not exist in the account.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository is the read side of contacts needed to attach addresses.
type ContactRepository interface {
	// FindContactByID retrieves a contact by ID within an account.
	FindContactByID(ctx context.Context, accountID, contactID uuid.UUID) (*entity.Contact, error)
}
