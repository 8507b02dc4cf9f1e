// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddressInput is the full set of writable address fields.
// Update replaces every field, so an empty value clears it.
type AddressInput struct {
	Name       string
	Country    string
	Street     string
	City       string
	Province   string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
}

// AddressUsecase defines the address operations available to a contact.
// The account id is always supplied by the caller and scopes every query.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, accountID, contactID uuid.UUID) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, accountID, contactID uuid.UUID, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, accountID, contactID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	DestroyAddress(ctx context.Context, accountID, addressID uuid.UUID) error
}
