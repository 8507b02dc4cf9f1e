// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when no address matches the id within the account.
	ErrAddressNotFound = errors.New("address not found")
	// ErrPlaceNotFound is returned when no place matches the id within the account.
	ErrPlaceNotFound = errors.New("place not found")
)

// AddressRepository defines the interface for address-related database operations.
// Every lookup and mutation is scoped by the account that owns the address.
type AddressRepository interface {
	// CreateAddress persists a new address. Its Place must already be persisted.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address and its place by ID within an account.
	FindAddressByID(ctx context.Context, accountID, addressID uuid.UUID) (*entity.Address, error)

	// FindAddressesByContact retrieves all addresses of a contact in insertion order.
	FindAddressesByContact(ctx context.Context, accountID, contactID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress saves the address name. The place is saved through PlaceRepository.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address. Returns ErrAddressNotFound when nothing matched.
	DeleteAddress(ctx context.Context, accountID, addressID uuid.UUID) error
}

// PlaceRepository defines the persistence operations for the place behind an address.
type PlaceRepository interface {
	// CreatePlace persists a new place and fills its generated fields.
	CreatePlace(ctx context.Context, place *entity.Place) error

	// UpdatePlace replaces every postal field and the coordinates of a place.
	UpdatePlace(ctx context.Context, place *entity.Place) error

	// DeletePlace removes a place. Returns ErrPlaceNotFound when nothing matched.
	DeletePlace(ctx context.Context, accountID, placeID uuid.UUID) error
}
