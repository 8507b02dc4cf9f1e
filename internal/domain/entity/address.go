// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a named postal address attached to a contact.
// The postal components live in the associated Place.
type Address struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the address.
	AccountID uuid.UUID // The account (tenant) that owns the address.
	ContactID uuid.UUID // The contact the address belongs to.
	Name      string    // A user-defined label, e.g., "Home", "Office".
	Place     *Place    // The geographic part of the address. Nil only when the association failed to load.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// HasPlace reports whether the place association is loaded.
func (a *Address) HasPlace() bool {
	return a != nil && a.Place != nil
}
