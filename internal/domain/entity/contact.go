package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person recorded in an account. Addresses hang off it.
type Contact struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
