package entity

import "github.com/google/uuid"

// Principal is the authenticated caller of a request.
// Every address operation is scoped by its AccountID.
type Principal struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Locale    string // Preferred locale from the user's settings, may be empty.
}
