// Package model holds the GORM table mappings. Domain code never sees these types.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID   `gorm:"type:uuid;not null;index:idx_addresses_on_contact"`
	ContactID uuid.UUID   `gorm:"type:uuid;not null;index:idx_addresses_on_contact"`
	PlaceID   uuid.UUID   `gorm:"type:uuid;not null"`
	Name      string      `gorm:"type:varchar(255);not null;default:''"`
	Place     *PlaceModel `gorm:"foreignKey:PlaceID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// BeforeCreate assigns a time-ordered id when the caller did not.
func (m *AddressModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
