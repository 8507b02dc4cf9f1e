package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactModel mirrors the 'contacts' table. Only the columns addresses need are mapped.
type ContactModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	FirstName string          `gorm:"type:varchar(255);not null"`
	LastName  string          `gorm:"type:varchar(255);not null;default:''"`
	Addresses []*AddressModel `gorm:"foreignKey:ContactID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// BeforeCreate assigns a time-ordered id when the caller did not.
func (m *ContactModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&ContactModel{},
		&PlaceModel{},
		&AddressModel{},
	}
}
