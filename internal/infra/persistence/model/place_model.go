package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceModel mirrors the 'places' table holding the postal part of an address.
type PlaceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Country    string    `gorm:"type:varchar(3);not null;default:''"`
	Street     string    `gorm:"type:varchar(255);not null;default:''"`
	City       string    `gorm:"type:varchar(255);not null;default:''"`
	Province   string    `gorm:"type:varchar(255);not null;default:''"`
	PostalCode string    `gorm:"type:varchar(255);not null;default:''"`
	Latitude   *float64  `gorm:"type:decimal(10,8)"`
	Longitude  *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

// BeforeCreate assigns a time-ordered id when the caller did not.
func (m *PlaceModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
