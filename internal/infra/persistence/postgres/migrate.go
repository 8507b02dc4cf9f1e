package postgres

import (
	"context"

	"contacts/internal/errors"
	"contacts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or alters the tables behind contacts, places and addresses.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}
