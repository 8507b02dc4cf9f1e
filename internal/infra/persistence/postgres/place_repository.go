package postgres

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// placeRepository implements the domain.PlaceRepository interface.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// CreatePlace persists a new place and fills its generated fields.
func (repo *placeRepository) CreatePlace(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("invalid place information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// UpdatePlace replaces every postal field and the coordinates of a place.
// Empty values are written too, so a field left out of an edit is cleared.
func (repo *placeRepository) UpdatePlace(ctx context.Context, place *entity.Place) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("account_id = ? AND id = ?", place.AccountID, place.ID).
		Updates(map[string]any{
			"country":     place.Country,
			"street":      place.Street,
			"city":        place.City,
			"province":    place.Province,
			"postal_code": place.PostalCode,
			"latitude":    place.Latitude(),
			"longitude":   place.Longitude(),
			"updated_at":  now,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrAddressUpdateFailed.WrapMessage("invalid place information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update place")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	place.UpdatedAt = now

	return nil
}

// DeletePlace removes a place by its ID within an account.
func (repo *placeRepository) DeletePlace(ctx context.Context, accountID, placeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, placeID).
		Delete(&model.PlaceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete place")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// toPlaceDomain converts a GORM PlaceModel to a domain Place entity.
func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Country:    data.Country,
		Street:     data.Street,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Location:   entity.NewLocation(data.Latitude, data.Longitude),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromPlaceDomain converts a domain Place entity to a GORM PlaceModel.
func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	return &model.PlaceModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Country:    data.Country,
		Street:     data.Street,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Latitude:   data.Latitude(),
		Longitude:  data.Longitude(),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
