// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address. The place is written by PlaceRepository.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(addressM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("invalid contact or place reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address and its place by ID within an account.
// It always reads the primary since its callers mutate the row next.
func (repo *addressRepository) FindAddressByID(ctx context.Context, accountID, addressID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Place").
		Where("account_id = ? AND id = ?", accountID, addressID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByContact retrieves all addresses of a contact in insertion order.
func (repo *addressRepository) FindAddressesByContact(ctx context.Context, accountID, contactID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Preload("Place").
		Where("account_id = ? AND contact_id = ?", accountID, contactID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by contact")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress saves the address name.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("account_id = ? AND id = ?", address.AccountID, address.ID).
		Updates(map[string]any{
			"name":       address.Name,
			"updated_at": now,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrAddressUpdateFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = now

	return nil
}

// DeleteAddress removes an address by its ID within an account.
func (repo *addressRepository) DeleteAddress(ctx context.Context, accountID, addressID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, addressID).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		AccountID: data.AccountID,
		ContactID: data.ContactID,
		Name:      data.Name,
		Place:     toPlaceDomain(data.Place),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	addressM := &model.AddressModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		ContactID: data.ContactID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Place != nil {
		addressM.PlaceID = data.Place.ID
	}

	return addressM
}
