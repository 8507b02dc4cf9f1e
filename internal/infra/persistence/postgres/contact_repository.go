package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contactRepository implements the domain.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// FindContactByID retrieves a contact by ID within an account.
func (repo *contactRepository) FindContactByID(ctx context.Context, accountID, contactID uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, contactID).
		First(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by ID")
	}

	return &entity.Contact{
		ID:        contactM.ID,
		AccountID: contactM.AccountID,
		FirstName: contactM.FirstName,
		LastName:  contactM.LastName,
		CreatedAt: contactM.CreatedAt,
		UpdatedAt: contactM.UpdatedAt,
	}, nil
}
