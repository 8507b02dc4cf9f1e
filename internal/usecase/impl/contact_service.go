package impl

import (
	"context"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/google/uuid"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService is the constructor for contactService.
func NewContactService(contactRepo repository.ContactRepository) usecase.ContactUsecase {
	return &contactService{contactRepo: contactRepo}
}

// GetContact returns the contact when it belongs to the account.
func (srv *contactService) GetContact(ctx context.Context, accountID, contactID uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindContactByID(ctx, accountID, contactID)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrContactNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contact")
	}

	return contact, nil
}
