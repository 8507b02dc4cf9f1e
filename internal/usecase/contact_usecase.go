package usecase

import (
	"context"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactUsecase resolves the contact that owns an address route.
type ContactUsecase interface {
	GetContact(ctx context.Context, accountID, contactID uuid.UUID) (*entity.Contact, error)
}
