package impl

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	mockRepo "contacts/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_GetContact(t *testing.T) {
	ctx := context.Background()
	accountID, contactID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := mockRepo.NewMockContactRepository(t)
		repo.EXPECT().FindContactByID(ctx, accountID, contactID).Return(&entity.Contact{ID: contactID}, nil)

		contact, err := NewContactService(repo).GetContact(ctx, accountID, contactID)
		require.NoError(t, err)
		assert.Equal(t, contactID, contact.ID)
	})

	t.Run("not in account", func(t *testing.T) {
		repo := mockRepo.NewMockContactRepository(t)
		repo.EXPECT().FindContactByID(ctx, accountID, contactID).Return(nil, repository.ErrContactNotFound)

		_, err := NewContactService(repo).GetContact(ctx, accountID, contactID)
		assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		repo := mockRepo.NewMockContactRepository(t)
		repo.EXPECT().FindContactByID(ctx, accountID, contactID).Return(nil, errors.New("timeout"))

		_, err := NewContactService(repo).GetContact(ctx, accountID, contactID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrContactNotFound)
	})
}
