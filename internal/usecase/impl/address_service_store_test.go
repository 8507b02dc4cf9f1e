package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/infra/persistence/model"
	"contacts/internal/infra/persistence/postgres"
	mockService "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// createStoreAddressService builds the address service over the gorm repositories on in-memory sqlite.
func createStoreAddressService(t *testing.T) (usecase.AddressUsecase, *gorm.DB, *mockService.MockEventPublisher) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	publisher := mockService.NewMockEventPublisher(t)
	srv := NewAddressService(AddressServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		AddressRepo: postgres.NewAddressRepository(db),
		Publisher:   publisher,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, db, publisher
}

func addressIDs(addresses []*entity.Address) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(addresses))
	for _, address := range addresses {
		ids = append(ids, address.ID)
	}

	return ids
}

func TestAddressService_Store_CreateListDestroy(t *testing.T) {
	srv, db, publisher := createStoreAddressService(t)
	ctx := context.Background()
	accountID := uuid.New()

	contact := &model.ContactModel{AccountID: accountID, FirstName: "Ada"}
	require.NoError(t, db.Create(contact).Error)

	publisher.EXPECT().
		PublishAddressEvent(mock.Anything, mock.MatchedBy(func(e *service.AddressEvent) bool {
			return e.Type == service.AddressCreated
		})).
		Return(nil).
		Once()
	publisher.EXPECT().
		PublishAddressEvent(mock.Anything, mock.MatchedBy(func(e *service.AddressEvent) bool {
			return e.Type == service.AddressDeleted
		})).
		Return(nil).
		Once()

	created, err := srv.CreateAddress(ctx, accountID, contact.ID, springfieldInput())
	require.NoError(t, err)
	require.NotNil(t, created.Place)
	assert.Equal(t, "1 Main St", created.Place.Street)
	assert.Equal(t, "Springfield", created.Place.City)

	listed, err := srv.ListAddresses(ctx, accountID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{created.ID}, addressIDs(listed))

	require.NoError(t, srv.DestroyAddress(ctx, accountID, created.ID))

	listed, err = srv.ListAddresses(ctx, accountID, contact.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = srv.DestroyAddress(ctx, accountID, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_Store_DestroyForeignAccount(t *testing.T) {
	srv, db, publisher := createStoreAddressService(t)
	ctx := context.Background()
	accountID := uuid.New()

	contact := &model.ContactModel{AccountID: accountID, FirstName: "Ada"}
	require.NoError(t, db.Create(contact).Error)

	publisher.EXPECT().PublishAddressEvent(mock.Anything, mock.Anything).Return(nil).Once()

	created, err := srv.CreateAddress(ctx, accountID, contact.ID, springfieldInput())
	require.NoError(t, err)

	err = srv.DestroyAddress(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	listed, err := srv.ListAddresses(ctx, accountID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{created.ID}, addressIDs(listed))
}
