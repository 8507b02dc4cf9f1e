// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the addresses of a contact in the order they were created.
func (srv *addressService) ListAddresses(ctx context.Context, accountID, contactID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByContact(ctx, accountID, contactID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress stores a new place and the address pointing at it.
func (srv *addressService) CreateAddress(ctx context.Context, accountID, contactID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	var created *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewContactRepository().FindContactByID(ctx, accountID, contactID); err != nil {
			return err
		}

		place := buildPlace(accountID, input)
		if err := repoFactory.NewPlaceRepository().CreatePlace(ctx, place); err != nil {
			return errors.Wrap(err, "failed to create place")
		}

		address := &entity.Address{
			AccountID: accountID,
			ContactID: contactID,
			Name:      input.Name,
			Place:     place,
		}
		if err := repoFactory.NewAddressRepository().CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		created = address

		return nil
	})
	if err != nil {
		return nil, translateAddressError(err, domainerrors.ErrAddressCreationFailed)
	}

	srv.log(ctx).Info("Address created",
		slog.String("address_id", created.ID.String()),
		slog.String("contact_id", contactID.String()))
	srv.publish(ctx, service.AddressCreated, created)

	return created, nil
}

// UpdateAddress replaces the name and every place field of an address.
func (srv *addressService) UpdateAddress(
	ctx context.Context,
	accountID, contactID, addressID uuid.UUID,
	input *usecase.AddressInput,
) (*entity.Address, error) {
	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := addressRepo.FindAddressByID(ctx, accountID, addressID)
		if err != nil {
			return err
		}
		if address.ContactID != contactID {
			return repository.ErrAddressNotFound
		}
		if !address.HasPlace() {
			return domainerrors.ErrMissingAssociation
		}

		address.Name = input.Name
		applyPlaceInput(address.Place, input)

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		if err := repoFactory.NewPlaceRepository().UpdatePlace(ctx, address.Place); err != nil {
			return errors.Wrap(err, "failed to update place")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, translateAddressError(err, domainerrors.ErrAddressUpdateFailed)
	}

	srv.log(ctx).Info("Address updated", slog.String("address_id", addressID.String()))
	srv.publish(ctx, service.AddressUpdated, updated)

	return updated, nil
}

// DestroyAddress removes an address and its place. A missing or foreign address is an error.
func (srv *addressService) DestroyAddress(ctx context.Context, accountID, addressID uuid.UUID) error {
	var deleted *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := addressRepo.FindAddressByID(ctx, accountID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, accountID, addressID); err != nil {
			return err
		}
		if address.HasPlace() {
			if err := repoFactory.NewPlaceRepository().DeletePlace(ctx, accountID, address.Place.ID); err != nil {
				return errors.Wrap(err, "failed to delete place")
			}
		}
		deleted = address

		return nil
	})
	if err != nil {
		return translateAddressError(err, nil)
	}

	srv.log(ctx).Info("Address deleted", slog.String("address_id", addressID.String()))
	srv.publish(ctx, service.AddressDeleted, deleted)

	return nil
}

// publish sends an address event. The mutation is already committed, so failures are only logged.
func (srv *addressService) publish(ctx context.Context, eventType service.AddressEventType, address *entity.Address) {
	if srv.publisher == nil {
		return
	}

	event := &service.AddressEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		AccountID:  address.AccountID.String(),
		ContactID:  address.ContactID.String(),
		AddressID:  address.ID.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishAddressEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish address event",
			slog.String("type", string(eventType)),
			slog.String("address_id", event.AddressID),
			slog.Any("error", err))
	}
}

func buildPlace(accountID uuid.UUID, input *usecase.AddressInput) *entity.Place {
	place := &entity.Place{AccountID: accountID}
	applyPlaceInput(place, input)

	return place
}

func applyPlaceInput(place *entity.Place, input *usecase.AddressInput) {
	place.Country = input.Country
	place.Street = input.Street
	place.City = input.City
	place.Province = input.Province
	place.PostalCode = input.PostalCode
	place.Location = entity.NewLocation(input.Latitude, input.Longitude)
}

// translateAddressError maps repository sentinels onto API errors.
// Errors that are already AppErrors pass through; anything else becomes fallback when given.
func translateAddressError(err error, fallback *domainerrors.BaseError) error {
	switch {
	case errors.Is(err, repository.ErrContactNotFound):
		return domainerrors.ErrContactNotFound
	case errors.Is(err, repository.ErrAddressNotFound), errors.Is(err, repository.ErrPlaceNotFound):
		return domainerrors.ErrAddressNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) || fallback == nil {
		return err
	}

	return errors.Wrap(fallback, err.Error())
}
