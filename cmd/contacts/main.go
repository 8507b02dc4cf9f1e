package main

import (
	"context"
	"log/slog"
	"os"

	"contacts/config"
	"contacts/internal/delivery"
	"contacts/internal/delivery/api"
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"
	"contacts/internal/domain/entity"
	"contacts/internal/infra/auth"
	"contacts/internal/infra/cache"
	"contacts/internal/infra/countries"
	"contacts/internal/infra/locale"
	logs "contacts/internal/infra/log"
	"contacts/internal/infra/persistence/postgres"
	"contacts/internal/infra/pubsub"
	"contacts/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
			postgres.NewPlaceRepository,
			postgres.NewContactRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			countries.NewCatalog,
			locale.NewResolver,
			cache.NewMemo[[]entity.Country],
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewContactService,
			impl.NewCountryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewLocaleMiddleware,
			middleware.NewContactMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressPresenter,
			handler.NewAddressHandler,
			handler.NewCountryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
