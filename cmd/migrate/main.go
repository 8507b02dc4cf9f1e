// Command migrate creates or updates the address tables.
package main

import (
	"context"
	"log/slog"

	"contacts/config"
	"contacts/internal/domain/lifecycle"
	logs "contacts/internal/infra/log"
	"contacts/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In

	Lc         fx.Lifecycle
	Shutdowner fx.Shutdowner
	DB         *gorm.DB
	Logger     *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(runMigrations),
	).Run()
}

func runMigrations(params migrateParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			migrateCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := postgres.Migrate(migrateCtx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Migrations applied")

			return params.Shutdowner.Shutdown()
		},
	})
}
