package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params holds dependencies for the database client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool (with read replicas when configured) and ties it to the app lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool reports connection pool waits that happened since the previous tick.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, ok := poolWait(prev, cur); ok {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait describes the waits between two pool snapshots. ok is false when nobody waited.
func poolWait(prev, cur sql.DBStats) (level slog.Level, attrs []slog.Attr, ok bool) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return 0, nil, false
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs = []slog.Attr{
		slog.Int64("wait_count", waitDelta),
		slog.Duration("wait_duration", waitDurationDelta),
		slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
	}

	level = slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
