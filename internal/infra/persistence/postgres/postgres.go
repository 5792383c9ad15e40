// Package postgres implements the repositories on PostgreSQL through gorm.
package postgres

import (
	"context"
	"log/slog"

	"evacuation/config"
	"evacuation/internal/domain/lifecycle"
	"evacuation/internal/errors"
	"evacuation/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the primary and any replicas from the environment. The
// connection is verified on start, where the schema is also migrated when
// env.autoMigrate is set.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}

	// Writes that span statements run inside TransactionManager.Execute.
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if params.Config.Env.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
			}
			go watchPoolWaits(watchCtx, params.Logger, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatching()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate brings every persistence model's table and indexes up to date.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return errors.Wrap(db.WithContext(ctx).AutoMigrate(model.All()...), "migrate schema")
}
