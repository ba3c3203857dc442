package db

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/config"
	"storefront/internal/repository"
)

const disconnectTimeout = 10 * time.Second

// OpenStore connects the configured storage backend and returns its repositories.
func OpenStore(ctx context.Context, cfg *config.Config) (*repository.Store, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, err := NewMongo(ctx, cfg.MongoURL)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logrus.WithError(err).Error("mongo disconnect")
			}
		}

		database := client.Database(cfg.MongoDatabase)
		if cfg.ResetDB {
			logrus.Warn("RESET_DB=true detected, dropping database...")
			if err := database.Drop(ctx); err != nil {
				closeFn()
				return nil, nil, err
			}
		}
		if err := repository.EnsureMongoIndexes(ctx, database); err != nil {
			closeFn()
			return nil, nil, err
		}
		return repository.NewMongoStore(database), closeFn, nil

	default:
		gormDB, err := NewGorm(cfg.DBDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(gormDB, cfg.ResetDB); err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewGormStore(gormDB), closeFn, nil
	}
}
