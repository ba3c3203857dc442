package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// models lists every table managed by AutoMigrate.
var models = []interface{}{
	&model.User{},
	&model.Product{},
	&model.Image{},
	&model.CheckoutSession{},
	&model.WebhookEvent{},
}

// NewGorm returns a connected GORM DB instance for the given driver.
// Driver errors are translated so duplicate keys surface as gorm.ErrDuplicatedKey.
func NewGorm(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates all tables. With reset set, existing tables are dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		logrus.Warn("RESET_DB=true detected, dropping all tables")
		for i := len(models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(models[i]); err != nil {
				logrus.WithError(err).Warn("failed to drop table (may not exist)")
			}
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
