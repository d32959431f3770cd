package db

import (
	"github.com/wares-dev/wares/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection pool. TranslateError lets the
// repository layer map duplicate-key and foreign-key violations onto its
// error taxonomy instead of matching driver strings.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the tables for every registered model.
func Migrate(conn *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Item{},
		&models.Token{},
	}

	for _, entity := range entities {
		if err := conn.AutoMigrate(entity); err != nil {
			return err
		}
	}

	return nil
}
