package database

import (
	"fmt"

	"filmadviser/internal/domain/catalog"
	"filmadviser/internal/domain/ratings"
	"filmadviser/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a postgres handle and migrates the schema. The handle is
// returned rather than stored in a package global; repositories receive it
// by injection.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the four tables. The Title struct backs two tables, so
// it is migrated once per kind with an explicit table name.
func Migrate(db *gorm.DB) error {
	for _, kind := range []catalog.Kind{catalog.KindMovie, catalog.KindSerial} {
		if err := db.Table(kind.Table()).AutoMigrate(&catalog.Title{}); err != nil {
			return fmt.Errorf("migrate %s: %w", kind.Table(), err)
		}
	}

	if err := db.AutoMigrate(&users.User{}, &ratings.Rating{}); err != nil {
		return fmt.Errorf("migrate users/ratings: %w", err)
	}
	return nil
}
