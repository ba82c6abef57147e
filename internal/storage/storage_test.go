package storage

import (
	"testing"

	"filmadviser/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB gives each test a private in-memory database with the real
// schema. A single connection keeps :memory: from forking per-conn copies.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}
	return db
}
