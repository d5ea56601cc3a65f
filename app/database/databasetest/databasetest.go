// Package databasetest provides a migrated in-memory store for tests.
package databasetest

import (
	"testing"

	"github.com/mytheresa/ecommerce-catalog/app/config"
	"github.com/mytheresa/ecommerce-catalog/app/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New opens an isolated in-memory SQLite store with the catalog schema.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.New(config.Database{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
