// Package database opens the gorm connection backing the record store.
//
// Postgres is reached through lib/pq, SQLite through the pure Go
// modernc.org/sqlite driver. Both share the same models and migrations.
package database

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/mytheresa/ecommerce-catalog/app/config"
	"github.com/mytheresa/ecommerce-catalog/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const (
	postgresDriverName = "postgres"
	sqliteDriverName   = "sqlite"
)

// New connects to the configured store and installs the error translator.
func New(cfg config.Database, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DriverName: postgresDriverName,
			DSN:        cfg.DSN(),
		})
	case config.DriverSQLite:
		dialector = &gormsqlite.Dialector{
			DriverName: sqliteDriverName,
			DSN:        SQLiteDSN(cfg.DSN()),
		}
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(log, cfg.LogSQL),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if err := db.Use(ErrorTranslator{}); err != nil {
		return nil, fmt.Errorf("install error translator: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// A single connection keeps ":memory:" databases alive and
		// serialises writers, which SQLite requires anyway.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// sqlitePragmas are applied to every SQLite connection. A DSN that already
// sets one of them keeps its own value.
var sqlitePragmas = []struct {
	name  string
	param string
}{
	{"foreign_keys", "_pragma=foreign_keys(1)"},
	{"busy_timeout", "_pragma=busy_timeout(5000)"},
}

// SQLiteDSN turns a file path or file: URI into a modernc URI with foreign
// keys enforced and a busy timeout set.
func SQLiteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	_, query, _ := strings.Cut(dsn, "?")

	for _, p := range sqlitePragmas {
		if strings.Contains(query, "_pragma="+p.name+"(") {
			continue
		}
		sep := "&"
		if !strings.Contains(dsn, "?") {
			sep = "?"
		} else if strings.HasSuffix(dsn, "?") || strings.HasSuffix(dsn, "&") {
			sep = ""
		}
		dsn += sep + p.param
	}
	return dsn
}

// Migrate creates or extends the categories, books and groceries tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Book{},
		&models.Grocery{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Ping reports whether the store answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
