package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mytheresa/ecommerce-catalog/models"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrorTranslator is a gorm plugin that rewrites driver constraint errors
// into gorm.ErrForeignKeyViolated and gorm.ErrDuplicatedKey, so that the
// repositories in models never see driver types.
type ErrorTranslator struct{}

func (ErrorTranslator) Name() string {
	return "catalog:error_translator"
}

func (ErrorTranslator) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		name  string
		after string
		reg   func(string, func(*gorm.DB)) error
	}{
		{"catalog:translate_create", "gorm:create", cb.Create().After("gorm:create").Register},
		{"catalog:translate_update", "gorm:update", cb.Update().After("gorm:update").Register},
		{"catalog:translate_delete", "gorm:delete", cb.Delete().After("gorm:delete").Register},
		{"catalog:translate_query", "gorm:query", cb.Query().After("gorm:query").Register},
		{"catalog:translate_row", "gorm:row", cb.Row().After("gorm:row").Register},
		{"catalog:translate_raw", "gorm:raw", cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range hooks {
		if err := h.reg(h.name, translateCallback); err != nil {
			return fmt.Errorf("register %s after %s: %w", h.name, h.after, err)
		}
	}
	return nil
}

func translateCallback(db *gorm.DB) {
	if db.Error != nil {
		db.Error = TranslateError(db.Error)
	}
}

// TranslateError maps postgres and sqlite constraint failures to gorm's
// driver independent errors. Postgres values that do not fit their column
// become models.ErrValidation. Other errors are returned unchanged.
func TranslateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s", gorm.ErrForeignKeyViolated, pqErr.Message)
		case "unique_violation":
			return fmt.Errorf("%w: %s", gorm.ErrDuplicatedKey, pqErr.Message)
		case "numeric_value_out_of_range", "string_data_right_truncation":
			return fmt.Errorf("%w: %s", models.ErrValidation, pqErr.Message)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case int(sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY):
			return fmt.Errorf("%w: %s", gorm.ErrForeignKeyViolated, liteErr.Error())
		case int(sqlite3.SQLITE_CONSTRAINT_UNIQUE), int(sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY):
			return fmt.Errorf("%w: %s", gorm.ErrDuplicatedKey, liteErr.Error())
		case int(sqlite3.SQLITE_CONSTRAINT):
			// Extended result codes disabled: fall back to the message.
			if strings.Contains(liteErr.Error(), "FOREIGN KEY") {
				return fmt.Errorf("%w: %s", gorm.ErrForeignKeyViolated, liteErr.Error())
			}
		}
	}
	return err
}
