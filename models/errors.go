package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds surfaced by the store and the services built on it.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = fmt.Errorf("book %w", ErrNotFound)

// ErrGroceryNotFound is returned when a grocery is not found.
var ErrGroceryNotFound = fmt.Errorf("grocery %w", ErrNotFound)

// ValidationError lists the offending fields of a rejected write.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " " + e.Fields[name]
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// storeError wraps a driver failure so callers can match ErrStoreUnavailable.
// Values rejected by the store as invalid stay validation errors.
func storeError(err error) error {
	if errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
