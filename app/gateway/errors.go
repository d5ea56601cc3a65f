package gateway

import (
	"errors"

	"github.com/mytheresa/ecommerce-catalog/models"
)

// Error codes reported in the "extensions.code" member of GraphQL errors.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternal         = "INTERNAL"
)

// Error is a resolver failure carrying a machine readable code.
// graphql-go copies Extensions into the formatted error.
type Error struct {
	Code    string
	Message string
	Fields  map[string]string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.Fields) > 0 {
		ext["fields"] = e.Fields
	}
	return ext
}

// classify maps service errors to gateway errors. Store failures keep their
// cause out of the message.
func classify(err error) *Error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return &Error{Code: CodeValidation, Message: err.Error(), Fields: vErr.Fields, err: err}
	case errors.Is(err, models.ErrValidation):
		return &Error{Code: CodeValidation, Message: err.Error(), err: err}
	case errors.Is(err, models.ErrNotFound):
		return &Error{Code: CodeNotFound, Message: err.Error(), err: err}
	case errors.Is(err, models.ErrStoreUnavailable):
		return &Error{Code: CodeStoreUnavailable, Message: models.ErrStoreUnavailable.Error(), err: err}
	default:
		return &Error{Code: CodeInternal, Message: "internal error", err: err}
	}
}
