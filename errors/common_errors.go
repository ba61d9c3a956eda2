// errors/common_errors.go
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrSchemaIntegrity signals that a user type references an attribute
	// slug that no longer resolves. The integrity guard should have made
	// this impossible, so it is a data-consistency bug, not user error.
	ErrSchemaIntegrity = errors.New("schema integrity violation")
)

// ValidationError is a recoverable, field-qualified input rejection (400).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err into a ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// ConflictError is a delete or create blocked by live state (409). It names
// the blocking entity class and count so the operator can act on it.
type ConflictError struct {
	Resource  string
	Slug      string
	BlockedBy string
	Count     int
}

func (e *ConflictError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("%s %q is referenced by %d %s(s)", e.Resource, e.Slug, e.Count, e.BlockedBy)
	}
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Slug)
}

// AsConflictError unwraps err into a ConflictError, if it is one.
func AsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
