// errors/user_type_errors.go
package errors

import "errors"

var (
	ErrUserTypeNotFound    = errors.New("user type not found")
	ErrUserTypeConflict    = errors.New("user type conflict")
	ErrInvalidUserTypeData = errors.New("invalid user type data")
)
