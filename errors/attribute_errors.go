// errors/attribute_errors.go
package errors

import "errors"

var (
	ErrAttributeNotFound    = errors.New("attribute not found")
	ErrAttributeConflict    = errors.New("attribute conflict")
	ErrInvalidAttributeData = errors.New("invalid attribute data")
)
