// errors/profile_errors.go
package errors

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileConflict    = errors.New("profile conflict")
	ErrInvalidProfileData = errors.New("invalid profile data")
)
