// errors/content_errors.go
package errors

import "errors"

var (
	ErrJobNotFound    = errors.New("job posting not found")
	ErrInvalidJobData = errors.New("invalid job posting data")

	ErrAnnouncementNotFound    = errors.New("announcement not found")
	ErrInvalidAnnouncementData = errors.New("invalid announcement data")
)
