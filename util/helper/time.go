package helper_util

import (
	"fmt"
	"time"
)

// ParseTime parses the RFC3339 timestamps the graph store persists.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseNullableTime converts an optional store value into a *time.Time.
// Nil stays nil, so an absent property round-trips without a zero value
// masquerading as a real timestamp.
func ParseNullableTime(value interface{}) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	default:
		return nil, fmt.Errorf("cannot interpret %T as a timestamp", value)
	}
}
