package helper_util

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

// GetPaginationParams reads the limit and offset query parameters,
// defaulting to one page of ten from the start of the collection. Negative
// values are rejected rather than clamped so the caller can answer with a
// bad request instead of guessing intent.
func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 0 {
		return 0, 0, fmt.Errorf("invalid limit %q", c.Query("limit"))
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset %q", c.Query("offset"))
	}
	return limit, offset, nil
}
