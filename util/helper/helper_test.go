package helper_util_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	helper_util "github.com/scoutdesk/backoffice/util/helper"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/profiles?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	t.Run("defaults to the first page of ten", func(t *testing.T) {
		limit, offset, err := helper_util.GetPaginationParams(paginationContext(""))
		assert.NoError(t, err)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 0, offset)
	})

	t.Run("reads explicit values", func(t *testing.T) {
		limit, offset, err := helper_util.GetPaginationParams(paginationContext("limit=25&offset=50"))
		assert.NoError(t, err)
		assert.Equal(t, 25, limit)
		assert.Equal(t, 50, offset)
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		_, _, err := helper_util.GetPaginationParams(paginationContext("limit=-1"))
		assert.Error(t, err)
	})

	t.Run("rejects a non-numeric offset", func(t *testing.T) {
		_, _, err := helper_util.GetPaginationParams(paginationContext("offset=abc"))
		assert.Error(t, err)
	})
}

func TestParseNullableTime(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		parsed, err := helper_util.ParseNullableTime(nil)
		assert.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("parses an RFC3339 string", func(t *testing.T) {
		parsed, err := helper_util.ParseNullableTime("2026-03-15T09:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, 2026, parsed.Year())
	})

	t.Run("passes a time value through", func(t *testing.T) {
		now := time.Now()
		parsed, err := helper_util.ParseNullableTime(now)
		assert.NoError(t, err)
		assert.True(t, now.Equal(*parsed))
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		_, err := helper_util.ParseNullableTime(42)
		assert.Error(t, err)
	})
}
