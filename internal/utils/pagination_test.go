// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, rawQuery string, defaultLimit int) PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/products?"+rawQuery, nil)
	return GetPaginationParams(c, defaultLimit)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 12},
		{"explicit values", "page=3&limit=24", 3, 24},
		{"non-numeric page falls back", "page=abc&limit=24", 1, 24},
		{"non-numeric limit falls back", "page=2&limit=xyz", 2, 12},
		{"zero page falls back", "page=0", 1, 12},
		{"negative limit falls back", "limit=-5", 1, 12},
		{"limit above cap falls back", "limit=5000", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsFor(t, tt.query, DefaultLimit)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestGetPaginationParamsCustomDefaultLimit(t *testing.T) {
	params := paramsFor(t, "", 20)
	assert.Equal(t, 20, params.Limit)

	params = paramsFor(t, "limit=bad", 20)
	assert.Equal(t, 20, params.Limit)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{24, 12, 2},
		{25, 12, 3},
		{100, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}
