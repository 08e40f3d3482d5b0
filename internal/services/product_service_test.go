// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"oldest", "created_at ASC"},
		{"name_asc", "name ASC"},
		{"name_desc", "name DESC"},
		{"price_asc", "price ASC NULLS LAST"},
		{"price_desc", "price DESC NULLS LAST"},
		{"newest", "is_featured DESC, created_at DESC"},
		{"", "is_featured DESC, created_at DESC"},
		{"garbage", "is_featured DESC, created_at DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SortClause(tt.sort), "sort=%q", tt.sort)
	}
}

func TestValidateFilterAttributes(t *testing.T) {
	assert.NoError(t, validateFilterAttributes(nil))
	assert.NoError(t, validateFilterAttributes(map[string]string{}))
	assert.NoError(t, validateFilterAttributes(map[string]string{
		"quality": "gold",
		"gram":    "5",
	}))

	err := validateFilterAttributes(map[string]string{"bogus": "x"})
	if assert.Error(t, err) {
		assert.True(t, IsInvalidInput(err))
		assert.Contains(t, err.Error(), "bogus")
	}
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, IsInvalidInput(invalidInput("bad")))
	assert.False(t, IsInvalidInput(ErrNotFound))
	assert.False(t, IsInvalidInput(nil))
}
