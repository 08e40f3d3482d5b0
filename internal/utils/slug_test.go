// internal/utils/slug_test.go
package utils

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"New PP Bags", "new-pp-bags"},
		{"  Gold Quality  5kg  ", "gold-quality-5kg"},
		{"PP Granules (Rafiya)", "pp-granules-rafiya"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeSlug(tt.name))
	}
}

func TestMakeSlugIsDeterministic(t *testing.T) {
	assert.Equal(t, MakeSlug("Super Gold Bag"), MakeSlug("Super Gold Bag"))
}

func TestUniqueSlugAppendsMillisecondTimestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	got := UniqueSlug("new-pp-bags")
	after := time.Now().UnixMilli()

	assert.True(t, strings.HasPrefix(got, "new-pp-bags-"))

	suffix := strings.TrimPrefix(got, "new-pp-bags-")
	ts, err := strconv.ParseInt(suffix, 10, 64)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)
}

// Back-to-back collisions within the same second must still produce distinct
// slugs once the clock ticks a millisecond.
func TestUniqueSlugDistinctAcrossMilliseconds(t *testing.T) {
	first := UniqueSlug("gold-bag")
	time.Sleep(2 * time.Millisecond)
	second := UniqueSlug("gold-bag")

	assert.NotEqual(t, first, second)
}
