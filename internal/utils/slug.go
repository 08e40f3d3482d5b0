// internal/utils/slug.go
package utils

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// MakeSlug derives the URL-safe base slug from a display name. Deterministic:
// the same name always yields the same base.
func MakeSlug(name string) string {
	return slug.Make(name)
}

// UniqueSlug suffixes a colliding base slug with the current millisecond
// timestamp, matching the write-once collision policy for product slugs.
// Millisecond granularity keeps two same-name products created back to back
// from colliding on the unique index.
func UniqueSlug(base string) string {
	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())
}
