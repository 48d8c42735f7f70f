// Package slugs derives URL-safe identifiers from titles.
package slugs

import (
	"fmt"
	"time"

	"github.com/goliatone/go-slug"
)

// Make lowercases and ASCII-folds a title into a URL-safe token.
func Make(title string) (string, error) {
	return slug.Normalize(title)
}

// WithTimestamp disambiguates a colliding slug by appending the current
// millisecond timestamp. Best effort only: the existence check and the
// insert are not atomic, so two concurrent creates with the same title
// can still collide on the unique index.
func WithTimestamp(s string) string {
	return fmt.Sprintf("%s-%d", s, time.Now().UnixMilli())
}
