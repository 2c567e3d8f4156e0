// Package sanitize strips markup from free-text fields before they are
// persisted. Names entered here end up embedded in certificates and in the
// public verification payload, so they must never carry HTML.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from the input and trims surrounding whitespace.
func Text(value string) string {
	return strings.TrimSpace(policy.Sanitize(value))
}
