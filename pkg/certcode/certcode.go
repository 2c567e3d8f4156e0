// Package certcode generates the public certificate codes printed on issued
// certificates and used by the verification endpoint. The code is the only
// identifier ever exposed outside the dashboard.
package certcode

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "CERT-"

// New returns a fresh public certificate code of the form CERT-XXXXXXXX,
// where the suffix is the first 8 hex characters of a v4 UUID, uppercased.
// Uniqueness is by construction; collisions are not re-checked against the
// store.
func New() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(raw[:8])
}
