// Package matcher tests file base names against the inclusion pattern set.
package matcher

import (
	"strings"

	"github.com/codeharvest/harvest/pkg/patterns"
)

// Matcher performs case-insensitive substring matching of base filenames
// against a loaded pattern set. Only the final path component is ever
// examined; directory names, full paths, and file contents are not.
type Matcher struct {
	set *patterns.Set
}

// New creates a Matcher over the given pattern set.
func New(set *patterns.Set) *Matcher {
	return &Matcher{set: set}
}

// MatchBase reports whether the base name contains at least one pattern as
// a contiguous substring, comparing case-insensitively. It short-circuits
// on the first hit.
func (m *Matcher) MatchBase(base string) bool {
	lowered := strings.ToLower(base)
	for _, p := range m.set.Patterns() {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
