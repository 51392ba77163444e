// Package normalize defines the canonical lookup-key form used by every
// resolution path. All equality and substring comparisons against the catalog
// go through Key, so "what counts as the same name" is decided in one place.
package normalize

import "strings"

// Key canonicalizes a raw query string for catalog comparison: lowercased
// with surrounding whitespace removed. The empty or absent input normalizes
// to "" and never matches a stored record. Interior whitespace is preserved.
func Key(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
