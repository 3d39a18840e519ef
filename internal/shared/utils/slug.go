package utils

import (
	goslug "github.com/gosimple/slug"
)

// NormalizeSlug converts free text into the canonical slug form used as the
// unique key for guests, hosts, panelists, scorekeepers and locations:
// lowercase, Unicode folded to ASCII, runs of whitespace and punctuation
// collapsed into single hyphens, leading/trailing hyphens trimmed.
//
// The transformation is idempotent: NormalizeSlug(NormalizeSlug(s)) ==
// NormalizeSlug(s), which is what lets detail handlers compare a raw path
// segment against its canonical form and redirect once at most.
func NormalizeSlug(text string) string {
	return goslug.Make(text)
}

// IsCanonicalSlug reports whether a raw path segment is already canonical and
// can be looked up directly without a redirect.
func IsCanonicalSlug(raw string) bool {
	return raw == goslug.Make(raw)
}
