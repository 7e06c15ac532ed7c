// Package slugify derives URL-safe identifiers from human-readable text.
// The same rules are used for robot catalog slugs and for markdown
// heading anchors, so links built from one always resolve against the other.
package slugify

import (
	"regexp"
	"strings"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reInvalid    = regexp.MustCompile(`[^\w-]+`)
	reHyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases s, replaces whitespace runs with a single hyphen,
// strips everything outside word characters and hyphens, collapses
// repeated hyphens and trims leading/trailing ones.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = reWhitespace.ReplaceAllString(s, "-")
	s = reInvalid.ReplaceAllString(s, "")
	s = reHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
