// Package slug derives URL-safe slugs from titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	nonWordRe  = regexp.MustCompile(`[^\w-]+`)
	collapseRe = regexp.MustCompile(`--+`)
)

// From turns a title into a slug: lowercase, spaces to hyphens, non-word
// characters stripped, repeated hyphens collapsed. Applying From to its own
// output returns the same string.
func From(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = spaceRe.ReplaceAllString(s, "-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = collapseRe.ReplaceAllString(s, "-")
	return s
}
