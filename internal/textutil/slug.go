// Package textutil provides slug generation, HTML word counting and
// HTML sanitization for article content.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// slugStripRegex matches everything that is not a lowercase letter, digit or separator
	slugStripRegex = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	// slugSeparatorRegex matches runs of whitespace, underscores and hyphens
	slugSeparatorRegex = regexp.MustCompile(`[\s_-]+`)
	// slugPatternRegex is the accepted shape of a stored slug
	slugPatternRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify converts a title to a URL-friendly slug: diacritics are removed,
// the result is lowercased, punctuation is dropped and word separators
// collapse into single hyphens. Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = slugStripRegex.ReplaceAllString(result, "")
	result = slugSeparatorRegex.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug checks if s is a lowercase alphanumeric slug with single hyphens.
func IsValidSlug(s string) bool {
	return slugPatternRegex.MatchString(s)
}
