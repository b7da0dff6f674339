// Package util provides small shared helpers, currently URL slug
// normalization with Unicode fold support.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength is the storage cap applied after normalization
const MaxSlugLength = 120

// nonAlnum matches runs of characters that are not lowercase alphanumerics
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a string to a URL-friendly slug: accents are folded to
// ASCII, the result is lowercased, runs of non-alphanumeric characters
// collapse to a single hyphen, leading/trailing hyphens are trimmed and the
// length is capped at MaxSlugLength.
func Slugify(s string) string {
	// Normalize unicode characters (decompose accents)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = nonAlnum.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > MaxSlugLength {
		result = result[:MaxSlugLength]
	}

	return result
}
