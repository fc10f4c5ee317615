package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the matching key for an ingredient or pantry item name:
// accents stripped, lower-cased, surrounding whitespace trimmed. Inner
// whitespace and plurals are left alone so distinct names never merge.
func Normalize(raw string) string {
	// transform.Chain keeps state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, raw)
	if err != nil {
		stripped = raw
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}
