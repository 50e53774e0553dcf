// Package slug derives filesystem- and URL-safe identifiers from player
// names. It is a pure string transformation used by the rendering and asset
// layers to link records to pages and images; it carries no statistics logic.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases the input, strips accents (decompose, drop combining
// marks), removes everything but word characters, spaces and hyphens, and
// collapses separator runs into single hyphens.
//
//	Make("SANCHEZ LAYA, PAU")  == "sanchez-laya-pau"
//	Make("Assistències")       == "assistencies"
func Make(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	if stripped, _, err := transform.String(deaccent, text); err == nil {
		text = stripped
	}

	var b strings.Builder
	b.Grow(len(text))
	pendingSep := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}
