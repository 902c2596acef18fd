// Package textutil holds the canonical text normalization shared by the
// catalog, the OCR normalizer and the duplicate detector. Item identity
// across the whole system is defined by Key: two names with equal keys
// are the same item.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the display form of a name: NFKC-folded to collapse
// width/compatibility variants, trimmed, with internal whitespace runs
// collapsed to single spaces. Case is preserved.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// Key returns the comparison key for a name: Normalize plus case
// folding. Keys are used for identity only, never for display.
func Key(s string) string {
	n := Normalize(s)
	if n == "" {
		return ""
	}
	return strings.ToLower(n)
}

// StripDiacritics removes combining marks after NFD decomposition
// (é -> e, è -> e). Stored keys keep their diacritics; this exists for
// fuzzy comparison, where "Hermès" and "Hermes" should collide.
func StripDiacritics(s string) string {
	decomp := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomp))
	for _, r := range decomp {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
