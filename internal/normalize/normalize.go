// Package normalize turns raw OCR output for one page into ordered,
// cleaned item records. It never fails: lines it cannot confidently
// segment are emitted verbatim rather than dropped, so imperfect OCR
// degrades the catalogue instead of losing data.
package normalize

import (
	"strings"
	"unicode"

	"github.com/Another0Noob/lookbook-index/internal/catalog"
	"github.com/Another0Noob/lookbook-index/internal/lexicon"
	"github.com/Another0Noob/lookbook-index/internal/textutil"
)

// Normalizer cleans and segments OCR text blocks using a lexicon.
type Normalizer struct {
	lex      *lexicon.Lexicon
	replacer *strings.Replacer
}

// New builds a normalizer over the given lexicon.
func New(lex *lexicon.Lexicon) *Normalizer {
	return &Normalizer{
		lex: lex,
		// Character-level OCR misreads removed everywhere, not just at
		// line starts. Curly apostrophes fold to straight ones so
		// "Drake’s" matches the brand table.
		replacer: strings.NewReplacer(
			"_", "",
			"|", "",
			"“", "",
			"”", "",
			"\"", "",
			"’", "'",
		),
	}
}

// Parse converts one raw multi-line OCR block into ordered item
// records. Fragmented lines are rejoined, combined entries split per
// brand token, and every record classified.
func (n *Normalizer) Parse(raw string) []catalog.Item {
	var records []catalog.Item
	current := ""

	flush := func() {
		if current == "" {
			return
		}
		records = append(records, n.emit(current)...)
		current = ""
	}

	for _, line := range strings.Split(raw, "\n") {
		cleaned := n.CleanLine(line)
		if cleaned == "" || isDigits(cleaned) || len(cleaned) < n.lex.MinItemLen {
			continue
		}

		switch {
		case n.lex.HasBrand(cleaned):
			// A brand opens a new garment.
			flush()
			current = cleaned
		case n.hasKeyword(cleaned):
			if current != "" && !n.hasKeyword(current) {
				// Brand fragment waiting for its garment type.
				current += " " + cleaned
			} else if current != "" && !startsUpper(cleaned) && len(current)+len(cleaned) < n.lex.MaxItemLen {
				// Lowercase fragment: continuation of the previous record.
				current += " " + cleaned
			} else {
				flush()
				current = cleaned
			}
		default:
			// Color, material or noise. Join when a record is open and
			// short enough, otherwise keep the line verbatim.
			if current != "" && len(current)+len(cleaned) < n.lex.MaxItemLen {
				current += " " + cleaned
			} else {
				flush()
				current = cleaned
			}
		}
	}
	flush()

	return dedupe(records)
}

// CleanLine strips character artifacts, collapses whitespace, and
// removes denylisted prefixes until none remains. Idempotent: cleaning
// a cleaned line returns it unchanged.
func (n *Normalizer) CleanLine(line string) string {
	s := n.replacer.Replace(line)
	s = textutil.Normalize(s)
	for {
		before := s
		for _, re := range n.lex.ArtifactRegexps() {
			s = strings.TrimSpace(re.ReplaceAllString(s, ""))
		}
		if s == before {
			return s
		}
	}
}

// emit splits a completed record on brand boundaries and classifies
// each resulting name.
func (n *Normalizer) emit(text string) []catalog.Item {
	items := make([]catalog.Item, 0, 1)
	for _, part := range n.splitCombined(text) {
		name := textutil.Normalize(part)
		if name == "" {
			continue
		}
		items = append(items, catalog.Item{
			Name:     name,
			Category: n.lex.Classify(name),
		})
	}
	return items
}

// splitCombined splits a line holding two or more brand tokens into one
// part per brand, each running up to the next brand. Text before the
// first brand stays attached to the first part so nothing is dropped.
func (n *Normalizer) splitCombined(text string) []string {
	tokens := strings.Fields(text)
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

	spans := n.lex.BrandSpans(lowered)
	if len(spans) < 2 {
		return []string{text}
	}

	parts := make([]string, 0, len(spans))
	start := 0
	for _, sp := range spans[1:] {
		parts = append(parts, strings.Join(tokens[start:sp.Start], " "))
		start = sp.Start
	}
	parts = append(parts, strings.Join(tokens[start:], " "))
	return parts
}

func (n *Normalizer) hasKeyword(text string) bool {
	return n.lex.Classify(text) != lexicon.CategoryOther
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// dedupe removes repeated references within one page while preserving
// reading order.
func dedupe(items []catalog.Item) []catalog.Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		key := it.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
