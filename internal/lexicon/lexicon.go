// Package lexicon holds the static lookup tables the normalizer and
// detector consult: recognized brand names, priority-ordered category
// keyword rules, OCR artifact prefix patterns and stopwords. The tables
// ship with compiled-in defaults and can be overridden per collection
// from a YAML file.
package lexicon

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// CategoryOther is the fallback category for names no rule matches.
const CategoryOther = "Other"

// CategoryRule maps a category name to the keywords that select it.
// Rules are evaluated in order; the first keyword hit wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Span marks a brand occurrence inside a token slice.
type Span struct {
	Start int // index of the first brand token
	Len   int // number of tokens the brand covers
}

// Lexicon bundles the lookup tables. Zero values in a loaded file fall
// back to the defaults, so a YAML lexicon may override any subset.
type Lexicon struct {
	Brands           []string       `yaml:"brands"`
	Categories       []CategoryRule `yaml:"categories"`
	ArtifactPatterns []string       `yaml:"artifact_patterns"`
	Stopwords        []string       `yaml:"stopwords"`
	MinItemLen       int            `yaml:"min_item_len"`
	MaxItemLen       int            `yaml:"max_item_len"`

	brandTokens [][]string // lowercased, longest first
	artifacts   []*regexp.Regexp
	stopwords   map[string]struct{}
}

// Load reads a YAML lexicon file and overlays it on the defaults.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	var file Lexicon
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	l := Default()
	if len(file.Brands) > 0 {
		l.Brands = file.Brands
	}
	if len(file.Categories) > 0 {
		l.Categories = file.Categories
	}
	if len(file.ArtifactPatterns) > 0 {
		l.ArtifactPatterns = file.ArtifactPatterns
	}
	if len(file.Stopwords) > 0 {
		l.Stopwords = file.Stopwords
	}
	if file.MinItemLen > 0 {
		l.MinItemLen = file.MinItemLen
	}
	if file.MaxItemLen > 0 {
		l.MaxItemLen = file.MaxItemLen
	}

	if err := l.compile(); err != nil {
		return nil, fmt.Errorf("compile lexicon %s: %w", path, err)
	}
	return l, nil
}

// compile builds the derived lookup state. Must be called after any
// mutation of the exported fields.
func (l *Lexicon) compile() error {
	l.brandTokens = make([][]string, 0, len(l.Brands))
	for _, b := range l.Brands {
		toks := strings.Fields(strings.ToLower(b))
		if len(toks) == 0 {
			continue
		}
		l.brandTokens = append(l.brandTokens, toks)
	}
	// Longest brands first so "Polo Ralph Lauren" wins over "Ralph Lauren".
	for i := 1; i < len(l.brandTokens); i++ {
		for j := i; j > 0 && len(l.brandTokens[j]) > len(l.brandTokens[j-1]); j-- {
			l.brandTokens[j], l.brandTokens[j-1] = l.brandTokens[j-1], l.brandTokens[j]
		}
	}

	l.artifacts = make([]*regexp.Regexp, 0, len(l.ArtifactPatterns))
	for _, p := range l.ArtifactPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("artifact pattern %q: %w", p, err)
		}
		l.artifacts = append(l.artifacts, re)
	}

	l.stopwords = make(map[string]struct{}, len(l.Stopwords))
	for _, w := range l.Stopwords {
		l.stopwords[strings.ToLower(w)] = struct{}{}
	}
	return nil
}

// Classify returns the category for an item name: the first rule whose
// keyword appears in the lowercased name, or CategoryOther. Total by
// construction.
func (l *Lexicon) Classify(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range l.Categories {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Name
			}
		}
	}
	return CategoryOther
}

// HasBrand reports whether the text contains any recognized brand.
func (l *Lexicon) HasBrand(text string) bool {
	return len(l.BrandSpans(strings.Fields(strings.ToLower(text)))) > 0
}

// StartsWithBrand reports whether the first tokens of the text form a
// recognized brand.
func (l *Lexicon) StartsWithBrand(text string) bool {
	toks := strings.Fields(strings.ToLower(text))
	return l.brandAt(toks, 0) > 0
}

// BrandSpans finds all non-overlapping brand occurrences in a token
// slice (tokens must already be lowercased). Longer brands take
// precedence at the same position.
func (l *Lexicon) BrandSpans(tokens []string) []Span {
	var spans []Span
	for i := 0; i < len(tokens); {
		if n := l.brandAt(tokens, i); n > 0 {
			spans = append(spans, Span{Start: i, Len: n})
			i += n
			continue
		}
		i++
	}
	return spans
}

// brandAt returns the token length of the brand starting at position i,
// or 0 if no brand starts there.
func (l *Lexicon) brandAt(tokens []string, i int) int {
	for _, brand := range l.brandTokens {
		if i+len(brand) > len(tokens) {
			continue
		}
		match := true
		for j, bt := range brand {
			if trimToken(tokens[i+j]) != bt && tokens[i+j] != bt {
				match = false
				break
			}
		}
		if match {
			return len(brand)
		}
	}
	return 0
}

// trimToken drops surrounding punctuation so "drake's," still matches
// the brand token "drake's".
func trimToken(tok string) string {
	return strings.Trim(tok, ".,;:()[]")
}

// ArtifactRegexps returns the compiled prefix denylist.
func (l *Lexicon) ArtifactRegexps() []*regexp.Regexp {
	return l.artifacts
}

// IsStopword reports whether a token is a leading stopword for the
// partial-name duplicate rule.
func (l *Lexicon) IsStopword(tok string) bool {
	_, ok := l.stopwords[strings.ToLower(tok)]
	return ok
}
