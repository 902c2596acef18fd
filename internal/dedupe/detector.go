// Package dedupe scans the catalogue's item names for likely duplicate
// pairs. It is advisory only: candidates form a worklist for the
// operator, and resolution happens through catalog.Merge or
// catalog.Rename, never here.
package dedupe

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Another0Noob/lookbook-index/internal/catalog"
	"github.com/Another0Noob/lookbook-index/internal/lexicon"
	"github.com/Another0Noob/lookbook-index/internal/textutil"
)

// Reasons, in rule priority order. The first rule that fires names the
// candidate.
const (
	ReasonCaseVariation = "case variation"
	ReasonPartialName   = "partial name"
	ReasonFuzzyTokens   = "fuzzy token match"
)

// Candidate is one suspected duplicate pair with the page counts of
// both items, so the operator can judge which name dominates.
type Candidate struct {
	Item1  string `json:"item1"`
	Item2  string `json:"item2"`
	Reason string `json:"reason"`
	Pages1 int    `json:"pages1"`
	Pages2 int    `json:"pages2"`
}

// Detector finds duplicate candidates among item names.
type Detector struct {
	lex   *lexicon.Lexicon
	limit int
}

// Option configures a Detector.
type Option func(*Detector)

// WithLimit caps the number of returned candidates.
func WithLimit(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.limit = n
		}
	}
}

// New builds a detector. The lexicon supplies the stopword tokens
// ignored by the partial-name rule.
func New(lex *lexicon.Lexicon, opts ...Option) *Detector {
	d := &Detector{lex: lex, limit: 20}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Find returns ranked duplicate candidates over the derived index:
// every unordered pair at most once, self-pairs excluded, ordered by
// rule priority, then combined page count, then name.
func (d *Detector) Find(index catalog.ItemPages) []Candidate {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Candidate
	for i, a := range names {
		for _, b := range names[i+1:] {
			reason := d.match(a, b)
			if reason == "" {
				continue
			}
			out = append(out, Candidate{
				Item1:  a,
				Item2:  b,
				Reason: reason,
				Pages1: len(index[a]),
				Pages2: len(index[b]),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := reasonRank(out[i].Reason), reasonRank(out[j].Reason)
		if ri != rj {
			return ri < rj
		}
		pi, pj := out[i].Pages1+out[i].Pages2, out[j].Pages1+out[j].Pages2
		if pi != pj {
			return pi > pj
		}
		if out[i].Item1 != out[j].Item1 {
			return out[i].Item1 < out[j].Item1
		}
		return out[i].Item2 < out[j].Item2
	})

	if len(out) > d.limit {
		out = out[:d.limit]
	}
	return out
}

func reasonRank(reason string) int {
	switch reason {
	case ReasonCaseVariation:
		return 0
	case ReasonPartialName:
		return 1
	default:
		return 2
	}
}

// match evaluates the rules in priority order and returns the first
// reason that fires, or "".
func (d *Detector) match(a, b string) string {
	ka := cmpKey(a)
	kb := cmpKey(b)
	if ka == kb {
		return ReasonCaseVariation
	}
	if d.partialName(ka, kb) {
		return ReasonPartialName
	}
	if fuzzyTokens(ka, kb) {
		return ReasonFuzzyTokens
	}
	return ""
}

// cmpKey is the comparison form used by the detector only: the identity
// key with diacritics folded away, so "Hermès" and "Hermes" collide
// here without conflating stored keys.
func cmpKey(s string) string {
	return textutil.Key(textutil.StripDiacritics(s))
}

// partialName reports whether one key is a substring of the other after
// dropping leading stopword tokens from both.
func (d *Detector) partialName(ka, kb string) bool {
	ta := d.trimStopwords(ka)
	tb := d.trimStopwords(kb)
	if ta == "" || tb == "" {
		return false
	}
	return strings.Contains(ta, tb) || strings.Contains(tb, ta)
}

func (d *Detector) trimStopwords(key string) string {
	tokens := strings.Fields(key)
	for len(tokens) > 0 && d.lex.IsStopword(tokens[0]) {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}

// fuzzyTokens reports whether every token of the shorter name matches
// some token of the longer one: exactly, as a substring either way, or
// within a length-scaled edit distance.
func fuzzyTokens(ka, kb string) bool {
	short := strings.Fields(ka)
	long := strings.Fields(kb)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return false
	}

	for _, st := range short {
		if !tokenMatches(st, long) {
			return false
		}
	}
	return true
}

func tokenMatches(tok string, candidates []string) bool {
	thr := distanceThreshold(len(tok))
	for _, cand := range candidates {
		if tok == cand {
			return true
		}
		if strings.Contains(cand, tok) || strings.Contains(tok, cand) {
			return true
		}
		if thr > 0 && fuzzy.LevenshteinDistance(tok, cand) <= thr {
			return true
		}
	}
	return false
}

// distanceThreshold scales the acceptable edit distance with token
// length; short tokens must match exactly.
func distanceThreshold(n int) int {
	switch {
	case n > 5:
		return 2
	case n > 3:
		return 1
	default:
		return 0
	}
}
