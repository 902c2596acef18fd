package dedupe

import (
	"testing"

	"github.com/Another0Noob/lookbook-index/internal/catalog"
	"github.com/Another0Noob/lookbook-index/internal/lexicon"
)

func newTestDetector(t *testing.T, opts ...Option) *Detector {
	t.Helper()
	return New(lexicon.Default(), opts...)
}

func TestFind_CaseVariation(t *testing.T) {
	d := newTestDetector(t)

	index := catalog.ItemPages{
		"The Row loafer":  {"page_1", "page_2"},
		"the row loafer ": {"page_3"},
	}

	got := d.Find(index)
	if len(got) != 1 {
		t.Fatalf("Find returned %d candidates, want 1: %v", len(got), got)
	}
	c := got[0]
	if c.Reason != ReasonCaseVariation {
		t.Errorf("reason = %q, want %q", c.Reason, ReasonCaseVariation)
	}
	if c.Pages1+c.Pages2 != 3 {
		t.Errorf("page counts = %d + %d, want 3 total", c.Pages1, c.Pages2)
	}
}

func TestFind_DiacriticVariation(t *testing.T) {
	d := newTestDetector(t)

	index := catalog.ItemPages{
		"Hermès belt": {"page_1"},
		"Hermes belt": {"page_2"},
	}

	got := d.Find(index)
	if len(got) != 1 || got[0].Reason != ReasonCaseVariation {
		t.Fatalf("Find = %v, want one case-variation pair", got)
	}
}

func TestFind_PartialName(t *testing.T) {
	d := newTestDetector(t)

	index := catalog.ItemPages{
		"Saint Laurent loafer":     {"page_1"},
		"The Saint Laurent loafer": {"page_2"},
	}

	got := d.Find(index)
	if len(got) != 1 || got[0].Reason != ReasonPartialName {
		t.Fatalf("Find = %v, want one partial-name pair", got)
	}
}

func TestFind_FuzzyTokenMatch(t *testing.T) {
	d := newTestDetector(t)

	index := catalog.ItemPages{
		"Boglioli grey blazer": {"page_1"},
		"Boglioli gray blazer": {"page_2"},
	}

	got := d.Find(index)
	if len(got) != 1 || got[0].Reason != ReasonFuzzyTokens {
		t.Fatalf("Find = %v, want one fuzzy-token pair", got)
	}
}

func TestFind_ShortTokensRequireExactMatch(t *testing.T) {
	d := newTestDetector(t)

	// "tee" vs "tie" is edit distance 1 but tokens of length 3 must
	// match exactly.
	index := catalog.ItemPages{
		"Sunspel tee": {"page_1"},
		"Sunspel tie": {"page_2"},
	}

	if got := d.Find(index); len(got) != 0 {
		t.Errorf("Find = %v, want none", got)
	}
}

func TestFind_NoSelfOrRepeatedPairs(t *testing.T) {
	d := newTestDetector(t)

	index := catalog.ItemPages{
		"Prada coat": {"page_1"},
		"prada coat": {"page_2"},
		"PRADA COAT": {"page_3"},
	}

	got := d.Find(index)
	if len(got) != 3 { // three names, three unordered pairs
		t.Fatalf("Find returned %d candidates, want 3: %v", len(got), got)
	}
	seen := make(map[string]struct{})
	for _, c := range got {
		if c.Item1 == c.Item2 {
			t.Errorf("self-pair %q", c.Item1)
		}
		key := c.Item1 + "|" + c.Item2
		if _, dup := seen[key]; dup {
			t.Errorf("pair %s repeated", key)
		}
		seen[key] = struct{}{}
	}
}

func TestFind_RankingAndLimit(t *testing.T) {
	d := newTestDetector(t, WithLimit(2))

	index := catalog.ItemPages{
		"Zegna overcoat":       {"page_1"},
		"zegna overcoat":       {"page_2"}, // case variation
		"Marni leathr bag":     {"page_3"},
		"Marni leather bag":    {"page_4"}, // fuzzy token
		"Canali suit":          {"page_5"},
		"The Canali suit":      {"page_6"}, // partial name
		"Unrelated polo shirt": {"page_7"},
	}

	got := d.Find(index)
	if len(got) != 2 {
		t.Fatalf("Find returned %d candidates, want limit 2: %v", len(got), got)
	}
	if got[0].Reason != ReasonCaseVariation {
		t.Errorf("first candidate reason = %q, want case variation first", got[0].Reason)
	}
	if got[1].Reason != ReasonPartialName {
		t.Errorf("second candidate reason = %q, want partial name", got[1].Reason)
	}
}

func TestDistanceThreshold(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{3, 0},
		{4, 1},
		{5, 1},
		{6, 2},
		{12, 2},
	}
	for _, tt := range tests {
		if got := distanceThreshold(tt.length); got != tt.want {
			t.Errorf("distanceThreshold(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}
