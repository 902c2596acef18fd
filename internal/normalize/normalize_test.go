package normalize

import (
	"reflect"
	"testing"

	"github.com/Another0Noob/lookbook-index/internal/catalog"
	"github.com/Another0Noob/lookbook-index/internal/lexicon"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return New(lexicon.Default())
}

func names(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestCleanLine_StripsArtifactPrefix(t *testing.T) {
	n := newTestNormalizer(t)

	got := n.CleanLine("i The Row brown tassel loafer")
	want := "The Row brown tassel loafer"
	if got != want {
		t.Errorf("CleanLine = %q, want %q", got, want)
	}
	// Fixed point: cleaning again changes nothing.
	if again := n.CleanLine(got); again != got {
		t.Errorf("CleanLine not idempotent: %q -> %q", got, again)
	}
}

func TestCleanLine_RepeatedPrefixes(t *testing.T) {
	n := newTestNormalizer(t)

	// Punctuation, then a stray letter, then a page number.
	got := n.CleanLine(`". 3 Saint Laurent loafer`)
	if got != "Saint Laurent loafer" {
		t.Errorf("CleanLine = %q", got)
	}
}

func TestCleanLine_KeepsAccentedLeadingLetters(t *testing.T) {
	n := newTestNormalizer(t)

	// Accented letters are letters, not punctuation to strip.
	got := n.CleanLine("Église du vent scarf")
	if got != "Église du vent scarf" {
		t.Errorf("CleanLine = %q, want input unchanged", got)
	}
}

func TestParse_SplitsCombinedEntries(t *testing.T) {
	n := newTestNormalizer(t)

	items := n.Parse("Caruso camel blazer Drake's ivory corduroy")
	want := []catalog.Item{
		{Name: "Caruso camel blazer", Category: "Outerwear"},
		{Name: "Drake's ivory corduroy", Category: "Bottoms"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Parse = %v, want %v", items, want)
	}
}

func TestParse_JoinsFragmentedLines(t *testing.T) {
	n := newTestNormalizer(t)

	items := n.Parse("Boglioli navy\nblazer")
	if got := names(items); !reflect.DeepEqual(got, []string{"Boglioli navy blazer"}) {
		t.Errorf("Parse = %v", got)
	}
	if items[0].Category != "Outerwear" {
		t.Errorf("category = %q", items[0].Category)
	}
}

func TestParse_ContinuationJoinedToOpenRecord(t *testing.T) {
	n := newTestNormalizer(t)

	// "brushed cotton" is neither a brand nor a garment keyword, so it
	// continues the open record.
	items := n.Parse("Sunspel white tee\nbrushed cotton")
	if got := names(items); !reflect.DeepEqual(got, []string{"Sunspel white tee brushed cotton"}) {
		t.Errorf("Parse = %v", got)
	}
}

func TestParse_AccentedCapitalStartsNewRecord(t *testing.T) {
	n := newTestNormalizer(t)

	// An accented capital opens a new record like any other capital; it
	// must not be joined as a lowercase continuation.
	items := n.Parse("Sunspel white tee\nÉminence grey henley")
	want := []string{"Sunspel white tee", "Éminence grey henley"}
	if got := names(items); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_BrandStartsNewRecord(t *testing.T) {
	n := newTestNormalizer(t)

	items := n.Parse("Saint Laurent loafer\nThe Row overcoat")
	want := []string{"Saint Laurent loafer", "The Row overcoat"}
	if got := names(items); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_SkipsNoiseLines(t *testing.T) {
	n := newTestNormalizer(t)

	items := n.Parse("42\nab\n\nSaint Laurent loafer")
	if got := names(items); !reflect.DeepEqual(got, []string{"Saint Laurent loafer"}) {
		t.Errorf("Parse = %v", got)
	}
}

func TestParse_UnparseableLineEmittedVerbatim(t *testing.T) {
	n := newTestNormalizer(t)

	items := n.Parse("qwxz vlurb")
	if len(items) != 1 {
		t.Fatalf("Parse = %v, want one verbatim record", items)
	}
	if items[0].Name != "qwxz vlurb" || items[0].Category != lexicon.CategoryOther {
		t.Errorf("record = %+v", items[0])
	}
}

func TestParse_DedupesWithinPage(t *testing.T) {
	n := newTestNormalizer(t)

	items := n.Parse("Saint Laurent loafer\nsaint laurent loafer")
	if len(items) != 1 {
		t.Errorf("Parse = %v, want a single reference per page", items)
	}
}

func TestParse_ClassifiesEveryRecord(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		line string
		want string
	}{
		{"Loro Piana cashmere rollneck", "Knitwear"},
		{"The Row brown tassel loafer", "Footwear"},
		{"Drake's wool scarf", "Accessories"},
		{"Lardini flannel trouser", "Tops"}, // flannel outranks trouser in rule order
	}
	for _, tt := range tests {
		items := n.Parse(tt.line)
		if len(items) != 1 {
			t.Fatalf("Parse(%q) = %v", tt.line, items)
		}
		if items[0].Category != tt.want {
			t.Errorf("Parse(%q) category = %q, want %q", tt.line, items[0].Category, tt.want)
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	n := newTestNormalizer(t)
	if items := n.Parse(""); len(items) != 0 {
		t.Errorf("Parse(\"\") = %v", items)
	}
}
