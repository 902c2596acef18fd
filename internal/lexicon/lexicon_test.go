package lexicon

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestClassify_FirstRuleWins(t *testing.T) {
	lex := Default()

	tests := []struct {
		name string
		want string
	}{
		{"Caruso camel blazer", "Outerwear"},
		{"Loro Piana cashmere rollneck", "Knitwear"},
		{"Sunspel white tee", "Tops"},
		{"Drake's ivory corduroy", "Bottoms"},
		{"The Row brown tassel loafer", "Footwear"},
		{"Drake's wool scarf", "Accessories"},
		{"Tom Ford tuxedo", "Suits"},
		{"Moncler down gilet", "Layering"},
		{"completely unknown", CategoryOther},
	}
	for _, tt := range tests {
		if got := lex.Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBrandSpans_LongestBrandWins(t *testing.T) {
	lex := Default()

	spans := lex.BrandSpans([]string{"polo", "ralph", "lauren", "cap"})
	want := []Span{{Start: 0, Len: 3}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("BrandSpans = %v, want %v", spans, want)
	}
}

func TestBrandSpans_MultipleBrands(t *testing.T) {
	lex := Default()

	spans := lex.BrandSpans([]string{"caruso", "camel", "blazer", "drake's", "ivory", "corduroy"})
	want := []Span{{Start: 0, Len: 1}, {Start: 3, Len: 1}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("BrandSpans = %v, want %v", spans, want)
	}
}

func TestBrandSpans_TrimsPunctuation(t *testing.T) {
	lex := Default()

	spans := lex.BrandSpans([]string{"prada,", "loafer"})
	want := []Span{{Start: 0, Len: 1}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("BrandSpans = %v, want %v", spans, want)
	}
}

func TestStartsWithBrand(t *testing.T) {
	lex := Default()

	if !lex.StartsWithBrand("The Row overcoat") {
		t.Error("StartsWithBrand(The Row overcoat) = false")
	}
	if lex.StartsWithBrand("brown The Row overcoat") {
		t.Error("StartsWithBrand(brown The Row overcoat) = true")
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `
brands:
  - Acme
  - Acme Deluxe
min_item_len: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !lex.HasBrand("acme deluxe jacket") {
		t.Error("overridden brand not recognized")
	}
	if lex.HasBrand("Prada loafer") {
		t.Error("default brands should be replaced, not merged")
	}
	if lex.MinItemLen != 5 {
		t.Errorf("MinItemLen = %d, want 5", lex.MinItemLen)
	}
	// Unset sections keep their defaults.
	if got := lex.Classify("navy blazer"); got != "Outerwear" {
		t.Errorf("Classify with default categories = %q", got)
	}
	if lex.MaxItemLen != 50 {
		t.Errorf("MaxItemLen = %d, want default 50", lex.MaxItemLen)
	}
}

func TestLoad_BadArtifactPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	if err := os.WriteFile(path, []byte("artifact_patterns:\n  - '['\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an invalid artifact pattern")
	}
}

func TestIsStopword(t *testing.T) {
	lex := Default()
	if !lex.IsStopword("The") {
		t.Error("IsStopword(The) = false")
	}
	if lex.IsStopword("loafer") {
		t.Error("IsStopword(loafer) = true")
	}
}
