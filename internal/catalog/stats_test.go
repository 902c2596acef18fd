package catalog

import (
	"reflect"
	"testing"
)

func TestStats_CountsReferences(t *testing.T) {
	c := New(PageItems{
		"page_1": {
			{Name: "Saint Laurent loafer", Category: "Footwear"},
			{Name: "Boglioli navy blazer", Category: "Outerwear"},
		},
		"page_2": {
			{Name: "Saint Laurent loafer", Category: "Footwear"},
			{Name: "Mystery thing"}, // empty category counts as Other
		},
	})

	want := map[string]int{"Footwear": 2, "Outerwear": 1, "Other": 1}
	if got := c.Stats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Stats() = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	c := New(PageItems{
		"page_1": {{Name: "Saint Laurent loafer"}, {Name: "Drake's scarf"}},
		"page_2": {{Name: "Saint Laurent loafer"}},
		"page_3": {{Name: "Saint Laurent loafer"}, {Name: "Boglioli navy blazer"}},
	})

	s := c.Summarize(2)
	if s.Items != 3 || s.Pages != 3 {
		t.Errorf("totals = %d items / %d pages, want 3/3", s.Items, s.Pages)
	}
	if len(s.Top) != 2 || s.Top[0].Name != "Saint Laurent loafer" || s.Top[0].Pages != 3 {
		t.Errorf("Top = %v", s.Top)
	}
	wantSingle := []string{"Boglioli navy blazer", "Drake's scarf"}
	if !reflect.DeepEqual(s.SinglePage, wantSingle) {
		t.Errorf("SinglePage = %v, want %v", s.SinglePage, wantSingle)
	}
}
