package catalog

import (
	"sort"

	"github.com/Another0Noob/lookbook-index/internal/lexicon"
)

// Stats counts category occurrences across all page references. A pure
// aggregate of the canonical store; not authoritative.
func (c *Catalog) Stats() map[string]int {
	stats := make(map[string]int)
	for _, items := range c.Pages {
		for _, it := range items {
			cat := it.Category
			if cat == "" {
				cat = lexicon.CategoryOther
			}
			stats[cat]++
		}
	}
	return stats
}

// ItemCount pairs an item with the number of pages referencing it.
type ItemCount struct {
	Name  string
	Pages int
}

// Summary describes the catalogue for operator review.
type Summary struct {
	Items      int
	Pages      int
	Top        []ItemCount // most-referenced items, capped at topN
	SinglePage []string    // items on exactly one page, often OCR noise
}

// Summarize reports catalogue totals, the topN most frequent items and
// the items appearing on a single page.
func (c *Catalog) Summarize(topN int) Summary {
	s := Summary{
		Items: len(c.Index),
		Pages: len(c.Pages),
	}

	counts := make([]ItemCount, 0, len(c.Index))
	for name, pages := range c.Index {
		counts = append(counts, ItemCount{Name: name, Pages: len(pages)})
		if len(pages) == 1 {
			s.SinglePage = append(s.SinglePage, name)
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Pages != counts[j].Pages {
			return counts[i].Pages > counts[j].Pages
		}
		return counts[i].Name < counts[j].Name
	})
	sort.Strings(s.SinglePage)

	if topN > len(counts) {
		topN = len(counts)
	}
	if topN > 0 {
		s.Top = counts[:topN]
	}
	return s
}
