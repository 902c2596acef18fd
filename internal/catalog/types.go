// Package catalog owns the two views of the catalogue: the canonical
// page→items mapping and the derived item→pages index. Every public
// operation moves the pair from one consistent state to the next; the
// index is never hand-edited.
package catalog

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/Another0Noob/lookbook-index/internal/textutil"
)

// Item is one reference to a catalogue item as recorded on a page. The
// category is per-reference: OCR and curation may disagree across
// pages, which is a merge concern, not an inconsistency.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Key returns the identity key of the referenced item.
func (it Item) Key() string {
	return textutil.Key(it.Name)
}

// PageItems maps a page id to its ordered item references (OCR reading
// order). Source of truth.
type PageItems map[string][]Item

// ItemPages maps an item display name to the ordinal-sorted, deduped
// list of pages referencing it. Fully derived.
type ItemPages map[string][]string

// Catalog couples the canonical store with its derived index.
type Catalog struct {
	Pages PageItems
	Index ItemPages
}

// New builds a catalog from a canonical store and derives its index.
func New(pages PageItems) *Catalog {
	if pages == nil {
		pages = make(PageItems)
	}
	c := &Catalog{Pages: pages}
	c.Rebuild()
	return c
}

var reDigits = regexp.MustCompile(`\d+`)

// PageOrdinal extracts the ordinal from a page id ("page_12" or "12").
// Ids without a number sort before all numbered ids, among themselves
// lexicographically.
func PageOrdinal(id string) int {
	digits := reDigits.FindAllString(id, -1)
	if len(digits) == 0 {
		return -1
	}
	n, err := strconv.Atoi(digits[len(digits)-1])
	if err != nil {
		return -1
	}
	return n
}

func sortPageIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		oi, oj := PageOrdinal(ids[i]), PageOrdinal(ids[j])
		if oi != oj {
			return oi < oj
		}
		return ids[i] < ids[j]
	})
}

// clone deep-copies the catalog so batch operations can be staged and
// committed all-or-nothing.
func (c *Catalog) clone() *Catalog {
	pages := make(PageItems, len(c.Pages))
	for id, items := range c.Pages {
		cp := make([]Item, len(items))
		copy(cp, items)
		pages[id] = cp
	}
	index := make(ItemPages, len(c.Index))
	for name, ids := range c.Index {
		cp := make([]string, len(ids))
		copy(cp, ids)
		index[name] = cp
	}
	return &Catalog{Pages: pages, Index: index}
}
