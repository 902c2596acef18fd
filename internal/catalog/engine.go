package catalog

import (
	"fmt"
	"sort"

	"github.com/Another0Noob/lookbook-index/internal/textutil"
)

// transpose computes the item→pages mapping from the canonical store.
// Pages are visited in ordinal order so the display name of a key is
// the first one encountered; page lists are deduped and sorted.
func (c *Catalog) transpose() ItemPages {
	pageIDs := make([]string, 0, len(c.Pages))
	for id := range c.Pages {
		pageIDs = append(pageIDs, id)
	}
	sortPageIDs(pageIDs)

	index := make(ItemPages)
	display := make(map[string]string) // key -> first-seen display name
	for _, id := range pageIDs {
		for _, it := range c.Pages[id] {
			key := it.Key()
			if key == "" {
				continue
			}
			name, ok := display[key]
			if !ok {
				name = textutil.Normalize(it.Name)
				display[key] = name
			}
			pages := index[name]
			if len(pages) == 0 || pages[len(pages)-1] != id {
				index[name] = append(pages, id)
			}
		}
	}
	for name := range index {
		sortPageIDs(index[name])
	}
	return index
}

// Rebuild recomputes the derived index from scratch. Deterministic:
// equal canonical stores yield identical indexes, and rebuilding twice
// is a no-op.
func (c *Catalog) Rebuild() {
	c.Index = c.transpose()
}

// Rename retargets every reference of oldName (compared by key) to
// newName across all pages, then patches the index: oldName's page set
// is merged into newName's (union, dedupe, re-sort) and the old key is
// dropped. If newName collides with an existing key, the two entries
// merge into one; a page holding references to both ends up with a
// single reference. Returns NotFoundError when oldName has no
// references.
func (c *Catalog) Rename(oldName, newName string) error {
	display := textutil.Normalize(newName)
	if display == "" {
		return fmt.Errorf("rename %q: empty target name", oldName)
	}
	oldKey := textutil.Key(oldName)
	newKey := textutil.Key(display)

	found := false
	for _, items := range c.Pages {
		for _, it := range items {
			if it.Key() == oldKey {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return &NotFoundError{Name: oldName}
	}

	for id, items := range c.Pages {
		out := make([]Item, 0, len(items))
		seen := false
		for _, it := range items {
			if it.Key() == oldKey {
				it.Name = display
			}
			if it.Key() == newKey {
				if seen {
					continue // page already references the target
				}
				it.Name = display
				seen = true
			}
			out = append(out, it)
		}
		c.Pages[id] = out
	}

	if c.Index == nil {
		c.Index = make(ItemPages)
	}
	var union []string
	for name, pages := range c.Index {
		k := textutil.Key(name)
		if k == oldKey || k == newKey {
			union = append(union, pages...)
			delete(c.Index, name)
		}
	}
	c.Index[display] = dedupePages(union)
	return nil
}

// Merge retargets every name in the set to target as one atomic batch:
// the whole batch is staged on a copy and committed only when every
// source name resolved, so a missing name leaves the catalog untouched.
func (c *Catalog) Merge(names []string, target string) error {
	staged := c.clone()

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := textutil.Key(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if err := staged.Rename(name, target); err != nil {
			return fmt.Errorf("merge into %q: %w", target, err)
		}
	}

	staged.Rebuild()
	c.Pages, c.Index = staged.Pages, staged.Index
	return nil
}

// Delete removes every reference of name from every page and drops the
// key from the index. Deleting an absent name is a no-op so bulk
// deletes stay simple.
func (c *Catalog) Delete(name string) {
	key := textutil.Key(name)
	for id, items := range c.Pages {
		out := make([]Item, 0, len(items))
		for _, it := range items {
			if it.Key() != key {
				out = append(out, it)
			}
		}
		c.Pages[id] = out
	}
	for n := range c.Index {
		if textutil.Key(n) == key {
			delete(c.Index, n)
		}
	}
}

// Validate recomputes the transpose and reports every divergence from
// the current index. It never repairs anything; a non-nil error means
// the operator should inspect before accepting a rebuild.
func (c *Catalog) Validate() ([]Divergence, error) {
	want := c.transpose()

	wantByKey := make(map[string]string, len(want)) // key -> display
	for name := range want {
		wantByKey[textutil.Key(name)] = name
	}
	haveByKey := make(map[string]string, len(c.Index))
	for name := range c.Index {
		haveByKey[textutil.Key(name)] = name
	}

	keys := make([]string, 0, len(wantByKey)+len(haveByKey))
	for k := range wantByKey {
		keys = append(keys, k)
	}
	for k := range haveByKey {
		if _, ok := wantByKey[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var divs []Divergence
	for _, key := range keys {
		wantName, inWant := wantByKey[key]
		haveName, inHave := haveByKey[key]
		switch {
		case inWant && !inHave:
			divs = append(divs, Divergence{
				Kind:   "missing-item",
				Item:   wantName,
				Detail: fmt.Sprintf("referenced on %d page(s) but absent from index", len(want[wantName])),
			})
		case !inWant && inHave:
			divs = append(divs, Divergence{
				Kind:   "stale-item",
				Item:   haveName,
				Detail: "indexed but referenced by no page",
			})
		default:
			divs = append(divs, comparePageLists(wantName, want[wantName], c.Index[haveName])...)
		}
	}

	if len(divs) > 0 {
		return divs, &ConsistencyError{Divergences: divs}
	}
	return nil, nil
}

func comparePageLists(item string, want, have []string) []Divergence {
	wantSet := make(map[string]struct{}, len(want))
	for _, id := range want {
		wantSet[id] = struct{}{}
	}
	haveSet := make(map[string]struct{}, len(have))
	for _, id := range have {
		haveSet[id] = struct{}{}
	}

	var divs []Divergence
	for _, id := range want {
		if _, ok := haveSet[id]; !ok {
			divs = append(divs, Divergence{
				Kind:   "missing-page",
				Item:   item,
				Detail: fmt.Sprintf("page %s referenced but not indexed", id),
			})
		}
	}
	for _, id := range have {
		if _, ok := wantSet[id]; !ok {
			divs = append(divs, Divergence{
				Kind:   "stale-page",
				Item:   item,
				Detail: fmt.Sprintf("page %s indexed but holds no reference", id),
			})
		}
	}
	if len(divs) == 0 && !equalStrings(want, have) {
		divs = append(divs, Divergence{
			Kind:   "order-mismatch",
			Item:   item,
			Detail: fmt.Sprintf("index order %v, expected %v", have, want),
		})
	}
	return divs
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dedupePages(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sortPageIDs(out)
	return out
}
