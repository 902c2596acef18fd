package catalog

import "fmt"

// NotFoundError reports a rename or merge source with zero references.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found in catalogue", e.Name)
}

// ConsistencyError reports divergence between the canonical store and
// the derived index.
type ConsistencyError struct {
	Divergences []Divergence
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("catalogue inconsistent: %d divergence(s) between pages and index", len(e.Divergences))
}

// Divergence describes one mismatch found by Validate.
type Divergence struct {
	Kind   string // "missing-item", "stale-item", "missing-page", "stale-page", "order-mismatch"
	Item   string
	Detail string
}

func (d Divergence) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Item, d.Detail)
}
