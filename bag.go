package diagsnip

import "sort"

// Bag collects diagnostics from many call sites for later batch rendering,
// the way internal/diag.Bag did in the teacher repo, generalised over the
// diagnostic's source ID type.
type Bag[ID comparable] struct {
	items []*Diagnostic[ID]
}

// NewBag returns an empty Bag.
func NewBag[ID comparable]() *Bag[ID] {
	return &Bag[ID]{}
}

// Add appends a diagnostic.
func (b *Bag[ID]) Add(d *Diagnostic[ID]) {
	b.items = append(b.items, d)
}

// Len returns the number of diagnostics in the bag.
func (b *Bag[ID]) Len() int { return len(b.items) }

// Items returns the bag's diagnostics in insertion order.
func (b *Bag[ID]) Items() []*Diagnostic[ID] { return b.items }

// HasErrors reports whether any diagnostic in the bag has KindError.
func (b *Bag[ID]) HasErrors() bool {
	for _, d := range b.items {
		if d.Kind == KindError {
			return true
		}
	}
	return false
}

// Merge appends another bag's diagnostics into this one.
func (b *Bag[ID]) Merge(other *Bag[ID]) {
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by the caller-supplied less function. The sort is
// stable: diagnostics that compare equal keep their insertion order.
func (b *Bag[ID]) Sort(less func(a, c *Diagnostic[ID]) bool) {
	sort.SliceStable(b.items, func(i, j int) bool {
		return less(b.items[i], b.items[j])
	})
}

// Filter returns a new Bag containing only diagnostics for which keep
// returns true.
func (b *Bag[ID]) Filter(keep func(d *Diagnostic[ID]) bool) *Bag[ID] {
	out := NewBag[ID]()
	for _, d := range b.items {
		if keep(d) {
			out.Add(d)
		}
	}
	return out
}
