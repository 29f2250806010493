package diagsnip

import (
	"testing"

	"github.com/surge-lang/diagsnip/source"
)

func newTestDiagnostic(kind Kind) *Diagnostic[int] {
	return NewBuilder[int](kind, source.Span[int]{Source: 1, Start: 0, End: 1}).Build()
}

func TestBagAddAndLen(t *testing.T) {
	b := NewBag[int]()
	b.Add(newTestDiagnostic(KindError))
	b.Add(newTestDiagnostic(KindWarning))
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag[int]()
	b.Add(newTestDiagnostic(KindWarning))
	if b.HasErrors() {
		t.Errorf("HasErrors() = true with no error diagnostics")
	}
	b.Add(newTestDiagnostic(KindError))
	if !b.HasErrors() {
		t.Errorf("HasErrors() = false, want true after adding an error")
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag[int]()
	a.Add(newTestDiagnostic(KindError))
	b := NewBag[int]()
	b.Add(newTestDiagnostic(KindWarning))
	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("Len() after Merge = %d, want 2", a.Len())
	}
}

func TestBagFilter(t *testing.T) {
	b := NewBag[int]()
	b.Add(newTestDiagnostic(KindError))
	b.Add(newTestDiagnostic(KindWarning))
	b.Add(newTestDiagnostic(KindError))
	errsOnly := b.Filter(func(d *Diagnostic[int]) bool { return d.Kind == KindError })
	if errsOnly.Len() != 2 {
		t.Errorf("Filter(errors).Len() = %d, want 2", errsOnly.Len())
	}
	if b.Len() != 3 {
		t.Errorf("Filter should not mutate original bag: Len() = %d, want 3", b.Len())
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag[int]()
	b.Add(newTestDiagnostic(KindWarning))
	b.Add(newTestDiagnostic(KindError))
	b.Sort(func(a, c *Diagnostic[int]) bool { return a.Kind.Letter() < c.Kind.Letter() })
	if b.Items()[0].Kind != KindError {
		t.Errorf("Sort did not order Error ('E') before Warning ('W')")
	}
}
