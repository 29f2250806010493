// Package source implements the source-text model: line/column indexing,
// offset resolution, display width, and the small cache contract diagnostic
// rendering consumes to fetch parsed sources on demand.
package source

import "fmt"

// Span identifies a contiguous region of a source identified by ID. Start
// and End are raw positions in whatever unit the renderer's IndexType
// selects (bytes or characters) -- Span itself does not carry that tag, it
// is a property of the Config a Span is rendered under.
//
// Start must be <= End; constructing a Span with Start > End panics at the
// label layer (the root package's NewLabel panics with a RenderError of
// kind BackwardsSpan), not here.
type Span[ID comparable] struct {
	Source ID
	Start  uint32
	End    uint32
}

// Empty reports whether the span has zero length.
func (s Span[ID]) Empty() bool {
	return s.Start == s.End
}

// Len returns End - Start.
func (s Span[ID]) Len() uint32 {
	return s.End - s.Start
}

// Contains reports whether pos falls within [Start, End).
func (s Span[ID]) Contains(pos uint32) bool {
	return pos >= s.Start && pos < s.End
}

// LastOffset returns the offset of the last included position, or Start for
// an empty span. Mirrors the "last_offset" helper the layout engine needs
// to classify and sort multiline labels.
func (s Span[ID]) LastOffset() uint32 {
	if s.End == 0 {
		return s.Start
	}
	last := s.End - 1
	if last < s.Start {
		return s.Start
	}
	return last
}

func (s Span[ID]) String() string {
	return fmt.Sprintf("%v:%d-%d", s.Source, s.Start, s.End)
}
