package diagsnip

import (
	"github.com/surge-lang/diagsnip/draw"
	"github.com/surge-lang/diagsnip/internal/layout"
	"github.com/surge-lang/diagsnip/source"
)

// Label is an owned record pointing a message at a span of source text.
// Construct with NewLabel, then chain the With* methods; each returns a
// modified copy and leaves the receiver unchanged.
type Label[ID comparable] struct {
	Span     source.Span[ID]
	Message  string
	hasMsg   bool
	Color    draw.Color
	Order    int
	Priority int
}

// NewLabel builds a Label over span with no message, no colour, order 0,
// and priority 0. It panics with a *RenderError (BackwardsSpan) if
// span.Start > span.End -- spec.md §7 requires this fail fast at
// construction, before rendering.
func NewLabel[ID comparable](span source.Span[ID]) Label[ID] {
	if span.Start > span.End {
		panic(newBackwardsSpanError(span.Start, span.End))
	}
	return Label[ID]{Span: span, Color: draw.None}
}

// WithMessage attaches a message, which may be multi-line.
func (l Label[ID]) WithMessage(msg string) Label[ID] {
	l.Message = msg
	l.hasMsg = true
	return l
}

// WithColor overrides the label's rendering colour.
func (l Label[ID]) WithColor(c draw.Color) Label[ID] {
	l.Color = c
	return l
}

// WithOrder sets the tie-break used when several labels meet on one line.
func (l Label[ID]) WithOrder(order int) Label[ID] {
	l.Order = order
	return l
}

// WithPriority sets the tie-break used when overlapping labels compete for
// a cell's highlight colour.
func (l Label[ID]) WithPriority(priority int) Label[ID] {
	l.Priority = priority
	return l
}

func (l Label[ID]) view(index int) layout.LabelView[ID] {
	return layout.LabelView[ID]{
		Index:      index,
		Span:       l.Span,
		Message:    l.Message,
		HasMessage: l.hasMsg,
		Color:      l.Color,
		Order:      l.Order,
		Priority:   l.Priority,
	}
}
