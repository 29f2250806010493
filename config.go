package diagsnip

import (
	"github.com/surge-lang/diagsnip/draw"
	"github.com/surge-lang/diagsnip/internal/layout"
	"github.com/surge-lang/diagsnip/source"
)

// LabelAttach selects where an inline label's caret meets its span.
type LabelAttach int

const (
	AttachStart LabelAttach = iota
	AttachMiddle
	AttachEnd
)

func (a LabelAttach) toLayout() layout.LabelAttach {
	switch a {
	case AttachStart:
		return layout.AttachStart
	case AttachEnd:
		return layout.AttachEnd
	default:
		return layout.AttachMiddle
	}
}

// CharSet selects the box-drawing glyph table.
type CharSet int

const (
	Unicode CharSet = iota
	ASCII
)

// IndexType selects whether Span offsets are byte or character positions.
type IndexType = source.IndexType

const (
	IndexByte = source.Byte
	IndexChar = source.Char
)

// Config holds every rendering knob, with the defaults spec.md §3
// documents.
type Config struct {
	// CrossGap: when a horizontal connector crosses a vertical one, insert
	// a gap (true) or draw the crossing glyph (false). Default true.
	CrossGap bool
	// LabelAttach: where an inline label's caret meets its span. Default
	// AttachMiddle.
	LabelAttach LabelAttach
	// Compact suppresses blank spacer/alternate rows. Default false.
	Compact bool
	// Underlines draws a row under inline spans. Default true.
	Underlines bool
	// MultilineArrows draws up-arrow heads at multiline-span starts.
	// Default true.
	MultilineArrows bool
	// Color emits ANSI colour escapes. Default true.
	Color bool
	// TabWidth is the number of columns a tab expands to. Default 4.
	TabWidth int
	// CharSet selects Unicode or ASCII box-drawing glyphs. Default Unicode.
	CharSet CharSet
	// IndexType selects byte or character span offsets. Default IndexChar.
	IndexType IndexType
	// MinimiseCrossings allows reordering same-order multiline labels to
	// reduce connector crossings. Default false.
	MinimiseCrossings bool
	// ContextLines adds extra source lines shown before/after each label's
	// range. Default 0.
	ContextLines int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		CrossGap:        true,
		LabelAttach:     AttachMiddle,
		Compact:         false,
		Underlines:      true,
		MultilineArrows: true,
		Color:           true,
		TabWidth:        4,
		CharSet:         Unicode,
		IndexType:       IndexChar,
	}
}

func (c Config) characters() draw.Characters {
	if c.CharSet == ASCII {
		return draw.ASCII()
	}
	return draw.Unicode()
}
