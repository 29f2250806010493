package draw

import (
	"fmt"

	"github.com/fatih/color"
)

// Color is a fixed 256-colour index (an xterm colour number). The zero
// value is colour index 0 and is emitted like any other index; callers use
// the None sentinel below for "no colour" the way the original crate uses
// Option<Color>.
type Color int

// None is the sentinel meaning "apply no colour", kept distinct from 0
// (which is a legitimate colour index, black).
const None Color = -1

// Fixed 256-colour palette (see SPEC_FULL.md / spec.md §4.6).
const (
	ColorError       Color = 9   // bright red
	ColorWarning     Color = 11  // bright yellow
	ColorAdvice      Color = 147
	ColorMargin      Color = 246
	ColorSkipMargin  Color = 240
	ColorUnimportant Color = 249
	ColorNoteHelp    Color = 115
)

// fatih/color has no constructor for an arbitrary 256-colour index; the SGR
// sequence for "set foreground to indexed colour n" is `ESC[38;5;nm`, which
// color.New reproduces by stacking three raw Attributes.
func attrs(base color.Attribute, c Color) *color.Color {
	return color.New(base, color.Attribute(5), color.Attribute(c))
}

// Foreground renders s in the foreground colour c. If c is None, s passes
// through unmodified. Colour wrappers do not compose: calling Foreground
// then Background on the same string produces unspecified escape nesting
// and must not be done by callers.
func Foreground(c Color, s string) string {
	if c == None {
		return s
	}
	return attrs(38, c).Sprint(s)
}

// Background renders s with background colour c, or passes it through
// unmodified if c is None.
func Background(c Color, s string) string {
	if c == None {
		return s
	}
	return attrs(48, c).Sprint(s)
}

// SetColorEnabled toggles fatih/color's global ANSI emission. The renderer
// calls this once per Write based on Config.Color. With colour disabled the
// wrappers below produce no escapes at all; nothing is stripped from the
// written output afterwards.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// ColorGenerator produces a sequence of visually distinct 256-colour
// indices without the caller hand-picking a palette. Ported from the
// original crate's draw::ColorGenerator.
type ColorGenerator struct {
	state [3]uint64
}

// NewColorGenerator seeds a generator deterministically from seed.
func NewColorGenerator(seed uint64) *ColorGenerator {
	g := &ColorGenerator{}
	g.state[0] = seed ^ 0x9E3779B97F4A7C15
	g.state[1] = seed*2654435761 + 1
	g.state[2] = seed*40503 + 1130
	return g
}

// Next returns the next colour in the sequence.
func (g *ColorGenerator) Next() Color {
	g.state[0], g.state[1], g.state[2] = g.state[1], g.state[2], g.state[0]^g.state[1]
	mixed := g.state[0] ^ (g.state[1] << 13) ^ (g.state[2] >> 7)
	n := 16 + (mixed % 216) // skip the low 16-colour band, stay in the 6x6x6 cube
	return Color(n)
}

func (c Color) String() string {
	if c == None {
		return "none"
	}
	return fmt.Sprintf("fixed(%d)", int(c))
}
