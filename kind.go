package diagsnip

import "github.com/surge-lang/diagsnip/draw"

// Kind is a diagnostic's severity: one of the three builtins or a Custom
// kind carrying its own name and colour.
type Kind struct {
	name   string
	color  draw.Color
	letter byte
}

var (
	KindError   = Kind{name: "Error", color: draw.ColorError, letter: 'E'}
	KindWarning = Kind{name: "Warning", color: draw.ColorWarning, letter: 'W'}
	KindAdvice  = Kind{name: "Advice", color: draw.ColorAdvice, letter: 'A'}
)

// CustomKind builds a user-defined Kind with its own name and colour.
func CustomKind(name string, color draw.Color) Kind {
	return Kind{name: name, color: color, letter: 'C'}
}

func (k Kind) String() string { return k.name }

// Color returns the kind's header colour.
func (k Kind) Color() draw.Color { return k.color }

// Letter returns the single-character prefix used in the bracketed code
// (e.g. the 'E' in "[E03]").
func (k Kind) Letter() byte { return k.letter }
