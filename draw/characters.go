// Package draw supplies the Style Layer: the fixed Unicode/ASCII glyph
// tables the renderer draws gutters and arrows with, plus colour wrappers
// built on fatih/color and a 256-colour generator for callers that want one
// distinct colour per label without hand-picking a palette.
package draw

// Characters is the glyph table the renderer selects per Config.CharSet.
type Characters struct {
	HBar, VBar, XBar               rune
	VBarBreak                      rune
	UArrow                         rune
	LTop, MTop, RTop               rune
	LBot, MBot, RBot               rune
	LBox, RBox                     rune
	LCross                         rune
	Underbar, Underline            rune
	Ellipsis                       rune
}

// Unicode returns the full box-drawing glyph set.
func Unicode() Characters {
	return Characters{
		HBar: '─', VBar: '│', XBar: '┼',
		VBarBreak: '┆',
		UArrow:    '▲',
		LTop:      '╭', MTop: '┬', RTop: '╮',
		LBot: '╰', MBot: '┴', RBot: '╯',
		LBox: '[', RBox: ']',
		LCross:    '├',
		Underbar:  '┬', Underline: '─',
		Ellipsis: '·',
	}
}

// ASCII returns the plain-ASCII fallback glyph set.
func ASCII() Characters {
	return Characters{
		HBar: '-', VBar: '|', XBar: '+',
		VBarBreak: '*',
		UArrow:    '^',
		LTop:      ',', MTop: 'v', RTop: '.',
		LBot: '`', MBot: '^', RBot: '\'',
		LBox: '[', RBox: ']',
		LCross:    '|',
		Underbar:  '|', Underline: '^',
		Ellipsis: ':',
	}
}
