package source

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"
)

// IndexType selects whether Span offsets are interpreted as byte positions
// or character (rune) positions.
type IndexType int

const (
	Byte IndexType = iota
	Char
)

// Point is a resolved {line, column} position, both 0-based, column in
// character units.
type Point struct {
	Line int
	Col  int
}

// Run is a Span resolved against a Source: the {line, column} endpoints of
// its start and end.
type Run struct {
	Start Point
	End   Point
}

// Line records one logical line of a Source: its starting byte and
// character offsets, and its length (in bytes and in characters) excluding
// the line break that terminates it.
type Line struct {
	ByteOffset uint32
	CharOffset uint32
	ByteLen    uint32
	CharLen    uint32
}

// breakRunes is the line-break set: LF, CR, VT, FF, NEL, LS, PS. CRLF is
// coalesced into a single break.
var breakRunes = map[rune]bool{
	'\n':     true,
	'\r':     true,
	'\v':     true,
	'\f':     true,
	'\u0085': true, // NEL
	'\u2028': true, // LS
	'\u2029': true, // PS
}

// Source is immutable text plus a precomputed line index.
type Source struct {
	text      string
	lines     []Line
	charTotal uint32
}

// New scans text once, splitting it into lines by the break set above.
func New(text string) *Source {
	s := &Source{text: text}
	s.scan()
	return s
}

func (s *Source) scan() {
	var lineByteStart, lineCharStart uint32
	var lineByteLen, lineCharLen uint32
	flushLine := func() {
		s.lines = append(s.lines, Line{
			ByteOffset: lineByteStart,
			CharOffset: lineCharStart,
			ByteLen:    lineByteLen,
			CharLen:    lineCharLen,
		})
	}

	i := 0
	for i < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[i:])
		if breakRunes[r] {
			flushLine()
			breakByteLen := uint32(size)
			if r == '\r' && i+size < len(s.text) && s.text[i+size] == '\n' {
				breakByteLen += 1
				i++
			}
			s.charTotal += lineCharLen + 1
			lineByteStart += lineByteLen + breakByteLen
			lineCharStart += lineCharLen + 1
			lineByteLen, lineCharLen = 0, 0
			i += size
			continue
		}
		lineByteLen += uint32(size)
		lineCharLen++
		i += size
	}
	flushLine()
	s.charTotal += lineCharLen
}

// Text returns the full, unmodified source text.
func (s *Source) Text() string { return s.text }

// Len returns the total byte length of the source.
func (s *Source) Len() uint32 {
	n, err := safecast.Conv[uint32](len(s.text))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return n
}

// LenChars returns the total character length of the source.
func (s *Source) LenChars() uint32 { return s.charTotal }

// LineCount returns the number of lines in the source.
func (s *Source) LineCount() int { return len(s.lines) }

// Line returns metadata for the i'th (0-based) line.
func (s *Source) Line(i int) Line {
	if i < 0 {
		return s.lines[0]
	}
	if i >= len(s.lines) {
		return s.lines[len(s.lines)-1]
	}
	return s.lines[i]
}

// LineText returns the line's text with trailing whitespace trimmed.
func (s *Source) LineText(i int) string {
	l := s.Line(i)
	text := s.text[l.ByteOffset : l.ByteOffset+l.ByteLen]
	return strings.TrimRight(text, " \t")
}

// LineOfByte returns the 0-based index of the line containing byte offset
// b, clamped to [0, Len()].
func (s *Source) LineOfByte(b uint32) int {
	if b > s.Len() {
		b = s.Len()
	}
	i := sort.Search(len(s.lines), func(k int) bool {
		l := s.lines[k]
		return l.ByteOffset+l.ByteLen >= b
	})
	if i >= len(s.lines) {
		return len(s.lines) - 1
	}
	return i
}

// LineOfChar returns the 0-based index of the line containing character
// offset c, clamped to [0, LenChars()].
func (s *Source) LineOfChar(c uint32) int {
	if c > s.charTotal {
		c = s.charTotal
	}
	i := sort.Search(len(s.lines), func(k int) bool {
		l := s.lines[k]
		return l.CharOffset+l.CharLen >= c
	})
	if i >= len(s.lines) {
		return len(s.lines) - 1
	}
	return i
}

// snapByteToRuneBoundary walks b backwards until it lands on a UTF-8 rune
// boundary. This realises the clamp policy for offsets that fall inside a
// multibyte character (see the Open Question decision in SPEC_FULL.md §5).
func (s *Source) snapByteToRuneBoundary(b uint32) uint32 {
	for b > 0 && b <= s.Len() {
		if b == s.Len() || utf8.RuneStart(s.text[b]) {
			return b
		}
		b--
	}
	return b
}

// PointAt resolves a raw position (interpreted per indexType) to a {line,
// column} point. Positions outside the source are clamped, never panicked
// on; this is the single clamp choke-point the whole renderer relies on.
func (s *Source) PointAt(pos uint32, indexType IndexType) Point {
	switch indexType {
	case Char:
		if pos > s.charTotal {
			pos = s.charTotal
		}
		line := s.LineOfChar(pos)
		l := s.lines[line]
		col, err := safecast.Conv[int](pos - l.CharOffset)
		if err != nil {
			panic(fmt.Errorf("column overflow: %w", err))
		}
		return Point{Line: line, Col: col}
	default: // Byte
		if pos > s.Len() {
			pos = s.Len()
		}
		pos = s.snapByteToRuneBoundary(pos)
		line := s.LineOfByte(pos)
		l := s.lines[line]
		col := utf8.RuneCountInString(s.text[l.ByteOffset:pos])
		return Point{Line: line, Col: col}
	}
}

// ResolveRun resolves a [start, end) range (in indexType units) to a Run.
// An empty span resolves Start and End to the same point; a non-empty span
// resolves End to the column of its last included character plus one, per
// spec semantics.
func (s *Source) ResolveRun(start, end uint32, indexType IndexType) Run {
	startPoint := s.PointAt(start, indexType)
	if end <= start {
		return Run{Start: startPoint, End: startPoint}
	}
	lastPoint := s.PointAt(end-1, indexType)
	return Run{Start: startPoint, End: Point{Line: lastPoint.Line, Col: lastPoint.Col + 1}}
}

// CharWidth returns the display form and display width of rune c appearing
// at 0-based display column currentColumn. Tabs expand to the next multiple
// of tabWidth; other characters use East-Asian width via go-runewidth.
func CharWidth(c rune, currentColumn, tabWidth int) (rune, int) {
	if c == '\t' {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		w := tabWidth - (currentColumn % tabWidth)
		return ' ', w
	}
	w := runewidth.RuneWidth(c)
	if w <= 0 {
		w = 1
	}
	return c, w
}

// VisualWidth returns the total display width of s starting at display
// column 0, honoring tab expansion.
func VisualWidth(s string, tabWidth int) int {
	col := 0
	for _, r := range s {
		_, w := CharWidth(r, col, tabWidth)
		col += w
	}
	return col
}
