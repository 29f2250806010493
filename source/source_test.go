package source

import "testing"

func TestNewScanLines(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines int
	}{
		{"empty", "", 1},
		{"single line no break", "hello", 1},
		{"lf", "a\nb\nc", 3},
		{"crlf coalesced", "a\r\nb\r\nc", 3},
		{"cr only", "a\rb\rc", 3},
		{"trailing newline", "a\nb\n", 3},
		{"vertical tab and form feed", "a\vb\fc", 3},
		{"nel ls ps", "a\u0085b\u2028c\u2029d", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.text)
			if got := s.LineCount(); got != tt.wantLines {
				t.Errorf("LineCount() = %d, want %d", got, tt.wantLines)
			}
		})
	}
}

func TestLineText(t *testing.T) {
	s := New("foo  \nbar\n")
	if got := s.LineText(0); got != "foo" {
		t.Errorf("LineText(0) = %q, want %q", got, "foo")
	}
	if got := s.LineText(1); got != "bar" {
		t.Errorf("LineText(1) = %q, want %q", got, "bar")
	}
}

func TestLineOfByte(t *testing.T) {
	s := New("abc\ndef\nghi")
	tests := []struct {
		offset uint32
		want   int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{7, 1},
		{8, 2},
		{10, 2},
	}
	for _, tt := range tests {
		if got := s.LineOfByte(tt.offset); got != tt.want {
			t.Errorf("LineOfByte(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestPointAtClampsOutOfRange(t *testing.T) {
	s := New("abc\ndef")
	p := s.PointAt(1000, Char)
	want := Point{Line: 1, Col: 3}
	if p != want {
		t.Errorf("PointAt(1000) = %+v, want %+v", p, want)
	}
}

func TestPointAtSnapsMidRuneByteOffset(t *testing.T) {
	// "é" (U+00E9) is 2 bytes in UTF-8; offset 1 lands mid-rune.
	s := New("é!")
	p := s.PointAt(1, Byte)
	if p.Col != 0 {
		t.Errorf("PointAt(1, Byte).Col = %d, want 0 (snapped back to rune start)", p.Col)
	}
}

func TestResolveRunEmptySpan(t *testing.T) {
	s := New("hello world")
	run := s.ResolveRun(5, 5, Char)
	if run.Start != run.End {
		t.Errorf("empty span resolved to differing points: %+v", run)
	}
	if run.Start.Col != 5 {
		t.Errorf("Start.Col = %d, want 5", run.Start.Col)
	}
}

func TestResolveRunNonEmptySpan(t *testing.T) {
	s := New("hello world")
	run := s.ResolveRun(0, 5, Char)
	if run.Start.Col != 0 || run.End.Col != 5 {
		t.Errorf("run = %+v, want Start.Col=0 End.Col=5", run)
	}
}

func TestCharWidthTab(t *testing.T) {
	tests := []struct {
		col      int
		tabWidth int
		want     int
	}{
		{0, 4, 4},
		{1, 4, 3},
		{3, 4, 1},
		{4, 4, 4},
	}
	for _, tt := range tests {
		_, w := CharWidth('\t', tt.col, tt.tabWidth)
		if w != tt.want {
			t.Errorf("CharWidth('\\t', %d, %d) width = %d, want %d", tt.col, tt.tabWidth, w, tt.want)
		}
	}
}

func TestVisualWidthExpandsTabs(t *testing.T) {
	if got := VisualWidth("a\tb", 4); got != 5 {
		t.Errorf("VisualWidth(%q) = %d, want 5", "a\tb", got)
	}
}
