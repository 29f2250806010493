package diagsnip

import (
	"strings"
	"testing"

	"github.com/surge-lang/diagsnip/draw"
	"github.com/surge-lang/diagsnip/source"
)

func TestWriteSimpleInlineLabel(t *testing.T) {
	cache := source.NewSingleSource(1, "main.sg", "let x = 1;\n")
	primary := source.Span[int]{Source: 1, Start: 4, End: 5}
	d := NewBuilder[int](KindError, primary).
		WithCode(3).
		WithMessage("unexpected identifier").
		WithLabel(NewLabel(primary).WithMessage("this variable").WithColor(draw.ColorError)).
		Build()
	d.Config.Color = false
	d.Config.IndexType = IndexByte

	var sb strings.Builder
	if err := Write(d, cache, &sb); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{"[E03]", "unexpected identifier", "main.sg", "let x = 1;", "this variable"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q; got:\n%s", want, out)
		}
	}
}

func TestWriteMultipleHelpsAreNumbered(t *testing.T) {
	cache := source.NewSingleSource(1, "main.sg", "abc\n")
	primary := source.Span[int]{Source: 1, Start: 0, End: 1}
	d := NewBuilder[int](KindWarning, primary).
		WithMessage("m").
		WithHelp("first").
		WithHelp("second").
		Build()
	d.Config.Color = false

	var sb strings.Builder
	if err := Write(d, cache, &sb); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Help 1:") || !strings.Contains(out, "Help 2:") {
		t.Errorf("expected numbered Help entries, got:\n%s", out)
	}
}

func TestWriteSingleHelpIsNotNumbered(t *testing.T) {
	cache := source.NewSingleSource(1, "main.sg", "abc\n")
	primary := source.Span[int]{Source: 1, Start: 0, End: 1}
	d := NewBuilder[int](KindWarning, primary).
		WithMessage("m").
		WithHelp("only one").
		Build()
	d.Config.Color = false

	var sb strings.Builder
	if err := Write(d, cache, &sb); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "Help 1:") {
		t.Errorf("single Help entry should not be numbered, got:\n%s", out)
	}
	if !strings.Contains(out, "Help:") {
		t.Errorf("expected unnumbered Help: prefix, got:\n%s", out)
	}
}

func TestWriteReportsUnfetchableSourceAsWarningLine(t *testing.T) {
	cache := source.NewSingleSource(1, "main.sg", "abc\n")
	primary := source.Span[int]{Source: 1, Start: 0, End: 1}
	other := source.Span[int]{Source: 2, Start: 0, End: 1}
	d := NewBuilder[int](KindError, primary).
		WithMessage("m").
		WithLabel(NewLabel(other).WithMessage("missing")).
		Build()
	d.Config.Color = false

	var sb strings.Builder
	if err := Write(d, cache, &sb); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !strings.Contains(sb.String(), "Unable to fetch source") {
		t.Errorf("expected an inline warning for the unfetchable source, got:\n%s", sb.String())
	}
}

func TestWriteMultilineLabelDrawsEllipsis(t *testing.T) {
	text := "a{\nb\nc\nd\ne}\n"
	cache := source.NewSingleSource(1, "main.sg", text)
	primary := source.Span[int]{Source: 1, Start: 1, End: 10}
	d := NewBuilder[int](KindError, primary).
		WithMessage("m").
		WithLabel(NewLabel(primary).WithMessage("block").WithColor(draw.ColorError)).
		Build()
	d.Config.Color = false
	d.Config.IndexType = IndexByte

	var sb strings.Builder
	if err := Write(d, cache, &sb); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := sb.String()
	chars := draw.Unicode()
	if !strings.ContainsRune(out, chars.Ellipsis) {
		t.Errorf("expected an ellipsis glyph for the unshown interior lines, got:\n%s", out)
	}
}
