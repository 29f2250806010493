package diagsnip

import (
	"fmt"
	"io"
	"strings"

	"github.com/surge-lang/diagsnip/draw"
	"github.com/surge-lang/diagsnip/internal/layout"
	"github.com/surge-lang/diagsnip/source"
)

// Write renders d against cache to w. I/O errors are returned verbatim;
// the only panics Write can raise are the invariant violations spec.md §7
// reserves for programming errors (labels are validated at construction,
// so in practice Write itself never panics). A SourceFetchFailed is
// recovered locally: the offending group is skipped and a line describing
// the failure is emitted in its place.
func Write[ID comparable](d *Diagnostic[ID], cache source.Cache[ID], w io.Writer) error {
	chars := d.Config.characters()
	draw.SetColorEnabled(d.Config.Color)

	if err := writeHeader(d, w); err != nil {
		return err
	}

	views := make([]layout.LabelView[ID], len(d.Labels))
	for i, l := range d.Labels {
		views[i] = l.view(i)
	}
	groups, warnings := layout.GroupLabels(views, cache, d.Config.IndexType)
	for _, warn := range warnings {
		if _, err := fmt.Fprintln(w, warn); err != nil {
			return err
		}
	}

	layouts := make([]*layout.FileLayout[ID], len(groups))
	maxLineNo := 0
	for i, g := range groups {
		fl := layout.Build(g, d.Config.ContextLines, d.Config.LabelAttach.toLayout(), d.Config.MinimiseCrossings, d.Config.Compact)
		layouts[i] = fl
		for _, dl := range fl.Lines {
			if dl.Index+1 > maxLineNo {
				maxLineNo = dl.Index + 1
			}
		}
	}
	lineNoWidth := len(fmt.Sprintf("%d", maxLineNo))
	if lineNoWidth < 1 {
		lineNoWidth = 1
	}

	for gi, fl := range layouts {
		if err := writeFileReference(d, fl, gi, cache, chars, lineNoWidth, w); err != nil {
			return err
		}
		if !d.Config.Compact {
			if err := writeBlankMargin(lineNoWidth, chars, ColorMargin(), w); err != nil {
				return err
			}
		}
		for _, dl := range fl.Lines {
			if dl.Kind == layout.LineEllipsis {
				if err := writeEllipsisLine(dl.Index, fl, chars, lineNoWidth, d.Config, w); err != nil {
					return err
				}
				continue
			}
			if err := writeContentLine(dl.Index, fl, chars, lineNoWidth, d.Config, w); err != nil {
				return err
			}
		}

		isFinal := gi+1 == len(layouts)
		if isFinal {
			if err := writeHelpsAndNotes(d, chars, lineNoWidth, w); err != nil {
				return err
			}
			if err := writeFooter(chars, lineNoWidth, ColorMargin(), w); err != nil {
				return err
			}
		} else if !d.Config.Compact {
			if err := writeBlankMargin(lineNoWidth, chars, ColorMargin(), w); err != nil {
				return err
			}
		}
	}
	if len(layouts) == 0 && (len(d.Helps) > 0 || len(d.Notes) > 0) {
		if err := writeHelpsAndNotes(d, chars, lineNoWidth, w); err != nil {
			return err
		}
		return writeFooter(chars, lineNoWidth, ColorMargin(), w)
	}
	return nil
}

func writeHeader[ID comparable](d *Diagnostic[ID], w io.Writer) error {
	code := ""
	if d.Code != nil {
		code = fmt.Sprintf("[%c%02d] ", d.Kind.Letter(), *d.Code)
	}
	id := draw.Foreground(d.Kind.Color(), fmt.Sprintf("%s%s:", code, d.Kind.String()))
	_, err := fmt.Fprintf(w, "%s %s\n", id, d.Message)
	return err
}

func writeFileReference[ID comparable](d *Diagnostic[ID], fl *layout.FileLayout[ID], groupIdx int, cache source.Cache[ID], chars draw.Characters, lineNoWidth int, w io.Writer) error {
	name, ok := cache.Display(fl.Group.SourceID)
	if !ok {
		name = fmt.Sprintf("%v", fl.Group.SourceID)
	}
	location := d.Primary.Start
	if d.Primary.Source != fl.Group.SourceID && len(fl.Group.Labels) > 0 {
		location = fl.Group.Labels[0].View.Span.Start
	}
	point := fl.Group.Src.PointAt(location, d.Config.IndexType)

	corner := chars.LTop
	if groupIdx != 0 {
		corner = chars.LCross
	}
	indent := strings.Repeat(" ", lineNoWidth+1)
	margin := draw.Foreground(ColorMargin(),
		fmt.Sprintf("%s%c%c%c%s:%d:%d%c", indent, corner, chars.HBar, chars.LBox, name, point.Line+1, point.Col+1, chars.RBox))
	_, err := fmt.Fprintln(w, margin)
	return err
}

// ColorMargin exposes the margin colour constant for the write helpers in
// this file; kept as a function (not a bare re-export) so callers outside
// this package reach it through draw directly.
func ColorMargin() draw.Color { return draw.ColorMargin }

func writeBlankMargin(lineNoWidth int, chars draw.Characters, color draw.Color, w io.Writer) error {
	indent := strings.Repeat(" ", lineNoWidth+1)
	_, err := fmt.Fprintln(w, draw.Foreground(color, fmt.Sprintf("%s%c", indent, chars.VBar)))
	return err
}

func writeFooter(chars draw.Characters, lineNoWidth int, color draw.Color, w io.Writer) error {
	bar := strings.Repeat(string(chars.HBar), lineNoWidth+2)
	_, err := fmt.Fprintln(w, draw.Foreground(color, bar+string(chars.RBot)))
	return err
}

func lineNumberMargin(lineNo, width int, vbar rune, color draw.Color) string {
	return draw.Foreground(color, fmt.Sprintf("%*d %c ", width, lineNo, vbar))
}

func blankLineMargin(width int, vbarBreak rune, color draw.Color) string {
	return draw.Foreground(color, fmt.Sprintf("%s%c ", strings.Repeat(" ", width+1), vbarBreak))
}

func gutterCellGlyphs[ID comparable](cell layout.GutterCell[ID], chars draw.Characters, compact, multilineArrows bool) string {
	switch cell.Kind {
	case layout.CellVBar:
		s := string(chars.VBar)
		if !compact {
			s += " "
		}
		return draw.Foreground(cell.Label.View.Color, s)
	case layout.CellStartCorner:
		head := chars.HBar
		if multilineArrows {
			head = chars.UArrow
		}
		s := string(chars.LTop)
		if !compact {
			s += string(head)
		}
		return draw.Foreground(cell.Label.View.Color, s)
	case layout.CellEndCorner:
		s := string(chars.LBot)
		if !compact {
			s += string(chars.HBar)
		}
		return draw.Foreground(cell.Label.View.Color, s)
	default:
		if compact {
			return " "
		}
		return "  "
	}
}

func writeGutter[ID comparable](cells []layout.GutterCell[ID], chars draw.Characters, compact, multilineArrows bool, w io.Writer) error {
	for _, c := range cells {
		if _, err := io.WriteString(w, gutterCellGlyphs(c, chars, compact, multilineArrows)); err != nil {
			return err
		}
	}
	return nil
}

func writeEllipsisLine[ID comparable](idx int, fl *layout.FileLayout[ID], chars draw.Characters, lineNoWidth int, cfg Config, w io.Writer) error {
	if _, err := io.WriteString(w, lineNumberMargin(idx+1, lineNoWidth, chars.VBar, ColorMargin())); err != nil {
		return err
	}
	if err := writeGutter(fl.Gutter[idx], chars, cfg.Compact, cfg.MultilineArrows, w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%c\n", chars.Ellipsis)
	return err
}

func writeContentLine[ID comparable](idx int, fl *layout.FileLayout[ID], chars draw.Characters, lineNoWidth int, cfg Config, w io.Writer) error {
	lineLabels := fl.LineLabels[idx]
	src := fl.Group.Src
	lineCharLen := int(src.Line(idx).CharLen)

	if _, err := io.WriteString(w, lineNumberMargin(idx+1, lineNoWidth, chars.VBar, ColorMargin())); err != nil {
		return err
	}
	if err := writeGutter(fl.Gutter[idx], chars, cfg.Compact, cfg.MultilineArrows, w); err != nil {
		return err
	}

	col := 0
	for _, r := range src.LineText(idx) {
		c, width := source.CharWidth(r, col, cfg.TabWidth)
		color, ok := highlightAt(col, lineLabels, lineCharLen)
		if !ok {
			color = draw.ColorUnimportant
		}
		for i := 0; i < width; i++ {
			if _, err := io.WriteString(w, draw.Foreground(color, string(c))); err != nil {
				return err
			}
		}
		col += width
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for row := range lineLabels {
		if !cfg.Compact {
			if err := writeAlternateRow(idx, fl, row, chars, lineNoWidth, cfg, w); err != nil {
				return err
			}
		}
		if err := writeMessageRow(idx, fl, row, chars, lineNoWidth, cfg, w); err != nil {
			return err
		}
	}
	return nil
}

func highlightAt[ID comparable](col int, lineLabels []layout.LineLabel[ID], lineCharLen int) (draw.Color, bool) {
	best := draw.None
	ok := false
	bestPriority := 0
	bestLen := 0
	for _, ll := range lineLabels {
		lo, hi := 0, 0
		switch {
		case ll.Multi && ll.DrawMsg:
			lo, hi = 0, ll.Col
		case ll.Multi:
			lo, hi = ll.Col, lineCharLen
		default:
			lo, hi = ll.Label.Run.Start.Col, ll.Label.Run.End.Col
			if lo == hi {
				hi = lo + 1
			}
		}
		if col < lo || col >= hi {
			continue
		}
		length := hi - lo
		pr := ll.Label.View.Priority
		if !ok || pr > bestPriority || (pr == bestPriority && length < bestLen) {
			ok = true
			bestPriority = pr
			bestLen = length
			best = ll.Label.View.Color
		}
	}
	return best, ok
}

func underlineAt[ID comparable](col int, lineLabels []layout.LineLabel[ID]) (draw.Color, bool) {
	best := draw.None
	ok := false
	for _, ll := range lineLabels {
		if ll.Multi {
			continue
		}
		lo, hi := ll.Label.Run.Start.Col, ll.Label.Run.End.Col
		if lo == hi {
			hi = lo + 1
		}
		if col < lo || col >= hi {
			continue
		}
		ok = true
		best = ll.Label.View.Color
	}
	return best, ok
}

func vbarAt[ID comparable](col, row int, lineLabels []layout.LineLabel[ID]) (layout.LineLabel[ID], bool) {
	for j, ll := range lineLabels {
		if ll.Col == col && row <= j {
			return ll, true
		}
	}
	return layout.LineLabel[ID]{}, false
}

func writeAlternateRow[ID comparable](idx int, fl *layout.FileLayout[ID], row int, chars draw.Characters, lineNoWidth int, cfg Config, w io.Writer) error {
	lineLabels := fl.LineLabels[idx]
	if _, err := io.WriteString(w, blankLineMargin(lineNoWidth, chars.VBarBreak, ColorMargin())); err != nil {
		return err
	}
	if err := writeGutter(fl.Gutter[idx], chars, cfg.Compact, cfg.MultilineArrows, w); err != nil {
		return err
	}
	for col := 0; col < fl.ArrowLen[idx]; col++ {
		vb, hasV := vbarAt(col, row, lineLabels)
		_, hasUnderline := underlineAt(col, lineLabels)
		hasUnderline = hasUnderline && row == 0 && cfg.Underlines

		if hasV {
			c := chars.VBar
			switch {
			case hasUnderline:
				c = chars.Underbar
			case vb.Multi && row == 0 && cfg.MultilineArrows:
				c = chars.UArrow
			}
			if _, err := io.WriteString(w, draw.Foreground(vb.Label.View.Color, string(c))); err != nil {
				return err
			}
			continue
		}
		if hasUnderline {
			u, _ := underlineAt(col, lineLabels)
			if _, err := io.WriteString(w, draw.Foreground(u, string(chars.Underline))); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeMessageRow[ID comparable](idx int, fl *layout.FileLayout[ID], row int, chars draw.Characters, lineNoWidth int, cfg Config, w io.Writer) error {
	lineLabels := fl.LineLabels[idx]
	ll := lineLabels[row]

	if _, err := io.WriteString(w, blankLineMargin(lineNoWidth, chars.VBarBreak, ColorMargin())); err != nil {
		return err
	}
	if err := writeGutter(fl.Gutter[idx], chars, cfg.Compact, cfg.MultilineArrows, w); err != nil {
		return err
	}

	for col := 0; col < fl.ArrowLen[idx]; col++ {
		isHbar := col > ll.Col
		v, hasV := vbarAt(col, row, lineLabels)
		var glyph rune
		var color draw.Color
		switch {
		case col == ll.Col:
			switch {
			case ll.Multi && ll.DrawMsg:
				glyph = chars.MBot
			case ll.Multi:
				glyph = chars.RBot
			default:
				glyph = chars.LBot
			}
			color = ll.Label.View.Color
		case hasV && (col != ll.Col || ll.Label.View.HasMessage):
			glyph = chars.VBar
			if isHbar && !cfg.CrossGap {
				glyph = chars.XBar
			}
			color = v.Label.View.Color
		case isHbar:
			glyph = chars.HBar
			color = ll.Label.View.Color
		default:
			glyph = ' '
			color = draw.None
		}
		if _, err := io.WriteString(w, draw.Foreground(color, string(glyph))); err != nil {
			return err
		}
	}
	if ll.DrawMsg || !ll.Multi {
		if _, err := fmt.Fprintf(w, " %s", ll.Label.View.Message); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeHelpsAndNotes[ID comparable](d *Diagnostic[ID], chars draw.Characters, lineNoWidth int, w io.Writer) error {
	writeBlock := func(label string, items []string) error {
		for i, item := range items {
			if !d.Config.Compact {
				if _, err := io.WriteString(w, blankLineMargin(lineNoWidth, chars.VBarBreak, ColorMargin())); err != nil {
					return err
				}
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			prefix := label + ":"
			if len(items) > 1 {
				prefix = fmt.Sprintf("%s %d:", label, i+1)
			}
			lines := strings.Split(item, "\n")
			for li, text := range lines {
				if _, err := io.WriteString(w, blankLineMargin(lineNoWidth, chars.VBarBreak, ColorMargin())); err != nil {
					return err
				}
				if li == 0 {
					if _, err := fmt.Fprintf(w, "%s %s\n", draw.Foreground(draw.ColorNoteHelp, prefix), text); err != nil {
						return err
					}
				} else {
					indent := strings.Repeat(" ", len(prefix)+1)
					if _, err := fmt.Fprintf(w, "%s%s\n", indent, text); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
	if err := writeBlock("Help", d.Helps); err != nil {
		return err
	}
	return writeBlock("Note", d.Notes)
}
