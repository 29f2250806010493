package layout

import "sort"

// LabelAttach selects where an inline label's caret meets its span.
type LabelAttach int

const (
	AttachStart LabelAttach = iota
	AttachMiddle
	AttachEnd
)

// LineKind distinguishes a normally-rendered display line from one that
// falls inside a multiline label's extent but carries no label of its own,
// shown instead as a single ellipsis row.
type LineKind int

const (
	LineNormal LineKind = iota
	LineEllipsis
)

// DisplayLine is one line of a FileLayout's ordered line list.
type DisplayLine struct {
	Index int
	Kind  LineKind
}

// GutterCellKind is the glyph role a gutter cell plays on a given line.
type GutterCellKind int

const (
	CellBlank GutterCellKind = iota
	CellVBar
	CellStartCorner
	CellEndCorner
)

// GutterCell is one column's content in the multiline gutter for one line.
type GutterCell[ID comparable] struct {
	Kind  GutterCellKind
	Label LabelInfo[ID]
}

// LineLabel is one label's contribution to a displayed line: the column its
// arrow attaches at, whether it belongs to a multiline label, and whether
// this occurrence carries the message row.
type LineLabel[ID comparable] struct {
	Col     int
	Label   LabelInfo[ID]
	Multi   bool
	DrawMsg bool
}

// FileLayout is C4's output for one Group: the ordered lines to display,
// the multiline gutter's width and per-line contents, and the per-line
// label lists the renderer walks to draw arrows and messages.
type FileLayout[ID comparable] struct {
	Group       Group[ID]
	Lines       []DisplayLine
	GutterWidth int
	Gutter      map[int][]GutterCell[ID]
	LineLabels  map[int][]LineLabel[ID]
	ArrowLen    map[int]int
}

// Build runs the Layout Engine over one Group, producing its FileLayout.
func Build[ID comparable](g Group[ID], contextLines int, attach LabelAttach, minimiseCrossingsFlag, compact bool) *FileLayout[ID] {
	fl := &FileLayout[ID]{Group: g, Gutter: map[int][]GutterCell[ID]{}, LineLabels: map[int][]LineLabel[ID]{}, ArrowLen: map[int]int{}}

	var multi []LabelInfo[ID]
	for _, l := range g.Labels {
		if l.Kind == Multiline {
			multi = append(multi, l)
		}
	}
	if minimiseCrossingsFlag {
		multi = minimiseCrossings(multi)
	}
	// Sort multiline labels by decreasing line-count: longer spans claim
	// gutter slots first, per spec §4.4.
	sort.SliceStable(multi, func(i, j int) bool {
		li := multi[i].Run.End.Line - multi[i].Run.Start.Line
		lj := multi[j].Run.End.Line - multi[j].Run.Start.Line
		return li > lj
	})

	maxLine := g.Src.LineCount() - 1

	lineSet := map[int]LineKind{}
	addRange := func(from, to int) {
		if from < 0 {
			from = 0
		}
		if to > maxLine {
			to = maxLine
		}
		for i := from; i <= to; i++ {
			lineSet[i] = LineNormal
		}
	}
	for _, l := range g.Labels {
		if l.Kind == Multiline {
			// Only the start/end lines (plus context) render in full; the
			// interior is covered by the ellipsis pass below unless
			// another label already claims those lines.
			addRange(l.Run.Start.Line-contextLines, l.Run.Start.Line+contextLines)
			addRange(l.Run.End.Line-contextLines, l.Run.End.Line+contextLines)
			continue
		}
		addRange(l.Run.Start.Line-contextLines, l.Run.End.Line+contextLines)
	}
	for _, l := range multi {
		for i := l.Run.Start.Line + 1; i < l.Run.End.Line; i++ {
			if _, ok := lineSet[i]; !ok {
				lineSet[i] = LineEllipsis
			}
		}
	}
	var allLines []int
	for i := range lineSet {
		allLines = append(allLines, i)
	}
	sort.Ints(allLines)
	for _, i := range allLines {
		fl.Lines = append(fl.Lines, DisplayLine{Index: i, Kind: lineSet[i]})
	}

	// --- Gutter slot assignment (compact-prefix slot reuse) ---
	assignSlot := make([]int, len(multi))
	slots := []int{} // slots[s] = index into multi currently occupying slot s, or -1
	endLineOf := func(mi int) int { return multi[mi].Run.End.Line }
	for _, dl := range fl.Lines {
		idx := dl.Index
		for s := range slots {
			if slots[s] >= 0 && endLineOf(slots[s]) < idx {
				slots[s] = -1
			}
		}
		for mi := range multi {
			if multi[mi].Run.Start.Line != idx {
				continue
			}
			placed := false
			for s := range slots {
				if slots[s] == -1 {
					slots[s] = mi
					assignSlot[mi] = s
					placed = true
					break
				}
			}
			if !placed {
				assignSlot[mi] = len(slots)
				slots = append(slots, mi)
			}
		}
	}
	fl.GutterWidth = len(slots)

	// --- Per-line gutter cells and label assembly ---
	for _, dl := range fl.Lines {
		idx := dl.Index
		cells := make([]GutterCell[ID], fl.GutterWidth)
		for mi := range multi {
			if idx < multi[mi].Run.Start.Line || idx > multi[mi].Run.End.Line {
				continue
			}
			s := assignSlot[mi]
			kind := CellVBar
			switch idx {
			case multi[mi].Run.Start.Line:
				kind = CellStartCorner
			case multi[mi].Run.End.Line:
				kind = CellEndCorner
			}
			cells[s] = GutterCell[ID]{Kind: kind, Label: multi[mi]}
		}
		fl.Gutter[idx] = cells

		if dl.Kind != LineNormal {
			continue
		}

		var lineLabels []LineLabel[ID]
		for _, l := range multi {
			if !l.View.HasMessage {
				continue
			}
			switch idx {
			case l.Run.Start.Line:
				lineLabels = append(lineLabels, LineLabel[ID]{Col: l.Run.Start.Col, Label: l, Multi: true, DrawMsg: false})
			case l.Run.End.Line:
				lineLabels = append(lineLabels, LineLabel[ID]{Col: l.Run.End.Col, Label: l, Multi: true, DrawMsg: true})
			}
		}
		for _, l := range g.Labels {
			if l.Kind != Inline || l.Run.Start.Line != idx || !l.View.HasMessage {
				continue
			}
			col := attachColumn(l, attach)
			lineLabels = append(lineLabels, LineLabel[ID]{Col: col, Label: l, Multi: false, DrawMsg: true})
		}
		sort.SliceStable(lineLabels, func(i, j int) bool {
			a, b := lineLabels[i], lineLabels[j]
			if a.Label.View.Order != b.Label.View.Order {
				return a.Label.View.Order < b.Label.View.Order
			}
			if a.Multi != b.Multi {
				return a.Multi // multiline labels sort before inline at equal order
			}
			return a.Col < b.Col
		})
		fl.LineLabels[idx] = lineLabels

		arrowEndSpace := 2
		if compact {
			arrowEndSpace = 1
		}
		arrowLen := 0
		lineCharLen := int(g.Src.Line(idx).CharLen)
		for _, ll := range lineLabels {
			candidate := ll.Label.Run.End.Col
			if ll.Multi {
				candidate = lineCharLen
			}
			if candidate > arrowLen {
				arrowLen = candidate
			}
		}
		fl.ArrowLen[idx] = arrowLen + arrowEndSpace
	}

	return fl
}

func attachColumn[ID comparable](l LabelInfo[ID], attach LabelAttach) int {
	if l.Run.Start.Col == l.Run.End.Col {
		return l.Run.Start.Col
	}
	switch attach {
	case AttachStart:
		return l.Run.Start.Col
	case AttachEnd:
		c := l.Run.End.Col - 1
		if c < l.Run.Start.Col {
			c = l.Run.Start.Col
		}
		return c
	default: // AttachMiddle
		mid := (l.Run.Start.Col + l.Run.End.Col) / 2
		if mid < l.Run.Start.Col {
			mid = l.Run.Start.Col
		}
		return mid
	}
}
