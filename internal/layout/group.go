// Package layout implements the Grouping & Classification and Layout Engine
// stages of diagnostic rendering: partitioning labels by source and line
// range, classifying inline vs multiline, assigning gutter columns to
// multiline labels, and assembling the per-line label lists the renderer
// walks.
package layout

import (
	"fmt"
	"sort"

	"github.com/surge-lang/diagsnip/draw"
	"github.com/surge-lang/diagsnip/source"
)

// Kind classifies a label against the source lines its span touches.
type Kind int

const (
	Inline Kind = iota
	Multiline
)

// LabelView is the subset of a diagnostic's Label the layout engine and
// renderer need. The root package builds these from its own Label[ID] type;
// Index lets callers map back to the originating Label by identity.
type LabelView[ID comparable] struct {
	Index      int
	Span       source.Span[ID]
	Message    string
	HasMessage bool
	Color      draw.Color
	Order      int
	Priority   int
}

// LabelInfo pairs a LabelView with its resolved Run and inline/multiline
// classification.
type LabelInfo[ID comparable] struct {
	Kind Kind
	Run  source.Run
	View LabelView[ID]
}

// Group is a maximal run of labels rendered as one file-reference box plus
// line block: C3's output.
type Group[ID comparable] struct {
	SourceID ID
	Src      *source.Source
	Labels   []LabelInfo[ID]
}

type resolvedLabel[ID comparable] struct {
	info LabelInfo[ID]
}

// GroupLabels partitions labels into source groups per spec §4.3: resolve
// each label's span, classify it, sort by (order, end_line, start_line),
// then sweep the sorted list, starting a new group whenever the source
// changes or the next label's end line is earlier than the current group's
// last end line. Labels whose source cannot be fetched are skipped and
// reported as a warning string (one per failure), per the error-handling
// design.
func GroupLabels[ID comparable](labels []LabelView[ID], cache source.Cache[ID], indexType source.IndexType) ([]Group[ID], []string) {
	var resolved []resolvedLabel[ID]
	var warnings []string
	srcOf := make(map[ID]*source.Source)

	for _, lv := range labels {
		src, ok := srcOf[lv.Span.Source]
		if !ok {
			var err error
			src, err = cache.Fetch(lv.Span.Source)
			if err != nil {
				name, has := cache.Display(lv.Span.Source)
				if !has {
					name = fmt.Sprintf("%v", lv.Span.Source)
				}
				warnings = append(warnings, fmt.Sprintf("Unable to fetch source %s: %v", name, err))
				continue
			}
			srcOf[lv.Span.Source] = src
		}

		run := src.ResolveRun(lv.Span.Start, lv.Span.End, indexType)
		kind := Inline
		if run.Start.Line != run.End.Line {
			kind = Multiline
		}
		resolved = append(resolved, resolvedLabel[ID]{info: LabelInfo[ID]{Kind: kind, Run: run, View: lv}})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		a, b := resolved[i].info, resolved[j].info
		if a.View.Order != b.View.Order {
			return a.View.Order < b.View.Order
		}
		if a.Run.End.Line != b.Run.End.Line {
			return a.Run.End.Line < b.Run.End.Line
		}
		return a.Run.Start.Line < b.Run.Start.Line
	})

	var groups []Group[ID]
	lastEndLine := 0
	for _, r := range resolved {
		newGroup := len(groups) == 0
		if !newGroup {
			last := &groups[len(groups)-1]
			if last.SourceID != r.info.View.Span.Source || r.info.Run.End.Line < lastEndLine {
				newGroup = true
			}
		}
		if newGroup {
			groups = append(groups, Group[ID]{
				SourceID: r.info.View.Span.Source,
				Src:      srcOf[r.info.View.Span.Source],
			})
		}
		g := &groups[len(groups)-1]
		g.Labels = append(g.Labels, r.info)
		lastEndLine = r.info.Run.End.Line
	}
	return groups, warnings
}
