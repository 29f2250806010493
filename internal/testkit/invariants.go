// Package testkit holds invariant checks shared by this module's package
// tests, the way the teacher's internal/testkit carried CheckSpanInvariants
// for ast/source tests.
package testkit

import (
	"fmt"

	"github.com/surge-lang/diagsnip/internal/layout"
)

// CheckLayoutInvariants validates the guarantees the Layout Engine (C4)
// promises for one FileLayout, adapted from the teacher's
// CheckSpanInvariants span-containment checks to this module's gutter and
// display-line model:
//
//  1. gutter indices form a compact prefix [0, GutterWidth)
//  2. every displayed line index is non-negative and strictly increasing
//  3. every LineLabel's column lies within that line's ArrowLen
func CheckLayoutInvariants[ID comparable](fl *layout.FileLayout[ID]) error {
	if fl == nil {
		return fmt.Errorf("nil layout")
	}

	seenSlots := make([]bool, fl.GutterWidth)
	for _, cells := range fl.Gutter {
		if len(cells) != fl.GutterWidth {
			return fmt.Errorf("gutter row has %d cells, want %d", len(cells), fl.GutterWidth)
		}
		for s, cell := range cells {
			if cell.Kind != layout.CellBlank {
				seenSlots[s] = true
			}
		}
	}
	for s, used := range seenSlots {
		if !used {
			return fmt.Errorf("gutter slot %d is never occupied: not a compact prefix", s)
		}
	}

	lastIdx := -1
	for _, dl := range fl.Lines {
		if dl.Index < 0 {
			return fmt.Errorf("negative line index %d", dl.Index)
		}
		if dl.Index <= lastIdx {
			return fmt.Errorf("display lines not strictly increasing: %d after %d", dl.Index, lastIdx)
		}
		lastIdx = dl.Index
	}

	for idx, labels := range fl.LineLabels {
		arrowLen, ok := fl.ArrowLen[idx]
		if !ok {
			return fmt.Errorf("line %d has labels but no ArrowLen entry", idx)
		}
		for _, ll := range labels {
			if ll.Col < 0 || ll.Col > arrowLen {
				return fmt.Errorf("line %d label column %d outside arrow length %d", idx, ll.Col, arrowLen)
			}
		}
	}

	return nil
}
