package layout_test

import (
	"testing"

	"github.com/surge-lang/diagsnip/internal/layout"
	"github.com/surge-lang/diagsnip/internal/testkit"
	"github.com/surge-lang/diagsnip/source"
)

func TestBuildSatisfiesLayoutInvariants(t *testing.T) {
	text := "a{\nb{\nc\nd}\ne}\n"
	cache := source.NewSingleSource(1, "a.sg", text)
	views := []layout.LabelView[int]{
		{Index: 0, Span: source.Span[int]{Source: 1, Start: 0, End: 13}, HasMessage: true, Message: "outer"},
		{Index: 1, Span: source.Span[int]{Source: 1, Start: 3, End: 9}, HasMessage: true, Message: "inner"},
	}
	groups, warnings := layout.GroupLabels(views, cache, source.Byte)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	fl := layout.Build(groups[0], 0, layout.AttachMiddle, false, false)
	if err := testkit.CheckLayoutInvariants(fl); err != nil {
		t.Errorf("CheckLayoutInvariants: %v", err)
	}
}
