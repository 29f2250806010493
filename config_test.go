package diagsnip

import (
	"testing"

	"github.com/surge-lang/diagsnip/internal/layout"
)

func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()
	if !c.CrossGap || c.Compact || !c.Underlines || !c.MultilineArrows || !c.Color {
		t.Errorf("DefaultConfig() unexpected booleans: %+v", c)
	}
	if c.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", c.TabWidth)
	}
	if c.CharSet != Unicode {
		t.Errorf("CharSet = %v, want Unicode", c.CharSet)
	}
	if c.IndexType != IndexChar {
		t.Errorf("IndexType = %v, want IndexChar", c.IndexType)
	}
}

func TestLabelAttachToLayout(t *testing.T) {
	tests := []struct {
		attach LabelAttach
		want   layout.LabelAttach
	}{
		{AttachStart, layout.AttachStart},
		{AttachMiddle, layout.AttachMiddle},
		{AttachEnd, layout.AttachEnd},
	}
	for _, tt := range tests {
		if got := tt.attach.toLayout(); got != tt.want {
			t.Errorf("%v.toLayout() = %v, want %v", tt.attach, got, tt.want)
		}
	}
}

func TestConfigCharactersSelectsCharSet(t *testing.T) {
	c := DefaultConfig()
	c.CharSet = ASCII
	chars := c.characters()
	if chars.HBar != '-' {
		t.Errorf("ASCII charset HBar = %q, want '-'", chars.HBar)
	}
}
