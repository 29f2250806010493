package source

import "testing"

func TestSpanEmpty(t *testing.T) {
	tests := []struct {
		name string
		span Span[int]
		want bool
	}{
		{"empty", Span[int]{Source: 1, Start: 5, End: 5}, true},
		{"non-empty", Span[int]{Source: 1, Start: 5, End: 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanLen(t *testing.T) {
	s := Span[int]{Source: 1, Start: 10, End: 25}
	if got := s.Len(); got != 15 {
		t.Errorf("Len() = %d, want 15", got)
	}
}

func TestSpanContains(t *testing.T) {
	s := Span[int]{Source: 1, Start: 10, End: 20}
	tests := []struct {
		pos  uint32
		want bool
	}{
		{9, false},
		{10, true},
		{19, true},
		{20, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestSpanLastOffset(t *testing.T) {
	tests := []struct {
		name string
		span Span[int]
		want uint32
	}{
		{"non-empty", Span[int]{Source: 1, Start: 10, End: 20}, 19},
		{"empty", Span[int]{Source: 1, Start: 10, End: 10}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.LastOffset(); got != tt.want {
				t.Errorf("LastOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}
