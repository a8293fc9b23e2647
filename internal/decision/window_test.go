package decision

import (
	"slices"
	"testing"
)

func TestWindow_IsLegal(t *testing.T) {
	w := DefaultWindow()

	L, O, U := Local, Offload, Undecided

	tests := []struct {
		name      string
		recent    []Choice
		candidate Choice
		want      bool
	}{
		{"empty history local", nil, L, true},
		{"empty history offload", nil, O, true},
		{"two locals then local", []Choice{L, L}, L, false},
		{"one local then local", []Choice{O, L}, L, true},
		{"local cap with three", []Choice{L, O, L}, L, false},
		{"three offloads then offload", []Choice{O, O, O}, O, false},
		{"three offloads then local", []Choice{O, O, O}, L, true},
		{"two offloads then offload", []Choice{L, O, O}, O, true},
		{"only last three count", []Choice{L, L, O, O, O}, O, false},
		{"older locals fall out", []Choice{L, L, O, O}, L, true},
		{"undecided does not count", []Choice{U, U, L}, L, true},
		{"undecided candidate", nil, U, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsLegal(tt.recent, tt.candidate); got != tt.want {
				t.Errorf("IsLegal(%v, %s) = %v, want %v", tt.recent, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestWindow_IsLegal_DoesNotMutate(t *testing.T) {
	recent := make([]Choice, 3, 8)
	copy(recent, []Choice{Local, Offload, Offload})
	before := slices.Clone(recent[:cap(recent)])

	DefaultWindow().IsLegal(recent, Local)

	if !slices.Equal(before, recent[:cap(recent)]) {
		t.Error("IsLegal mutated the caller's backing array")
	}
}

func TestWindow_Feasible(t *testing.T) {
	w := DefaultWindow()

	tests := []struct {
		name   string
		recent []Choice
		want   []Choice
	}{
		{"empty", nil, []Choice{Local, Offload}},
		{"local capped", []Choice{Local, Local, Offload}, []Choice{Offload}},
		{"offload capped", []Choice{Offload, Offload, Offload}, []Choice{Local}},
		{"both open", []Choice{Local, Offload, Offload}, []Choice{Local, Offload}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Feasible(tt.recent); !slices.Equal(got, tt.want) {
				t.Errorf("Feasible(%v) = %v, want %v", tt.recent, got, tt.want)
			}
		})
	}
}

func TestWindow_TightCapsEmptySet(t *testing.T) {
	w := Window{MaxLocal: 1, MaxOffload: 2}
	if got := w.Feasible([]Choice{Local, Offload, Offload}); len(got) != 0 {
		t.Errorf("expected no feasible choice, got %v", got)
	}
}
