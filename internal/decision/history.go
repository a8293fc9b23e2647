package decision

import "strings"

// HistorySize is the number of slots kept by History.
const HistorySize = 4

// History holds the last HistorySize choices, oldest first.
// The zero value is four Undecided slots.
type History [HistorySize]Choice

// Push drops the oldest entry and appends c.
func (h *History) Push(c Choice) {
	copy(h[:], h[1:])
	h[HistorySize-1] = c
}

// Recent returns the slots that feed the feasibility window.
func (h History) Recent() []Choice {
	out := make([]Choice, WindowSize-1)
	copy(out, h[HistorySize-(WindowSize-1):])
	return out
}

// HasUndecided reports whether any slot is still Undecided.
func (h History) HasUndecided() bool {
	for _, c := range h {
		if c == Undecided {
			return true
		}
	}
	return false
}

func (h History) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
