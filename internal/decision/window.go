package decision

// WindowSize is the span of the rate limits: the previous WindowSize-1
// choices plus the candidate.
const WindowSize = 4

// Default caps per window.
const (
	DefaultMaxLocal   = 2
	DefaultMaxOffload = 3
)

// Window enforces the two rate limits over the most recent choices.
type Window struct {
	MaxLocal   int
	MaxOffload int
}

// DefaultWindow returns the reference rate limits.
func DefaultWindow() Window {
	return Window{
		MaxLocal:   DefaultMaxLocal,
		MaxOffload: DefaultMaxOffload,
	}
}

// IsLegal reports whether candidate may follow recent (oldest first).
// Only the last WindowSize-1 entries of recent are considered and Undecided
// entries count toward neither cap, so a short history yields a laxer window.
func (w Window) IsLegal(recent []Choice, candidate Choice) bool {
	if !candidate.IsReal() {
		return false
	}

	if n := len(recent); n > WindowSize-1 {
		recent = recent[n-(WindowSize-1):]
	}

	local, offload := countChoices(recent)
	if candidate == Local {
		local++
	} else {
		offload++
	}

	if local > w.MaxLocal {
		return false
	}
	if offload > w.MaxOffload {
		return false
	}
	return true
}

func countChoices(choices []Choice) (local, offload int) {
	for _, c := range choices {
		switch c {
		case Local:
			local++
		case Offload:
			offload++
		}
	}
	return local, offload
}

// Feasible returns the legal next choices in the order Local, Offload.
func (w Window) Feasible(recent []Choice) []Choice {
	feasible := make([]Choice, 0, 2)
	if w.IsLegal(recent, Local) {
		feasible = append(feasible, Local)
	}
	if w.IsLegal(recent, Offload) {
		feasible = append(feasible, Offload)
	}
	return feasible
}
