package decision

import "errors"

// ErrUndefinedPattern is returned when the heuristic reaches a fully decided
// history pattern that has no bias entry. It indicates a defect in the
// feasibility caps or the bias table and must abort the run.
var ErrUndefinedPattern = errors.New("undefined history pattern")
