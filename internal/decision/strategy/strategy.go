package strategy

import (
	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/task"
)

// Policy defines the interface for placement policies.
type Policy interface {
	// Name returns the policy name.
	Name() string

	// Decide picks a placement for t and advances the policy's history.
	Decide(t task.Task) (decision.Result, error)

	// Reset clears the history so a new episode can start.
	Reset()
}

// PolicyType represents the type of placement policy.
type PolicyType string

const (
	PolicyTypeHeuristic PolicyType = "heuristic"
	PolicyTypeRandom    PolicyType = "random"
)

// IsValid checks if the policy type is valid.
func (p PolicyType) IsValid() bool {
	switch p {
	case PolicyTypeHeuristic, PolicyTypeRandom:
		return true
	}
	return false
}

// String returns string representation.
func (p PolicyType) String() string {
	return string(p)
}
