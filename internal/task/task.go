package task

import (
	"errors"
	"fmt"
	"math"
)

// Task holds the exogenous cost parameters of a single compute task.
// Values are fixed once a task is created.
type Task struct {
	LocalTime   float64 `json:"t_local" yaml:"t_local"`
	LocalEnergy float64 `json:"e_local" yaml:"e_local"`
	CommTime    float64 `json:"t_comm" yaml:"t_comm"`
	EdgeTime    float64 `json:"t_edge" yaml:"t_edge"`
	CommEnergy  float64 `json:"e_comm" yaml:"e_comm"`
}

// OffloadTime returns the end-to-end delay when the task runs on the edge server.
func (t Task) OffloadTime() float64 {
	return t.CommTime + t.EdgeTime
}

// Validate rejects negative or non-finite fields.
func (t Task) Validate() error {
	var errs []error

	fields := []struct {
		name  string
		value float64
	}{
		{"t_local", t.LocalTime},
		{"e_local", t.LocalEnergy},
		{"t_comm", t.CommTime},
		{"t_edge", t.EdgeTime},
		{"e_comm", t.CommEnergy},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", f.name, f.value))
			continue
		}
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%s must be non-negative, got %v", f.name, f.value))
		}
	}

	return errors.Join(errs...)
}
