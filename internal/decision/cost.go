package decision

import "github.com/haskel/offloadsim/internal/task"

// DefaultAlpha weights delay and energy equally.
const DefaultAlpha = 0.5

// CostModel blends delay and energy into a scalar cost:
// cost = Alpha*delay + (1-Alpha)*energy.
type CostModel struct {
	Alpha float64
}

// NewCostModel creates a cost model with the given delay weight.
func NewCostModel(alpha float64) CostModel {
	return CostModel{Alpha: alpha}
}

// Blend combines a delay and an energy value.
func (m CostModel) Blend(delay, energy float64) float64 {
	return m.Alpha*delay + (1-m.Alpha)*energy
}

// Local returns the cost of running t on the device.
func (m CostModel) Local(t task.Task) float64 {
	return m.Blend(t.LocalTime, t.LocalEnergy)
}

// Offload returns the cost of running t on the edge server.
func (m CostModel) Offload(t task.Task) float64 {
	return m.Blend(t.OffloadTime(), t.CommEnergy)
}

// Of returns the cost of placing t according to c. Undecided costs nothing.
func (m CostModel) Of(t task.Task, c Choice) float64 {
	delay, energy := Outcome(t, c)
	return m.Blend(delay, energy)
}

// Outcome returns the delay and energy incurred by placing t according to c.
func Outcome(t task.Task, c Choice) (delay, energy float64) {
	switch c {
	case Local:
		return t.LocalTime, t.LocalEnergy
	case Offload:
		return t.OffloadTime(), t.CommEnergy
	}
	return 0, 0
}
