package strategy

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/task"
)

func newTestRandom(window decision.Window, seed uint64) *RandomPolicy {
	rng := rand.New(rand.NewPCG(seed, 0))
	return NewRandomPolicy(decision.NewCostModel(0.5), window, rng)
}

func TestRandomPolicy_Name(t *testing.T) {
	p := newTestRandom(decision.DefaultWindow(), 1)
	if p.Name() != "random" {
		t.Errorf("expected name 'random', got '%s'", p.Name())
	}
}

func TestRandomPolicy_UsesTrueCost(t *testing.T) {
	p := newTestRandom(decision.DefaultWindow(), 1)
	tk := task.Task{LocalTime: 5, LocalEnergy: 6, CommTime: 1, EdgeTime: 1, CommEnergy: 1}

	for range 20 {
		result, err := p.Decide(tk)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		switch result.Choice {
		case decision.Local:
			if result.Cost != 5.5 {
				t.Errorf("expected local cost 5.5, got %f", result.Cost)
			}
		case decision.Offload:
			if result.Cost != 1.5 {
				t.Errorf("expected offload cost 1.5, got %f", result.Cost)
			}
		default:
			t.Errorf("unexpected choice %s", result.Choice)
		}
	}
}

func TestRandomPolicy_SingleFeasible(t *testing.T) {
	p := newTestRandom(decision.DefaultWindow(), 3)
	for range 10 {
		p.history = append(p.history[:0], decision.Offload, decision.Local, decision.Local)
		result, _ := p.Decide(task.Task{})
		if result.Choice != decision.Offload {
			t.Fatalf("expected forced offload, got %s", result.Choice)
		}
	}
}

func TestRandomPolicy_EmptyFeasibleFallsBackToLocal(t *testing.T) {
	p := newTestRandom(decision.Window{MaxLocal: 1, MaxOffload: 2}, 1)
	p.history = []decision.Choice{decision.Local, decision.Offload, decision.Offload}

	tk := task.Task{LocalTime: 5, LocalEnergy: 6, CommTime: 1, EdgeTime: 1, CommEnergy: 1}
	result, err := p.Decide(tk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Choice != decision.Local {
		t.Errorf("expected local fallback, got %s", result.Choice)
	}
	if result.Cost != 0 {
		t.Errorf("expected zero cost, got %f", result.Cost)
	}
	if !result.Degenerate {
		t.Error("expected degenerate step")
	}
	if p.history[len(p.history)-1] != decision.Local {
		t.Error("expected fallback recorded in history")
	}
}

func TestRandomPolicy_Reproducible(t *testing.T) {
	tasks := task.Catalog()
	runner := decision.NewRunner(nil)

	ep1, err := runner.Run(newTestRandom(decision.DefaultWindow(), 99), tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ep2, err := runner.Run(newTestRandom(decision.DefaultWindow(), 99), tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(ep1.Choices, ep2.Choices) {
		t.Error("expected identical choices for identical seeds")
	}
	if ep1.TotalCost != ep2.TotalCost {
		t.Errorf("expected identical total cost, got %f and %f", ep1.TotalCost, ep2.TotalCost)
	}
}

func TestRandomPolicy_ExploresBothChoices(t *testing.T) {
	p := newTestRandom(decision.DefaultWindow(), 5)
	tasks := make([]task.Task, 200)

	ep, err := decision.NewRunner(nil).Run(p, tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.Count(decision.Local) == 0 || ep.Count(decision.Offload) == 0 {
		t.Errorf("expected both placements over 200 steps, got %d local %d offload",
			ep.Count(decision.Local), ep.Count(decision.Offload))
	}
}

func TestRandomPolicy_Reset(t *testing.T) {
	p := newTestRandom(decision.DefaultWindow(), 1)
	_, _ = p.Decide(task.Task{})
	p.Reset()
	if len(p.history) != 0 {
		t.Errorf("expected empty history after reset, got %v", p.history)
	}
}
