package decision

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/haskel/offloadsim/internal/task"
)

// scriptedPolicy replays a fixed list of results.
type scriptedPolicy struct {
	results []Result
	errAt   int
	next    int
	resets  int
}

func (p *scriptedPolicy) Name() string { return "scripted" }

func (p *scriptedPolicy) Reset() {
	p.next = 0
	p.resets++
}

func (p *scriptedPolicy) Decide(task.Task) (Result, error) {
	if p.errAt >= 0 && p.next == p.errAt {
		return Result{}, ErrUndefinedPattern
	}
	r := p.results[p.next]
	p.next++
	return r, nil
}

func testTasks(n int) []task.Task {
	return make([]task.Task, n)
}

func TestRunner_Run(t *testing.T) {
	p := &scriptedPolicy{
		errAt: -1,
		results: []Result{
			{Choice: Offload, Cost: 1.5},
			{Choice: Local, Cost: 2.0},
			{Choice: Undecided, Degenerate: true},
		},
	}

	ep, err := NewRunner(nil).Run(p, testTasks(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.resets != 1 {
		t.Errorf("expected policy reset once, got %d", p.resets)
	}
	if ep.Policy != "scripted" {
		t.Errorf("expected policy name 'scripted', got '%s'", ep.Policy)
	}
	if len(ep.Choices) != 3 {
		t.Fatalf("expected 3 choices, got %d", len(ep.Choices))
	}
	if ep.TotalCost != 3.5 {
		t.Errorf("expected total cost 3.5, got %f", ep.TotalCost)
	}
	if ep.DegenerateSteps != 1 {
		t.Errorf("expected 1 degenerate step, got %d", ep.DegenerateSteps)
	}
	if ep.Count(Undecided) != 1 || ep.Count(Local) != 1 || ep.Count(Offload) != 1 {
		t.Errorf("unexpected choice counts: %v", ep.Choices)
	}
}

func TestRunner_Run_LogsDegenerateSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	p := &scriptedPolicy{
		errAt:   -1,
		results: []Result{{Choice: Undecided, Degenerate: true}},
	}

	if _, err := NewRunner(logger).Run(p, testTasks(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "no legal choice") || !strings.Contains(out, "step=0") {
		t.Errorf("expected degenerate step warning, got %q", out)
	}
}

func TestRunner_Run_StopsOnError(t *testing.T) {
	p := &scriptedPolicy{
		errAt:   1,
		results: []Result{{Choice: Local, Cost: 1}},
	}

	ep, err := NewRunner(nil).Run(p, testTasks(5))
	if err == nil {
		t.Fatal("expected error")
	}
	if ep != nil {
		t.Error("expected nil episode on error")
	}
	if !errors.Is(err, ErrUndefinedPattern) {
		t.Errorf("expected ErrUndefinedPattern, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 1") {
		t.Errorf("expected step index in error, got %v", err)
	}
}

func TestRunner_Run_Empty(t *testing.T) {
	p := &scriptedPolicy{errAt: -1}
	ep, err := NewRunner(nil).Run(p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ep.Choices) != 0 || ep.TotalCost != 0 {
		t.Errorf("expected empty episode, got %+v", ep)
	}
}
