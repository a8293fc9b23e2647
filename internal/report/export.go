package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/haskel/offloadsim/internal/decision"
	"github.com/haskel/offloadsim/internal/simulation"
)

const exportVersion = 1

// Export is the JSON document consumed by external plotting tools.
type Export struct {
	Version     int                     `json:"version"`
	GeneratedAt time.Time               `json:"generated_at"`
	Alpha       float64                 `json:"alpha"`
	Seed        uint64                  `json:"seed"`
	Steps       int                     `json:"steps"`
	Templates   []int                   `json:"templates"`
	Policies    map[string]PolicyExport `json:"policies"`
}

// PolicyExport holds one policy's episode and cumulative series.
type PolicyExport struct {
	Choices         []decision.Choice `json:"choices"`
	TotalCost       float64           `json:"total_cost"`
	DegenerateSteps int               `json:"degenerate_steps"`
	CumDelay        []float64         `json:"cum_delay"`
	CumEnergy       []float64         `json:"cum_energy"`
	CumCost         []float64         `json:"cum_cost"`
}

// NewExport builds the export document for cmp.
func NewExport(cmp *simulation.Comparison, now time.Time) *Export {
	e := &Export{
		Version:     exportVersion,
		GeneratedAt: now.UTC(),
		Alpha:       cmp.Alpha,
		Seed:        cmp.Seed,
		Steps:       cmp.Scenario.Len(),
		Templates:   cmp.Scenario.Templates,
		Policies:    make(map[string]PolicyExport, 2),
	}

	for _, run := range cmp.Runs() {
		e.Policies[run.Episode.Policy] = PolicyExport{
			Choices:         run.Episode.Choices,
			TotalCost:       run.Episode.TotalCost,
			DegenerateSteps: run.Episode.DegenerateSteps,
			CumDelay:        run.Series.Delay,
			CumEnergy:       run.Series.Energy,
			CumCost:         run.Series.Cost,
		}
	}

	return e
}

// Encode writes e as indented JSON.
func (e *Export) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(e)
}

// WriteFile writes e to path through a temporary file and rename, so readers
// never see a partial document.
func (e *Export) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tempPath := path + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return err
	}

	if err := e.Encode(file); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}

	return nil
}
