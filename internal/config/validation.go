package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/haskel/offloadsim/internal/decision"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Cost.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("cost: %w", err))
	}

	if err := c.Heuristic.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("heuristic: %w", err))
	}

	if err := c.Window.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("window: %w", err))
	}

	if err := c.Scenario.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scenario: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Output.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}

	return errors.Join(errs...)
}

func (c *CostConfig) Validate() error {
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be between 0 and 1, got %v", c.Alpha)
	}
	return nil
}

func (h *HeuristicConfig) Validate() error {
	if math.IsNaN(h.Beta) || math.IsInf(h.Beta, 0) || h.Beta < 0 {
		return fmt.Errorf("beta must be a non-negative finite number, got %v", h.Beta)
	}
	return nil
}

func (w *WindowConfig) Validate() error {
	var errs []error

	if w.MaxLocal < 0 || w.MaxLocal > decision.WindowSize {
		errs = append(errs, fmt.Errorf("max_local must be between 0 and %d", decision.WindowSize))
	}

	if w.MaxOffload < 0 || w.MaxOffload > decision.WindowSize {
		errs = append(errs, fmt.Errorf("max_offload must be between 0 and %d", decision.WindowSize))
	}

	return errors.Join(errs...)
}

func (s *ScenarioConfig) Validate() error {
	if s.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", s.Steps)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}

func (o *OutputConfig) Validate() error {
	if o.TableWidth < 1 {
		return fmt.Errorf("table_width must be at least 1, got %d", o.TableWidth)
	}
	return nil
}
