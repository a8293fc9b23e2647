package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")

	input := []byte("value: ${TEST_VAR}")
	expected := []byte("value: test_value")

	result := substituteEnvVars(input)

	if string(result) != string(expected) {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestSubstituteEnvVarsMultiple(t *testing.T) {
	t.Setenv("VAR1", "value1")
	t.Setenv("VAR2", "value2")

	input := []byte("first: ${VAR1}\nsecond: ${VAR2}")
	expected := []byte("first: value1\nsecond: value2")

	result := substituteEnvVars(input)

	if string(result) != string(expected) {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestSubstituteEnvVarsNotSet(t *testing.T) {
	os.Unsetenv("NONEXISTENT_VAR")

	input := []byte("value: ${NONEXISTENT_VAR}")
	expected := []byte("value: ${NONEXISTENT_VAR}") // unchanged

	result := substituteEnvVars(input)

	if string(result) != string(expected) {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestSubstituteEnvVarsFallback(t *testing.T) {
	os.Unsetenv("NONEXISTENT_VAR")
	t.Setenv("SET_VAR", "set")

	tests := []struct {
		input    string
		expected string
	}{
		{"seed: ${NONEXISTENT_VAR:-42}", "seed: 42"},
		{"seed: ${NONEXISTENT_VAR:-}", "seed: "},
		{"seed: ${SET_VAR:-42}", "seed: set"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := string(substituteEnvVars([]byte(tt.input))); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSubstituteEnvVarsNoVars(t *testing.T) {
	input := []byte("value: plain_text")
	expected := []byte("value: plain_text")

	result := substituteEnvVars(input)

	if string(result) != string(expected) {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_ALPHA", "0.25")
	t.Setenv("TEST_SEED", "1234")

	content := `
cost:
  alpha: ${TEST_ALPHA}

scenario:
  seed: ${TEST_SEED}
  steps: ${TEST_STEPS:-60}
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Cost.Alpha != 0.25 {
		t.Errorf("expected alpha 0.25, got %f", cfg.Cost.Alpha)
	}
	if cfg.Scenario.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Scenario.Seed)
	}
	if cfg.Scenario.Steps != 60 {
		t.Errorf("expected fallback steps 60, got %d", cfg.Scenario.Steps)
	}
}
