// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/vidcheck/pkg/orchestrator"
)

// Config represents the full configuration for vidcheck.
type Config struct {
	// Input/Output
	InputPath   string `yaml:"input"`
	SummaryPath string `yaml:"summary"`
	BadgePath   string `yaml:"badge"`

	// Decision policy
	Threshold float64 `yaml:"threshold"`

	// Stage weights; progress shares are proportional to these.
	Weights WeightsConfig `yaml:"weights"`

	// Output format for the summary: "text" or "markdown".
	SummaryFormat string `yaml:"summary_format"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
}

// WeightsConfig holds the relative weight of each analysis stage.
type WeightsConfig struct {
	Probe    float64 `yaml:"probe"`
	Signal   float64 `yaml:"signal"`
	Temporal float64 `yaml:"temporal"`
	Classify float64 `yaml:"classify"`
}

// Defaults returns a Config with default values. The probe stage is
// quick relative to the sample scans, which the weights reflect.
func Defaults() Config {
	return Config{
		Threshold:     0.5,
		SummaryFormat: "text",
		LogLevel:      "info",
		Weights: WeightsConfig{
			Probe:    1,
			Signal:   3,
			Temporal: 3,
			Classify: 1,
		},
	}
}

// LoadFromFile loads configuration from a YAML file, overlaying the
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline would
// reject later anyway, so misconfiguration surfaces before any work.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be in [0,1], got %g", c.Threshold)
	}
	for name, w := range map[string]float64{
		"probe":    c.Weights.Probe,
		"signal":   c.Weights.Signal,
		"temporal": c.Weights.Temporal,
		"classify": c.Weights.Classify,
	} {
		if w <= 0 {
			return fmt.Errorf("weight for stage %q must be positive, got %g", name, w)
		}
	}
	switch c.SummaryFormat {
	case "text", "markdown", "md":
	default:
		return fmt.Errorf("unknown summary format %q", c.SummaryFormat)
	}
	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		InputPath:   c.InputPath,
		SummaryPath: c.SummaryPath,
		BadgePath:   c.BadgePath,

		Threshold: c.Threshold,

		ProbeWeight:    c.Weights.Probe,
		SignalWeight:   c.Weights.Signal,
		TemporalWeight: c.Weights.Temporal,
		ClassifyWeight: c.Weights.Classify,

		SummaryFormat: c.SummaryFormat,
	}
}
