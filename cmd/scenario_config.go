package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioConfig describes a YAML scenario file: which scenario to run
// and optional overrides for board extent, step count, seed, Wolfram
// code, and explicit seed-cell coordinates. Coordinates are (row,
// column) pairs in the 2-D case and one-element rows in the 1-D case.
type ScenarioConfig struct {
	Sim   string  `yaml:"sim"`
	Size  int     `yaml:"size"`
	Steps int     `yaml:"steps"`
	Seed  int64   `yaml:"seed"`
	Rule  *int    `yaml:"rule"`
	Cells [][]int `yaml:"cells"`
}

// LoadScenarioConfig reads and validates a scenario file.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario config: %w", err)
	}
	var sc ScenarioConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario config: %w", err)
	}
	if sc.Size < 0 {
		return nil, fmt.Errorf("scenario config: size %d must not be negative", sc.Size)
	}
	if sc.Rule != nil && (*sc.Rule < 0 || *sc.Rule > 255) {
		return nil, fmt.Errorf("scenario config: rule %d outside 0..255", *sc.Rule)
	}
	return &sc, nil
}
