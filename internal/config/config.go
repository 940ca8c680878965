// Package config loads run configuration from an HCL file. Every setting is
// optional; missing values fall back to the defaults, and CLI flags override
// whatever the file provides.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete run configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// SimulationSettings contains trial-driver settings
type SimulationSettings struct {
	Games   int   `hcl:"games,optional"`
	Players int   `hcl:"players,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// OutputSettings contains report settings. Pointer fields distinguish an
// explicit false in the file from an absent value, so defaults backfill
// per-value rather than per-block.
type OutputSettings struct {
	Color    *bool `hcl:"color,optional"`
	Progress *bool `hcl:"progress,optional"`
}

// Default returns the default configuration: one million games of six-handed
// showdowns across all CPUs, with a time-derived seed.
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Games:   1_000_000,
			Players: 6,
			Workers: 0,
			Seed:    0,
		},
		Output: &OutputSettings{
			Color:    boolPtr(true),
			Progress: boolPtr(true),
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present file has defaults applied for any missing values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	defaults := Default()
	if config.Simulation == nil {
		config.Simulation = defaults.Simulation
	} else {
		if config.Simulation.Games == 0 {
			config.Simulation.Games = defaults.Simulation.Games
		}
		if config.Simulation.Players == 0 {
			config.Simulation.Players = defaults.Simulation.Players
		}
	}
	if config.Output == nil {
		config.Output = defaults.Output
	} else {
		if config.Output.Color == nil {
			config.Output.Color = defaults.Output.Color
		}
		if config.Output.Progress == nil {
			config.Output.Progress = defaults.Output.Progress
		}
	}

	return &config, nil
}
