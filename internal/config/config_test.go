package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showdown.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
simulation {
  games   = 50000
  players = 9
  workers = 4
  seed    = 12345
}

output {
  color    = false
  progress = false
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50000, cfg.Simulation.Games)
	assert.Equal(t, 9, cfg.Simulation.Players)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.EqualValues(t, 12345, cfg.Simulation.Seed)
	assert.False(t, *cfg.Output.Color)
	assert.False(t, *cfg.Output.Progress)
}

func TestLoadPartialOutputBlock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output {
  progress = false
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, *cfg.Output.Progress)
	assert.True(t, *cfg.Output.Color)
	assert.Equal(t, Default().Simulation, cfg.Simulation)
}

func TestLoadAppliesDefaultsForMissingValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
simulation {
  players = 4
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Simulation.Games, cfg.Simulation.Games)
	assert.Equal(t, 4, cfg.Simulation.Players)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestLoadInvalidHCL(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `simulation { games = `)
	_, err := Load(path)
	assert.Error(t, err)
}
