package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/evaluator"
	"github.com/lox/showdown/internal/statistics"
)

func TestPrintResultsFormat(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	stats := statistics.New(2)
	stats.Games = 10
	stats.Wins[0] = 6
	stats.Wins[1] = 4
	stats.Categories[evaluator.OnePair] = 12
	stats.Categories[evaluator.HighCard] = 7
	stats.Categories[evaluator.Flush] = 1
	require.NoError(t, stats.Validate())

	var buf bytes.Buffer
	printResults(&buf, stats)

	expected := "Player 1 wins 6 times\n" +
		"Player 2 wins 4 times\n" +
		"\n" +
		"Hand rank frequencies:\n" +
		"OnePair: 12 times (60.0000%)\n" +
		"HighCard: 7 times (35.0000%)\n" +
		"Flush: 1 times (5.0000%)\n"
	assert.Equal(t, expected, buf.String())
}

func TestBuildConfigFlagOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "showdown.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
simulation {
  games   = 1000
  players = 9
  seed    = 5
}
`), 0o644))

	games := 250
	cli := CLI{Config: path, Games: &games}
	cfg, err := buildConfig(cli)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Simulation.Games, "flag wins over config file")
	assert.Equal(t, 9, cfg.Simulation.Players, "file value survives when flag is unset")
	assert.EqualValues(t, 5, cfg.Simulation.Seed)
}

func TestBuildConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := buildConfig(CLI{})
	require.NoError(t, err)
	assert.Equal(t, 1_000_000, cfg.Simulation.Games)
	assert.Equal(t, 6, cfg.Simulation.Players)
	assert.True(t, *cfg.Output.Color)
	assert.True(t, *cfg.Output.Progress)
}
