package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/simulator"
	"github.com/lox/showdown/internal/statistics"
)

type CLI struct {
	Games   *int   `short:"g" placeholder:"N" help:"Number of games to simulate"`
	Players *int   `short:"p" placeholder:"N" help:"Seats dealt into every game (2-23)"`
	Workers *int   `short:"w" placeholder:"N" help:"Worker goroutines (0 for one per CPU)"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	Config  string `short:"c" type:"path" help:"HCL configuration file"`
	NoColor bool   `help:"Disable styled output"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

var (
	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Monte Carlo simulation of Texas Hold'em showdowns"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	cfg, err := buildConfig(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	if cli.NoColor || !*cfg.Output.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Progress and completion stats log at Info, so that is the floor.
	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting simulation",
		"games", cfg.Simulation.Games,
		"players", cfg.Simulation.Players,
		"workers", cfg.Simulation.Workers,
		"seed", seed)

	var progress time.Duration
	if *cfg.Output.Progress {
		progress = 5 * time.Second
	}

	sim := simulator.New(simulator.Config{
		Games:            cfg.Simulation.Games,
		Players:          cfg.Simulation.Players,
		Workers:          cfg.Simulation.Workers,
		Seed:             seed,
		ProgressInterval: progress,
		Logger:           logger,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	duration := time.Since(start)

	printResults(os.Stdout, stats)
	logger.Info("simulation complete",
		"games", stats.Games,
		"duration", duration.Truncate(time.Millisecond),
		"games_per_sec", fmt.Sprintf("%.0f", float64(stats.Games)/duration.Seconds()))

	ctx.Exit(0)
}

// buildConfig layers the optional HCL file under any explicitly set flags
func buildConfig(cli CLI) (*config.Config, error) {
	cfg := config.Default()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cli.Games != nil {
		cfg.Simulation.Games = *cli.Games
	}
	if cli.Players != nil {
		cfg.Simulation.Players = *cli.Players
	}
	if cli.Workers != nil {
		cfg.Simulation.Workers = *cli.Workers
	}
	if cli.Seed != nil {
		cfg.Simulation.Seed = *cli.Seed
	}

	return cfg, nil
}

// printResults writes the per-player win counts and the hand category
// frequency table, most common category first.
func printResults(w io.Writer, stats *statistics.Statistics) {
	for i, count := range stats.Wins {
		fmt.Fprintln(w, winStyle.Render(fmt.Sprintf("Player %d wins %d times", i+1, count)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Hand rank frequencies:"))

	for _, row := range stats.SortedCategories() {
		line := fmt.Sprintf("%s: %d times (%.4f%%)",
			row.Category, row.Count, stats.CategoryPercent(row.Category))
		fmt.Fprintln(w, categoryStyle.Render(line))
	}
}
