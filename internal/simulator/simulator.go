// Package simulator drives Monte Carlo showdown trials and aggregates the
// results. Trials are embarrassingly parallel: each worker simulates a batch
// with its own RNG and local statistics, and merges once at the end.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/game"
	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/statistics"
)

// cancellationCheckInterval is how many trials a worker runs between context
// checks. Trials are microseconds each, so checking every one would cost more
// than it saves.
const cancellationCheckInterval = 4096

// Config holds configuration for a simulation run
type Config struct {
	// Games is the number of independent trials to run
	Games int

	// Players is the number of seats dealt into every trial
	Players int

	// Workers is the number of goroutines simulating trials; 0 means one
	// per CPU. Workers only share state at the final merge.
	Workers int

	// Seed makes the run reproducible. Worker generators are derived from
	// it so each worker shuffles an independent stream.
	Seed int64

	// ProgressInterval is how often progress is logged; 0 disables it
	ProgressInterval time.Duration

	// Logger receives progress updates; nil disables them
	Logger *log.Logger

	// Clock drives progress ticks; nil uses the real clock
	Clock quartz.Clock
}

// Validate rejects configurations before any simulation starts
func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	if c.Players < 2 {
		return fmt.Errorf("players must be at least 2, got %d", c.Players)
	}
	if c.Players > game.MaxPlayers {
		return fmt.Errorf("players must be at most %d so hole cards and the board fit a 52-card deck, got %d",
			game.MaxPlayers, c.Players)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Simulator runs showdown simulations
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the configured number of trials and returns the merged
// aggregate. Results are deterministic for a fixed seed and worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Games {
		workers = cfg.Games
	}

	var completed atomic.Uint64
	stopProgress := s.startProgress(ctx, &completed)
	defer stopProgress()

	global := statistics.New(cfg.Players)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)

	perWorker := cfg.Games / workers
	remainder := cfg.Games % workers

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		rng := randutil.Derive(cfg.Seed, w)

		g.Go(func() error {
			local := statistics.New(cfg.Players)

			for i := 0; i < trials; i++ {
				if i%cancellationCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}

				result, err := game.Simulate(rng, cfg.Players)
				if err != nil {
					return fmt.Errorf("trial failed: %w", err)
				}
				local.Add(result.Winner, result.Categories)
				completed.Add(1)
			}

			mu.Lock()
			defer mu.Unlock()
			return global.Merge(local)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if global.Games != uint64(cfg.Games) {
		return nil, fmt.Errorf("completed %d of %d trials", global.Games, cfg.Games)
	}
	if err := global.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return global, nil
}

// startProgress logs completed-trial counts on the configured interval and
// returns a function that stops the ticker.
func (s *Simulator) startProgress(ctx context.Context, completed *atomic.Uint64) func() {
	if s.config.ProgressInterval <= 0 || s.config.Logger == nil {
		return func() {}
	}

	clock := s.config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	tickerCtx, cancel := context.WithCancel(ctx)
	start := time.Now()

	waiter := clock.TickerFunc(tickerCtx, s.config.ProgressInterval, func() error {
		done := completed.Load()
		elapsed := time.Since(start).Seconds()
		rate := 0.0
		if elapsed > 0 {
			rate = float64(done) / elapsed
		}
		s.config.Logger.Info("simulation progress",
			"games", done,
			"total", s.config.Games,
			"percent", fmt.Sprintf("%.1f", float64(done)*100/float64(s.config.Games)),
			"games_per_sec", fmt.Sprintf("%.0f", rate),
		)
		return nil
	}, "progress")

	return func() {
		cancel()
		_ = waiter.Wait()
	}
}
