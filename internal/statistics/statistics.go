// Package statistics accumulates per-seat win counts and hand-category
// frequencies across simulated showdowns.
package statistics

import (
	"fmt"
	"sort"

	"github.com/lox/showdown/internal/evaluator"
)

// Statistics aggregates results across trials. Instances are not safe for
// concurrent use; workers keep a local aggregate and Merge into a shared one
// under the caller's lock.
type Statistics struct {
	// Games is the number of trials recorded
	Games uint64

	// Players is the fixed seat count every trial uses
	Players int

	// Wins counts trials won per seat index
	Wins []uint64

	// Categories counts every hand observed, over all seats in all trials
	Categories map[evaluator.Category]uint64
}

// New creates an empty aggregate for a fixed number of players
func New(players int) *Statistics {
	return &Statistics{
		Players:    players,
		Wins:       make([]uint64, players),
		Categories: make(map[evaluator.Category]uint64, len(evaluator.Categories)),
	}
}

// Add records one trial: the winning seat and the category every seat made
func (s *Statistics) Add(winner int, categories []evaluator.Category) {
	s.Games++
	s.Wins[winner]++
	for _, c := range categories {
		s.Categories[c]++
	}
}

// Merge folds another aggregate with the same player count into this one
func (s *Statistics) Merge(other *Statistics) error {
	if other.Players != s.Players {
		return fmt.Errorf("cannot merge statistics for %d players into %d", other.Players, s.Players)
	}

	s.Games += other.Games
	for i, w := range other.Wins {
		s.Wins[i] += w
	}
	for c, n := range other.Categories {
		s.Categories[c] += n
	}
	return nil
}

// TotalHands returns the number of hands observed: one per seat per trial
func (s *Statistics) TotalHands() uint64 {
	return s.Games * uint64(s.Players)
}

// CategoryPercent returns the share of all observed hands in the category
func (s *Statistics) CategoryPercent(c evaluator.Category) float64 {
	total := s.TotalHands()
	if total == 0 {
		return 0
	}
	return float64(s.Categories[c]) / float64(total) * 100
}

// CategoryCount is one row of the frequency report
type CategoryCount struct {
	Category evaluator.Category
	Count    uint64
}

// SortedCategories returns observed categories by descending count, with ties
// broken by the stronger category so the order is deterministic
func (s *Statistics) SortedCategories() []CategoryCount {
	rows := make([]CategoryCount, 0, len(s.Categories))
	for c, n := range s.Categories {
		rows = append(rows, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category > rows[j].Category
	})
	return rows
}

// Validate checks the aggregate's internal invariants: one win per trial and
// one category observation per seat per trial
func (s *Statistics) Validate() error {
	var wins uint64
	for _, w := range s.Wins {
		wins += w
	}
	if wins != s.Games {
		return fmt.Errorf("win counts sum to %d, expected %d games", wins, s.Games)
	}

	var hands uint64
	for _, n := range s.Categories {
		hands += n
	}
	if hands != s.TotalHands() {
		return fmt.Errorf("category counts sum to %d, expected %d hands", hands, s.TotalHands())
	}

	return nil
}
