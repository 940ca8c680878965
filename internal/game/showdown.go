// Package game simulates a single Texas Hold'em showdown: every seat is
// dealt to the river with no betting, and the best hand takes the pot.
package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

const (
	holeCards  = 2
	boardCards = 5
)

// MaxPlayers is the largest seat count a 52-card deck can serve
// (2 hole cards each plus a 5-card board).
const MaxPlayers = (deck.Size - boardCards) / holeCards

// Player holds the two hole cards for one seat in a single showdown
type Player struct {
	Hole [holeCards]deck.Card
}

// Result is the outcome of one simulated showdown
type Result struct {
	// Winner is the seat index that takes the pot, after any tie break
	Winner int

	// Categories holds the best hand category each seat made, indexed by seat
	Categories []evaluator.Category
}

// Simulate deals and scores one full showdown for numPlayers seats using a
// fresh shuffled deck. The caller is responsible for validating numPlayers.
func Simulate(rng *rand.Rand, numPlayers int) (Result, error) {
	d := deck.New(rng)
	d.Shuffle()
	return showdown(d, rng, numPlayers)
}

// showdown plays out a single deal from the supplied deck. Split out from
// Simulate so tests can inject a deterministic deck.
func showdown(d *deck.Deck, rng *rand.Rand, numPlayers int) (Result, error) {
	players := make([]Player, numPlayers)
	for i := range players {
		for j := 0; j < holeCards; j++ {
			card, ok := d.Deal()
			if !ok {
				return Result{}, fmt.Errorf("deck exhausted dealing hole cards to seat %d", i)
			}
			players[i].Hole[j] = card
		}
	}

	// Shuffle seating after the hole cards go out so the winner index is
	// uniform over deal order. Seat identity for win counting is the
	// post-shuffle index.
	rng.Shuffle(len(players), func(a, b int) {
		players[a], players[b] = players[b], players[a]
	})

	board := make([]deck.Card, 0, boardCards)
	for i := 0; i < boardCards; i++ {
		card, ok := d.Deal()
		if !ok {
			return Result{}, fmt.Errorf("deck exhausted dealing the board")
		}
		board = append(board, card)
	}

	result := Result{
		Winner:     -1,
		Categories: make([]evaluator.Category, numPlayers),
	}

	var best evaluator.HandRank
	var tied []int

	cards := make([]deck.Card, holeCards+boardCards)
	copy(cards[holeCards:], board)

	for i, player := range players {
		copy(cards[:holeCards], player.Hole[:])
		rank := evaluator.EvaluateSeven(cards)
		result.Categories[i] = rank.Category

		switch {
		case len(tied) == 0 || rank.Compare(best) > 0:
			best = rank
			tied = tied[:0]
			tied = append(tied, i)
		case rank.Compare(best) == 0:
			tied = append(tied, i)
		}
	}

	if len(tied) == 0 {
		return Result{}, fmt.Errorf("no winner among %d seats", numPlayers)
	}

	// Ties split uniformly, never deterministically toward seat 0
	result.Winner = tied[rng.IntN(len(tied))]
	return result, nil
}
