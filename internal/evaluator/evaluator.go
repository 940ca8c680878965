// Package evaluator ranks poker hands. It evaluates the best five-card hand
// from a seven-card holding and produces a totally-ordered HandRank value.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/showdown/internal/deck"
)

// Category enumerates the poker hand categories ordered from weakest to strongest
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the category label used in frequency reports
func (c Category) String() string {
	switch c {
	case HighCard:
		return "HighCard"
	case OnePair:
		return "OnePair"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	case RoyalFlush:
		return "RoyalFlush"
	default:
		return "Unknown"
	}
}

// Categories lists every category from weakest to strongest
var Categories = []Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// HandRank is the totally-ordered strength of a five-card hand. Comparison is
// by category first, then by the carried tie-break ranks. The carried ranks
// are deliberately not exhaustive: OnePair carries only the pair rank, never
// kickers, so two pairs of the same rank compare equal regardless of the
// remaining cards. Hands that compare equal here split under the tie rules in
// the game package.
type HandRank struct {
	Category Category

	// High is the deciding rank within the category: the pair rank for
	// OnePair, the triple rank for FullHouse, the top card for straights and
	// flushes. Unused (zero) for RoyalFlush.
	High deck.Rank

	// Low is the secondary rank where one exists: the lower pair for TwoPair,
	// the pair rank for FullHouse. Zero otherwise.
	Low deck.Rank
}

// Compare returns 1 if hr beats other, -1 if other beats hr, 0 on a tie
func (hr HandRank) Compare(other HandRank) int {
	if hr.Category != other.Category {
		if hr.Category > other.Category {
			return 1
		}
		return -1
	}
	if hr.High != other.High {
		if hr.High > other.High {
			return 1
		}
		return -1
	}
	if hr.Low != other.Low {
		if hr.Low > other.Low {
			return 1
		}
		return -1
	}
	return 0
}

// String returns a description like "FullHouse (K over 7)"
func (hr HandRank) String() string {
	switch hr.Category {
	case RoyalFlush:
		return hr.Category.String()
	case TwoPair:
		return fmt.Sprintf("%s (%s and %s)", hr.Category, hr.High, hr.Low)
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", hr.Category, hr.High, hr.Low)
	default:
		return fmt.Sprintf("%s (%s)", hr.Category, hr.High)
	}
}

// EvaluateFive ranks exactly five cards. The result does not depend on the
// order of the input.
func EvaluateFive(cards []deck.Card) HandRank {
	if len(cards) != 5 {
		panic(fmt.Sprintf("evaluator: EvaluateFive needs 5 cards, got %d", len(cards)))
	}

	ranks := make([]deck.Rank, 5)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straight, straightHigh := isSequence(ranks)

	if flush && straight {
		// A straight flush holding both Ace and King can only be T-J-Q-K-A
		if ranks[0] == deck.Ace && ranks[1] == deck.King {
			return HandRank{Category: RoyalFlush}
		}
		return HandRank{Category: StraightFlush, High: straightHigh}
	}

	counts := make(map[deck.Rank]int, 5)
	for _, r := range ranks {
		counts[r]++
	}

	var quad, triple deck.Rank
	var pairs []deck.Rank
	for r, n := range counts {
		switch n {
		case 4:
			quad = r
		case 3:
			triple = r
		case 2:
			pairs = append(pairs, r)
		}
	}
	// Map iteration order is unspecified, so pin the pair order: higher pair first
	sort.Slice(pairs, func(i, j int) bool { return pairs[i] > pairs[j] })

	switch {
	case quad != 0:
		return HandRank{Category: FourOfAKind, High: quad}
	case triple != 0 && len(pairs) == 1:
		return HandRank{Category: FullHouse, High: triple, Low: pairs[0]}
	case flush:
		return HandRank{Category: Flush, High: ranks[0]}
	case straight:
		return HandRank{Category: Straight, High: straightHigh}
	case triple != 0:
		return HandRank{Category: ThreeOfAKind, High: triple}
	case len(pairs) == 2:
		return HandRank{Category: TwoPair, High: pairs[0], Low: pairs[1]}
	case len(pairs) == 1:
		return HandRank{Category: OnePair, High: pairs[0]}
	default:
		return HandRank{Category: HighCard, High: ranks[0]}
	}
}

// EvaluateSeven ranks the best five-card hand out of seven cards by
// enumerating all 21 five-card combinations.
func EvaluateSeven(cards []deck.Card) HandRank {
	if len(cards) != 7 {
		panic(fmt.Sprintf("evaluator: EvaluateSeven needs 7 cards, got %d", len(cards)))
	}

	var best HandRank
	first := true
	hand := make([]deck.Card, 5)

	combinations(7, 5, func(idx []int) {
		for i, j := range idx {
			hand[i] = cards[j]
		}
		rank := EvaluateFive(hand)
		if first || rank.Compare(best) > 0 {
			best = rank
			first = false
		}
	})

	return best
}

// isSequence reports whether five ranks form a straight, and the high rank of
// the straight. Duplicated ranks can never form a straight. The wheel
// (A-2-3-4-5) counts as a five-high straight, not an ace-high one.
func isSequence(ranks []deck.Rank) (bool, deck.Rank) {
	seen := make(map[deck.Rank]bool, 5)
	distinct := make([]int, 0, 5)
	for _, r := range ranks {
		if !seen[r] {
			seen[r] = true
			distinct = append(distinct, int(r))
		}
	}
	if len(distinct) != 5 {
		return false, 0
	}

	sort.Ints(distinct)

	if distinct[4]-distinct[0] == 4 {
		return true, deck.Rank(distinct[4])
	}

	// The wheel: Ace plays low below the two
	if distinct[0] == 2 && distinct[1] == 3 && distinct[2] == 4 &&
		distinct[3] == 5 && distinct[4] == int(deck.Ace) {
		return true, deck.Five
	}

	return false, 0
}
