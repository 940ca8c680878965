package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a deck of playing cards. Cards are dealt from the front of
// the slice; the deck only shrinks, it is never refilled mid-game.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck in canonical order (suit-major,
// rank-minor) with an explicit random source for shuffling.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	return d
}

// NewStacked creates a deck containing exactly the given cards in order, so
// deterministic deals can be played out in tests.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	return &Deck{
		cards: append([]Card(nil), cards...),
		rng:   rng,
	}
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck. The second return
// value is false if the deck is exhausted; with the fixed player and board
// counts that is a logic defect in the caller, not a recoverable condition.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals n cards from the deck. Returns false if fewer than n remain.
func (d *Deck) DealN(n int) ([]Card, bool) {
	if n > len(d.cards) {
		return nil, false
	}

	cards := make([]Card, n)
	for i := range cards {
		cards[i], _ = d.Deal()
	}
	return cards, true
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
