package deck

import (
	rand "math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestNewDeckContainsAll52Cards(t *testing.T) {
	t.Parallel()
	d := New(testRNG(1))

	if d.CardsRemaining() != Size {
		t.Fatalf("expected %d cards, got %d", Size, d.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		if seen[card] {
			t.Errorf("duplicate card %v", card)
		}
		seen[card] = true
	}

	if len(seen) != Size {
		t.Errorf("expected %d distinct cards, got %d", Size, len(seen))
	}
}

func TestNewDeckCanonicalOrder(t *testing.T) {
	t.Parallel()
	d := New(testRNG(1))

	// Suit-major, rank-minor: first card is the two of spades, fourteenth is
	// the two of hearts.
	first, _ := d.Deal()
	if first != NewCard(Spades, Two) {
		t.Errorf("first card = %v, want 2♠", first)
	}
	for i := 0; i < 11; i++ {
		d.Deal()
	}
	thirteenth, _ := d.Deal()
	if thirteenth != NewCard(Spades, Ace) {
		t.Errorf("thirteenth card = %v, want A♠", thirteenth)
	}
	fourteenth, _ := d.Deal()
	if fourteenth != NewCard(Hearts, Two) {
		t.Errorf("fourteenth card = %v, want 2♥", fourteenth)
	}
}

func TestShufflePreservesCards(t *testing.T) {
	t.Parallel()
	d := New(testRNG(42))
	d.Shuffle()

	seen := make(map[Card]bool)
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		if seen[card] {
			t.Errorf("duplicate card after shuffle: %v", card)
		}
		seen[card] = true
	}

	if len(seen) != Size {
		t.Errorf("expected %d distinct cards after shuffle, got %d", Size, len(seen))
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	t.Parallel()
	canonical := New(testRNG(7))
	shuffled := New(testRNG(7))
	shuffled.Shuffle()

	same := true
	for {
		a, ok := canonical.Deal()
		if !ok {
			break
		}
		b, _ := shuffled.Deal()
		if a != b {
			same = false
		}
	}

	if same {
		t.Error("shuffle left the deck in canonical order")
	}
}

func TestDealRemovesCards(t *testing.T) {
	t.Parallel()
	d := New(testRNG(3))
	d.Shuffle()

	dealt := make(map[Card]bool)
	for i := 0; i < 17; i++ {
		card, ok := d.Deal()
		if !ok {
			t.Fatalf("deal %d failed with cards remaining", i)
		}
		dealt[card] = true
	}

	if d.CardsRemaining() != Size-17 {
		t.Errorf("expected %d remaining, got %d", Size-17, d.CardsRemaining())
	}

	// The remaining cards are exactly the ones not dealt
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		if dealt[card] {
			t.Errorf("dealt card %v still in deck", card)
		}
	}
}

func TestDealExhausted(t *testing.T) {
	t.Parallel()
	d := New(testRNG(5))

	if _, ok := d.DealN(Size); !ok {
		t.Fatal("dealing the full deck should succeed")
	}
	if _, ok := d.Deal(); ok {
		t.Error("dealing from an empty deck should report exhaustion")
	}
	if _, ok := d.DealN(1); ok {
		t.Error("DealN from an empty deck should report exhaustion")
	}
}

func TestDealN(t *testing.T) {
	t.Parallel()
	d := New(testRNG(9))
	d.Shuffle()

	cards, ok := d.DealN(5)
	if !ok {
		t.Fatal("DealN(5) failed on a full deck")
	}
	if len(cards) != 5 {
		t.Fatalf("DealN(5) returned %d cards", len(cards))
	}
	if d.CardsRemaining() != Size-5 {
		t.Errorf("expected %d remaining, got %d", Size-5, d.CardsRemaining())
	}
}
