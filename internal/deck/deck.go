package deck

import (
	"errors"
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
// A single game never draws enough cards to hit it, so callers treat it
// as a broken invariant rather than a game outcome.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered stack of cards. Cards only ever leave the deck.
type Deck struct {
	cards []Card
}

// Build creates an ordered, unshuffled 52-card deck: each suit in turn,
// ranks Two through Ten, Jack, Queen, King and Ace.
func Build() *Deck {
	d := &Deck{cards: make([]Card, 0, Size)}
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// New creates a deck holding exactly the given cards, first card on top.
// Useful for stacking a deck in tests.
func New(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle randomizes the order of the cards using Fisher-Yates over rng
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
