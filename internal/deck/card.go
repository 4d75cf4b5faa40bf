package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// Suits lists every suit in build order
var Suits = [...]Suit{Hearts, Spades, Clubs, Diamonds}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank symbol used by ParseCards
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Nine {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Name returns the human-readable rank label
func (r Rank) Name() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Value returns the blackjack point value of the rank. Aces count 1 here;
// the hand evaluator decides when an ace is worth 11.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 1
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

// Card is an immutable playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Name returns the unique display name of the card (e.g. "♥Jack")
func (c Card) Name() string {
	return c.Suit.String() + c.Rank.Name()
}

// String returns the compact notation of the card (e.g. "Jh")
func (c Card) String() string {
	return c.Rank.String() + suitLetter(c.Suit)
}

// Value returns the blackjack point value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}
