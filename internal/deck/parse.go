package deck

import (
	"fmt"
	"strings"
)

func suitLetter(s Suit) string {
	switch s {
	case Hearts:
		return "h"
	case Spades:
		return "s"
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	default:
		return "?"
	}
}

// ParseCard parses a two-character card such as "Ah" or "Td"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: expected rank and suit", s)
	}

	var rank Rank
	switch r := strings.ToUpper(s[:1]); r {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		if r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in card %q", s)
		}
		rank = Rank(r[0] - '0')
	}

	var suit Suit
	switch strings.ToLower(s[1:]) {
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return NewCard(suit, rank), nil
}

// ParseCards parses a list of cards in compact notation. Cards may be
// separated by whitespace or written back to back ("AhKd" or "Ah Kd").
func ParseCards(s string) ([]Card, error) {
	compact := strings.Join(strings.Fields(s), "")
	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("invalid card list %q: odd length", s)
	}

	cards := make([]Card, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
