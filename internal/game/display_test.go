package game

import (
	"strings"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/hand"
	"github.com/stretchr/testify/assert"
)

func TestViewTableMasksDealer(t *testing.T) {
	v := NewView(PlainDisplayStyles())
	dealer := hand.Hand(deck.MustParseCards("Qs4h2c"))
	player := hand.Hand(deck.MustParseCards("AhAs"))

	out := v.Table(dealer, player)

	assert.Contains(t, out, "DEALER'S HAND")
	assert.Contains(t, out, "♠Queen")
	assert.Equal(t, 2, strings.Count(out, HiddenCard))
	assert.NotContains(t, out, "♥4")
	assert.NotContains(t, out, "♣2")

	assert.Contains(t, out, "YOUR HAND")
	assert.Contains(t, out, "♥Ace\n♠Ace")
	assert.Contains(t, out, "TOTAL: 2 or 12")
}

func TestViewDealerReveal(t *testing.T) {
	v := NewView(PlainDisplayStyles())
	out := v.DealerReveal(hand.Hand(deck.MustParseCards("Qs4h")))
	assert.Contains(t, out, "♠Queen\n♥4")
	assert.NotContains(t, out, HiddenCard)
}

func TestViewResult(t *testing.T) {
	v := NewView(PlainDisplayStyles())

	tests := []struct {
		result   Result
		contains []string
	}{
		{
			result:   Result{Outcome: PlayerWins, DealerScore: hand.Bust, PlayerScore: 20},
			contains: []string{"DEALER'S SCORE: Bust", "YOUR SCORE: 20", "You Won!"},
		},
		{
			result:   Result{Outcome: HouseWins, DealerScore: 20, PlayerScore: hand.Bust},
			contains: []string{"DEALER'S SCORE: 20", "YOUR SCORE: Bust", "House Won."},
		},
		{
			result:   Result{Outcome: Tie, DealerScore: 18, PlayerScore: 18},
			contains: []string{"DEALER'S SCORE: 18", "YOUR SCORE: 18", "Tied!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.result.Outcome.String(), func(t *testing.T) {
			out := v.Result(tt.result)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestNewViewDefaultsStyles(t *testing.T) {
	v := NewView(nil)
	assert.Contains(t, v.DealerDraw(deck.NewCard(deck.Clubs, deck.Jack)), "♣Jack")
}
