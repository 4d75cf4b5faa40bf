package game

import "github.com/lox/blackjack/internal/hand"

// DealerStandsOn is the total every dealer candidate must reach before the
// dealer stops drawing on the first stand condition.
const DealerStandsOn = 17

// DealerStands reports whether the dealer stops drawing. The dealer stands
// when every dealer candidate is at least DealerStandsOn, or when any single
// dealer candidate is higher than every player candidate. Player candidates
// are compared unfiltered, busted totals included.
func DealerStands(dealer, player hand.Scores) bool {
	if dealer.AllAtLeast(DealerStandsOn) {
		return true
	}
	for _, total := range dealer {
		if player.AllBelow(total) {
			return true
		}
	}
	return false
}

// Decide compares two best scores. hand.Bust is lower than any real score,
// so a bust only wins against another bust, which ties.
func Decide(dealerScore, playerScore int) Outcome {
	switch {
	case playerScore > dealerScore:
		return PlayerWins
	case dealerScore > playerScore:
		return HouseWins
	default:
		return Tie
	}
}
