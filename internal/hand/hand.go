// Package hand scores blackjack hands.
//
// Every ace may count as 1 or 11, so a hand does not have a single total but
// a small set of candidate totals. Scores models that set directly: the base
// sum with all aces at 1, plus one extra candidate per ace upgraded to 11.
package hand

import (
	"slices"
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

const (
	// Limit is the highest total a hand can hold without busting
	Limit = 21

	// Bust is the best score of a hand with no candidate total at or under Limit.
	// It compares lower than any real score.
	Bust = -1

	aceUpgrade = 10
)

// Hand is the ordered set of cards held by one side of the table
type Hand []deck.Card

// Add returns the hand with card appended
func (h Hand) Add(card deck.Card) Hand {
	return append(h, card)
}

// Scores returns the candidate totals for the hand
func (h Hand) Scores() Scores {
	base, aces := 0, 0
	for _, c := range h {
		base += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	scores := make(Scores, 0, aces+1)
	for k := 0; k <= aces; k++ {
		scores = append(scores, base+k*aceUpgrade)
	}
	return scores
}

// Best returns the highest candidate total not exceeding Limit, or Bust
func (h Hand) Best() int {
	return h.Scores().Best()
}

// Busted reports whether every candidate total exceeds Limit
func (h Hand) Busted() bool {
	return h.Scores().Busted()
}

// Names returns the display name of each card in order
func (h Hand) Names() []string {
	names := make([]string, len(h))
	for i, c := range h {
		names[i] = c.Name()
	}
	return names
}

// Scores is the ascending set of candidate totals of a hand
type Scores []int

// Live returns the candidates that do not exceed Limit
func (s Scores) Live() Scores {
	live := make(Scores, 0, len(s))
	for _, v := range s {
		if v <= Limit {
			live = append(live, v)
		}
	}
	return live
}

// Busted reports whether no candidate is at or under Limit
func (s Scores) Busted() bool {
	return len(s.Live()) == 0
}

// Best returns the highest live candidate, or Bust when there is none
func (s Scores) Best() int {
	live := s.Live()
	if len(live) == 0 {
		return Bust
	}
	return slices.Max(live)
}

// AllAtLeast reports whether every candidate is n or more
func (s Scores) AllAtLeast(n int) bool {
	for _, v := range s {
		if v < n {
			return false
		}
	}
	return true
}

// AllBelow reports whether every candidate is strictly less than total
func (s Scores) AllBelow(total int) bool {
	for _, v := range s {
		if total <= v {
			return false
		}
	}
	return true
}

// String joins the live candidates with " or ", or returns "Bust"
func (s Scores) String() string {
	live := s.Live()
	if len(live) == 0 {
		return "Bust"
	}
	parts := make([]string, len(live))
	for i, v := range live {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " or ")
}

// FormatScore renders a best score, showing Bust for the sentinel
func FormatScore(score int) string {
	if score == Bust {
		return "Bust"
	}
	return strconv.Itoa(score)
}
