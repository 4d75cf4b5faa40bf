package statistics

import (
	"fmt"
	"math"
)

// GameResult represents the outcome of a single game of blackjack
type GameResult struct {
	PlayerWon   bool  // Player finished with the higher score
	HouseWon    bool  // House finished with the higher score (neither flag set means a tie)
	PlayerBust  bool  // Player went over 21
	DealerBust  bool  // Dealer went over 21
	PlayerCards int   // Cards in the player's final hand
	DealerCards int   // Cards in the dealer's final hand
	Seed        int64 // RNG seed used for the shuffle (for replay)
}

// Net returns +1 for a player win, -1 for a house win and 0 for a tie
func (r GameResult) Net() float64 {
	switch {
	case r.PlayerWon:
		return 1
	case r.HouseWon:
		return -1
	default:
		return 0
	}
}

// Statistics tracks aggregate outcomes over a run of games
type Statistics struct {
	Games  int
	SumNet float64
	SumSq  float64 // Sum of squares for variance calculation

	PlayerWins  int
	HouseWins   int
	Ties        int
	PlayerBusts int
	DealerBusts int

	PlayerCards int // Total cards across all final player hands
	DealerCards int // Total cards across all final dealer hands
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	net := result.Net()
	s.Games++
	s.SumNet += net
	s.SumSq += net * net

	switch {
	case result.PlayerWon:
		s.PlayerWins++
	case result.HouseWon:
		s.HouseWins++
	default:
		s.Ties++
	}

	if result.PlayerBust {
		s.PlayerBusts++
	}
	if result.DealerBust {
		s.DealerBusts++
	}
	s.PlayerCards += result.PlayerCards
	s.DealerCards += result.DealerCards
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.SumNet += other.SumNet
	s.SumSq += other.SumSq
	s.PlayerWins += other.PlayerWins
	s.HouseWins += other.HouseWins
	s.Ties += other.Ties
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	s.PlayerCards += other.PlayerCards
	s.DealerCards += other.DealerCards
}

// Mean returns the average net result per game from the player's side
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumNet / float64(s.Games)
}

// Variance returns the sample variance of the net results
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the net results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Rate returns n as a fraction of all games
func (s *Statistics) Rate(n int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(n) / float64(s.Games)
}

// AvgPlayerCards returns the mean size of the player's final hand
func (s *Statistics) AvgPlayerCards() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.PlayerCards) / float64(s.Games)
}

// AvgDealerCards returns the mean size of the dealer's final hand
func (s *Statistics) AvgDealerCards() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.DealerCards) / float64(s.Games)
}

// Summary returns a one-line tally suitable for the end of a session
func (s *Statistics) Summary() string {
	return fmt.Sprintf("%d played • %d won • %d lost • %d tied", s.Games, s.PlayerWins, s.HouseWins, s.Ties)
}

// Validate checks that the counters are consistent with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if total := s.PlayerWins + s.HouseWins + s.Ties; total != s.Games {
		return fmt.Errorf("outcome total (%d) does not match games count (%d)", total, s.Games)
	}

	if s.PlayerBusts > s.HouseWins {
		return fmt.Errorf("player busts (%d) exceed house wins (%d)", s.PlayerBusts, s.HouseWins)
	}

	if s.DealerBusts > s.PlayerWins {
		return fmt.Errorf("dealer busts (%d) exceed player wins (%d)", s.DealerBusts, s.PlayerWins)
	}

	expectedNet := float64(s.PlayerWins - s.HouseWins)
	if math.Abs(s.SumNet-expectedNet) > 1e-6 {
		return fmt.Errorf("net mismatch: SumNet=%.2f, wins-losses=%.2f", s.SumNet, expectedNet)
	}

	return nil
}
