package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// SessionConfig configures a run of consecutive games
type SessionConfig struct {
	Runner   *Runner
	Prompter Prompter
	Seed     int64 // Seed for every shuffle in the session, zero picks one

	// NewGame starts each game. Defaults to NewShuffled.
	NewGame func(rng *rand.Rand) (*Game, error)

	Logger *log.Logger
}

// Session plays games until the player declines to play again. Nothing
// carries over between games except the tally.
type Session struct {
	runner   *Runner
	prompter Prompter
	seed     int64
	rng      *rand.Rand
	newGame  func(rng *rand.Rand) (*Game, error)
	stats    statistics.Statistics
	logger   *log.Logger
}

// NewSession creates a session from cfg
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	newGame := cfg.NewGame
	if newGame == nil {
		newGame = NewShuffled
	}
	seed := randutil.Resolve(cfg.Seed)

	return &Session{
		runner:   cfg.Runner,
		prompter: cfg.Prompter,
		seed:     seed,
		rng:      randutil.New(seed),
		newGame:  newGame,
		logger:   logger.WithPrefix("session"),
	}
}

// Seed returns the seed the session shuffles with
func (s *Session) Seed() int64 {
	return s.seed
}

// Stats returns the tally so far
func (s *Session) Stats() *statistics.Statistics {
	return &s.stats
}

// Run plays games until the player answers No to playing again
func (s *Session) Run() (*statistics.Statistics, error) {
	s.logger.Info("Starting session", "seed", s.seed)

	for {
		g, err := s.newGame(s.rng)
		if err != nil {
			return &s.stats, fmt.Errorf("failed to start game: %w", err)
		}
		s.logger.Debug("Starting game", "number", s.stats.Games+1)

		result, err := s.runner.Play(g)
		if err != nil {
			return &s.stats, fmt.Errorf("game %d aborted: %w", s.stats.Games+1, err)
		}
		s.stats.Add(result.Record(s.seed))

		choice, err := s.prompter.Choose("Play again?", PlayAgain)
		if err != nil {
			return &s.stats, fmt.Errorf("failed to get play again: %w", err)
		}
		if choice != Yes {
			s.logger.Info("Session finished", "games", s.stats.Games, "won", s.stats.PlayerWins)
			return &s.stats, nil
		}
	}
}
