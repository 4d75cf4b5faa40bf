// Package simulator plays batches of headless blackjack games with a fixed
// player policy to measure how the house rules play out.
package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	StandOn int   // Player stays once their best total reaches this
	Workers int   // Games played concurrently
	Seed    int64 // Game i is shuffled with Seed+i
	Logger  *log.Logger
}

// Simulator runs blackjack simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
	}
}

// Run plays every game and returns the aggregate statistics. Results do not
// depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}

	s.logger.Info("Starting simulation",
		"games", s.config.Games,
		"stand_on", s.config.StandOn,
		"workers", s.config.Workers,
		"seed", s.config.Seed)

	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := s.config.Seed + int64(i)
			result, err := PlayGame(seed, s.config.StandOn)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "games", stats.Games, "mean", stats.Mean())
	return stats, nil
}

// PlayGame plays one game without a player at the table: the player hits
// until their best total reaches standOn, then the dealer plays out.
func PlayGame(seed int64, standOn int) (statistics.GameResult, error) {
	g, err := game.NewShuffled(randutil.New(seed))
	if err != nil {
		return statistics.GameResult{}, err
	}

	for g.State() == game.PlayerTurn {
		if g.Player().Best() >= standOn {
			err = g.Stay()
		} else {
			_, err = g.Hit()
		}
		if err != nil {
			return statistics.GameResult{}, err
		}
	}

	for g.State() == game.DealerTurn {
		if g.DealerStands() {
			_, err = g.Resolve()
		} else {
			_, err = g.DealerDraw()
		}
		if err != nil {
			return statistics.GameResult{}, err
		}
	}

	return g.Result().Record(seed), nil
}
