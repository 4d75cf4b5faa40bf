package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
)

type SimulateCmd struct {
	Games   int   `short:"n" help:"Number of games to simulate (overrides config)"`
	StandOn int   `help:"Player stays once their best total reaches this (overrides config)"`
	Workers int   `short:"w" help:"Games played concurrently (overrides config)"`
	Seed    int64 `help:"Base RNG seed (0 picks one)"`
}

func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Games != 0 {
		cfg.Simulate.Games = c.Games
	}
	if c.StandOn != 0 {
		cfg.Simulate.StandOn = c.StandOn
	}
	if c.Workers != 0 {
		cfg.Simulate.Workers = c.Workers
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg.Log, os.Stderr, "SIM")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := randutil.Resolve(cfg.Game.Seed)
	sim := simulator.New(simulator.Config{
		Games:   cfg.Simulate.Games,
		StandOn: cfg.Simulate.StandOn,
		Workers: cfg.Simulate.Workers,
		Seed:    seed,
		Logger:  logger,
	})

	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Println(renderSummary(stats, cfg.Simulate.StandOn, seed))
	return nil
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 2, 64) + "%"
}

func renderSummary(stats *statistics.Statistics, standOn int, seed int64) string {
	low, high := stats.ConfidenceInterval95()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))).
		Headers("Metric", "Value").
		Row("Games", strconv.Itoa(stats.Games)).
		Row("Player stands on", strconv.Itoa(standOn)).
		Row("Seed", strconv.FormatInt(seed, 10)).
		Row("Player wins", percent(stats.Rate(stats.PlayerWins))).
		Row("House wins", percent(stats.Rate(stats.HouseWins))).
		Row("Ties", percent(stats.Rate(stats.Ties))).
		Row("Player busts", percent(stats.Rate(stats.PlayerBusts))).
		Row("Dealer busts", percent(stats.Rate(stats.DealerBusts))).
		Row("Avg player cards", strconv.FormatFloat(stats.AvgPlayerCards(), 'f', 2, 64)).
		Row("Avg dealer cards", strconv.FormatFloat(stats.AvgDealerCards(), 'f', 2, 64)).
		Row("Net per game", fmt.Sprintf("%+.4f (95%% CI %+.4f to %+.4f)", stats.Mean(), low, high))

	return t.String()
}
