package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/tui"
	"github.com/mattn/go-isatty"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type PlayCmd struct {
	Seed    int64         `help:"Shuffle seed (0 picks one)"`
	Delay   time.Duration `help:"Pause between dealer draws (overrides config)" default:"-1ns"`
	Plain   bool          `help:"Use numbered text prompts instead of the interactive selector"`
	NoColor bool          `help:"Disable colors"`
	NoClear bool          `help:"Never clear the screen"`
}

func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.Delay >= 0 {
		cfg.Game.DealerDelay = c.Delay.String()
	}
	if c.Plain {
		*cfg.UI.Plain = true
	}
	if c.NoColor {
		*cfg.UI.Color = false
	}
	if c.NoClear {
		*cfg.UI.Clear = false
	}
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The game owns the terminal, so logs only go to a file when configured
	logger, closeLog, err := setupLogger(cfg.Log, io.Discard, "PLAY")
	if err != nil {
		return err
	}
	defer closeLog()

	plain := *cfg.UI.Plain || !isatty.IsTerminal(os.Stdin.Fd())
	console := tui.NewConsole(os.Stdout, *cfg.UI.Clear && !plain)

	styles := game.NewDisplayStyles()
	if !*cfg.UI.Color || !console.HasColor() {
		styles = game.PlainDisplayStyles()
	}

	var prompter game.Prompter
	if plain {
		prompter = tui.NewLinePrompter(os.Stdin, os.Stdout)
	} else {
		prompter = tui.NewPrompter(os.Stdin, os.Stdout, logger)
	}

	runner := game.NewRunner(game.RunnerConfig{
		Prompter: prompter,
		Display:  console,
		Pacer:    game.NewPacer(quartz.NewReal(), cfg.GetDealerDelay()),
		Styles:   styles,
		Logger:   logger,
	})

	session := game.NewSession(game.SessionConfig{
		Runner:   runner,
		Prompter: prompter,
		Seed:     cfg.Game.Seed,
		Logger:   logger,
	})

	console.Clear()
	console.Render(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ ") + "\n")

	stats, err := session.Run()
	if errors.Is(err, tui.ErrAborted) {
		logger.Info("Player quit")
		err = nil
	}
	if err != nil {
		logger.Error("Session ended with error", "error", err, "seed", session.Seed())
		return err
	}

	if stats.Games > 0 {
		console.Render(stats.Summary())
	}
	return nil
}
