package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// RunnerConfig holds the collaborators a Runner plays through
type RunnerConfig struct {
	Prompter Prompter
	Display  Display
	Pacer    Pacer          // Optional, dealer draws are immediate when nil
	Styles   *DisplayStyles // Optional, defaults to NewDisplayStyles
	Logger   *log.Logger    // Optional, discards when nil
}

// Runner plays a single Game to completion against the player
type Runner struct {
	prompter Prompter
	display  Display
	pacer    Pacer
	view     *View
	logger   *log.Logger
}

type noPause struct{}

func (noPause) Pause() {}

// NewRunner creates a runner from cfg
func NewRunner(cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pacer := cfg.Pacer
	if pacer == nil {
		pacer = noPause{}
	}

	return &Runner{
		prompter: cfg.Prompter,
		display:  cfg.Display,
		pacer:    pacer,
		view:     NewView(cfg.Styles),
		logger:   logger.WithPrefix("runner"),
	}
}

// Play runs g until it is resolved and the result has been displayed
func (r *Runner) Play(g *Game) (Result, error) {
	for {
		var err error
		switch g.State() {
		case PlayerTurn:
			err = r.playerTurn(g)
		case DealerTurn:
			err = r.dealerTurn(g)
		case Resolved:
			return r.resolved(g), nil
		default:
			return Result{}, fmt.Errorf("unknown game state %d", g.State())
		}
		if err != nil {
			return Result{}, err
		}
	}
}

func (r *Runner) playerTurn(g *Game) error {
	r.showTable(g)

	choice, err := r.prompter.Choose("Hit or Stay?", HitOrStay)
	if err != nil {
		return fmt.Errorf("failed to get hit or stay: %w", err)
	}
	r.logger.Debug("Player chose", "choice", choice, "totals", g.player.Scores().String())

	switch choice {
	case Hit:
		card, err := g.Hit()
		if err != nil {
			return err
		}
		r.logger.Debug("Player drew", "card", card.Name(), "state", g.State())
	case Stay:
		if err := g.Stay(); err != nil {
			return err
		}
		r.display.Clear()
		r.display.Render(r.view.DealerReveal(g.dealer))
	default:
		return fmt.Errorf("unexpected choice %q", choice)
	}
	return nil
}

func (r *Runner) dealerTurn(g *Game) error {
	if g.DealerStands() {
		r.logger.Debug("Dealer stands", "totals", g.dealer.Scores().String())
		_, err := g.Resolve()
		return err
	}

	r.pacer.Pause()
	card, err := g.DealerDraw()
	if err != nil {
		return err
	}
	r.logger.Debug("Dealer drew", "card", card.Name())
	r.display.Render(r.view.DealerDraw(card))
	return nil
}

func (r *Runner) resolved(g *Game) Result {
	result := g.Result()
	if result.PlayerBust() {
		// The player's last card has not been shown yet
		r.showTable(g)
	}

	r.logger.Info("Game resolved",
		"outcome", result.Outcome,
		"dealer", result.DealerScore,
		"player", result.PlayerScore)
	r.display.Render(r.view.Result(result))
	return result
}

func (r *Runner) showTable(g *Game) {
	r.display.Clear()
	r.display.Render(r.view.Table(g.dealer, g.player))
}
