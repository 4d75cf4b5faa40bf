package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// ErrAborted is returned when the player quits from a prompt instead of
// choosing an option.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks questions with an interactive Selector, one short-lived
// Bubble Tea program per question.
type Prompter struct {
	input  io.Reader
	output io.Writer
	logger *log.Logger
}

// NewPrompter creates a prompter reading keys from input and drawing to output
func NewPrompter(input io.Reader, output io.Writer, logger *log.Logger) *Prompter {
	return &Prompter{
		input:  input,
		output: output,
		logger: logger.WithPrefix("prompt"),
	}
}

// Choose implements game.Prompter
func (p *Prompter) Choose(message string, options []game.Option) (game.Choice, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options for prompt %q", message)
	}

	program := tea.NewProgram(NewSelector(message, options),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	selector, ok := final.(*Selector)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}

	choice, ok := selector.Choice()
	if !ok {
		p.logger.Info("Player quit at prompt", "message", message)
		return "", ErrAborted
	}

	p.logger.Debug("Player chose", "message", message, "choice", choice)
	return choice, nil
}
