package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from a fixed list of choices
type scriptedPrompter struct {
	choices []Choice
	asked   []string
}

var errScriptExhausted = errors.New("script exhausted")

func (p *scriptedPrompter) Choose(message string, options []Option) (Choice, error) {
	p.asked = append(p.asked, message)
	if len(p.choices) == 0 {
		return "", errScriptExhausted
	}
	choice := p.choices[0]
	p.choices = p.choices[1:]
	return choice, nil
}

// recordingDisplay keeps every rendered frame
type recordingDisplay struct {
	frames []string
	clears int
}

func (d *recordingDisplay) Render(text string) {
	d.frames = append(d.frames, text)
}

func (d *recordingDisplay) Clear() {
	d.clears++
}

func (d *recordingDisplay) output() string {
	return strings.Join(d.frames, "\n")
}

// countingPacer records how often the dealer paused
type countingPacer struct {
	pauses int
}

func (p *countingPacer) Pause() {
	p.pauses++
}

// stackedGame starts a game from cards in compact notation: dealer's two
// cards, then the player's two, then the draw pile.
func stackedGame(t *testing.T, cards string) *Game {
	t.Helper()
	g, err := New(deck.New(deck.MustParseCards(cards)...))
	require.NoError(t, err)
	return g
}

func newTestRunner(prompter Prompter, display Display, pacer Pacer) *Runner {
	return NewRunner(RunnerConfig{
		Prompter: prompter,
		Display:  display,
		Pacer:    pacer,
		Styles:   PlainDisplayStyles(),
	})
}
