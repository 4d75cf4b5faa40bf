package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		options []game.Option
		want    game.Choice
	}{
		{name: "number", input: "2\n", options: game.HitOrStay, want: game.Stay},
		{name: "label", input: "hit\n", options: game.HitOrStay, want: game.Hit},
		{name: "prefix", input: "s\n", options: game.HitOrStay, want: game.Stay},
		{name: "uppercase", input: "YES\n", options: game.PlayAgain, want: game.Yes},
		{name: "retries invalid answers", input: "maybe\n7\n\nn\n", options: game.PlayAgain, want: game.No},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			choice, err := p.Choose("Question?", tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, choice)
			assert.Contains(t, out.String(), "? Question?")
			assert.Contains(t, out.String(), "1) "+tt.options[0].Label)
		})
	}
}

func TestLinePrompterRetryMessage(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("x\n1\n"), &out)

	_, err := p.Choose("Hit or Stay?", game.HitOrStay)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Please answer 1-2")
	assert.Equal(t, 2, strings.Count(out.String(), "? Hit or Stay?"))
}

func TestLinePrompterEOF(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Choose("Play again?", game.PlayAgain)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestLinePrompterSequence(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("1\n2\n1\n"), &bytes.Buffer{})

	var got []game.Choice
	for _, opts := range [][]game.Option{game.HitOrStay, game.HitOrStay, game.PlayAgain} {
		choice, err := p.Choose("?", opts)
		require.NoError(t, err)
		got = append(got, choice)
	}
	assert.Equal(t, []game.Choice{game.Hit, game.Stay, game.Yes}, got)
}
