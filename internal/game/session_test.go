package game

import (
	rand "math/rand/v2"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingFactory records every game a session starts along with the
// deck it started from.
type capturingFactory struct {
	games []*Game
	decks [][]deck.Card
}

func (f *capturingFactory) newGame(rng *rand.Rand) (*Game, error) {
	g, err := NewShuffled(rng)
	if err != nil {
		return nil, err
	}
	f.games = append(f.games, g)
	f.decks = append(f.decks, g.Deck())
	return g, nil
}

func newTestSession(seed int64, prompter Prompter, factory *capturingFactory) *Session {
	return NewSession(SessionConfig{
		Runner:   newTestRunner(prompter, &recordingDisplay{}, nil),
		Prompter: prompter,
		Seed:     seed,
		NewGame:  factory.newGame,
	})
}

func TestSessionPlayAgain(t *testing.T) {
	prompter := &scriptedPrompter{choices: []Choice{Stay, Yes, Stay, No}}
	factory := &capturingFactory{}
	session := newTestSession(7, prompter, factory)

	stats, err := session.Run()
	require.NoError(t, err)

	assert.Equal(t, []string{"Hit or Stay?", "Play again?", "Hit or Stay?", "Play again?"}, prompter.asked)
	assert.Equal(t, 2, stats.Games)
	require.NoError(t, stats.Validate())

	require.Len(t, factory.games, 2)
	for i, g := range factory.games {
		assert.Len(t, factory.decks[i], deck.Size-4, "game %d must start from a fresh deck", i+1)
		assert.Equal(t, Resolved, g.State())
	}
	assert.NotEqual(t, factory.decks[0], factory.decks[1], "each game gets its own shuffle")
	assert.NotSame(t, factory.games[0], factory.games[1])
}

func TestSessionNoEndsAfterOneGame(t *testing.T) {
	prompter := &scriptedPrompter{choices: []Choice{Stay, No}}
	factory := &capturingFactory{}
	session := newTestSession(7, prompter, factory)

	stats, err := session.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Games)
	assert.Len(t, factory.games, 1)
	assert.Empty(t, prompter.choices)
}

func TestSessionIsReproducible(t *testing.T) {
	play := func() Result {
		factory := &capturingFactory{}
		session := newTestSession(1234, &scriptedPrompter{choices: []Choice{Stay, No}}, factory)
		_, err := session.Run()
		require.NoError(t, err)
		require.Len(t, factory.games, 1)
		return factory.games[0].Result()
	}

	first := play()
	assert.NotEqual(t, Undecided, first.Outcome)
	assert.Equal(t, first, play())
}

func TestSessionSeed(t *testing.T) {
	session := NewSession(SessionConfig{Seed: 99})
	assert.Equal(t, int64(99), session.Seed())

	session = NewSession(SessionConfig{})
	assert.NotZero(t, session.Seed())
}

func TestSessionAbortsOnPromptError(t *testing.T) {
	prompter := &scriptedPrompter{choices: []Choice{Stay}}
	session := newTestSession(3, prompter, &capturingFactory{})

	stats, err := session.Run()
	assert.ErrorIs(t, err, errScriptExhausted)
	assert.Equal(t, 1, stats.Games, "the finished game is still tallied")
}
