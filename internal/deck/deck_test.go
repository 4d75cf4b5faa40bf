package deck

import (
	"testing"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Build()
	cards := d.Cards()
	require.Len(t, cards, Size)

	names := make(map[string]bool)
	perSuit := make(map[Suit]map[Rank]bool)
	values := make(map[int]int)
	for _, c := range cards {
		names[c.Name()] = true
		if perSuit[c.Suit] == nil {
			perSuit[c.Suit] = make(map[Rank]bool)
		}
		perSuit[c.Suit][c.Rank] = true
		values[c.Value()]++
	}

	assert.Len(t, names, Size, "card names must be unique")
	assert.Len(t, perSuit, 4)
	for suit, ranks := range perSuit {
		assert.Len(t, ranks, 13, "suit %s", suit)
	}

	expected := map[int]int{
		1: 4, 2: 4, 3: 4, 4: 4, 5: 4, 6: 4, 7: 4, 8: 4, 9: 4,
		10: 16,
	}
	assert.Equal(t, expected, values)
}

func TestBuildIsOrdered(t *testing.T) {
	cards := Build().Cards()
	assert.Equal(t, NewCard(Hearts, Two), cards[0])
	assert.Equal(t, NewCard(Hearts, Ace), cards[12])
	assert.Equal(t, NewCard(Spades, Two), cards[13])
	assert.Equal(t, NewCard(Diamonds, Ace), cards[51])
	assert.Equal(t, Build().Cards(), cards)
}

func TestDrawFromTop(t *testing.T) {
	d := New(MustParseCards("AhKs2c")...)

	card, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, NewCard(Hearts, Ace), card)
	assert.Equal(t, 2, d.Len())

	_, _ = d.Draw()
	_, _ = d.Draw()
	assert.True(t, d.IsEmpty())

	_, err = d.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDrawEntireDeck(t *testing.T) {
	d := Build()
	seen := make(map[Card]bool)
	for i := 0; i < Size; i++ {
		card, err := d.Draw()
		require.NoError(t, err, "draw %d", i+1)
		assert.False(t, seen[card], "card %s drawn twice", card.Name())
		seen[card] = true
	}
	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestShuffleIsPermutation(t *testing.T) {
	ordered := Build().Cards()
	rng := randutil.New(42)

	changed := 0
	const trials = 100
	for i := 0; i < trials; i++ {
		d := Build()
		d.Shuffle(rng)
		shuffled := d.Cards()

		assert.ElementsMatch(t, ordered, shuffled)
		if !assert.ObjectsAreEqual(ordered, shuffled) {
			changed++
		}
	}

	// The chance of a uniform shuffle reproducing the identity is 1/52!
	assert.Equal(t, trials, changed)
}

func TestShuffleIsReproducible(t *testing.T) {
	d1 := Build()
	d1.Shuffle(randutil.New(7))
	d2 := Build()
	d2.Shuffle(randutil.New(7))
	assert.Equal(t, d1.Cards(), d2.Cards())

	d3 := Build()
	d3.Shuffle(randutil.New(8))
	assert.NotEqual(t, d1.Cards(), d3.Cards())
}

func TestCardsReturnsCopy(t *testing.T) {
	d := Build()
	cards := d.Cards()
	cards[0] = NewCard(Spades, Ace)
	assert.Equal(t, NewCard(Hearts, Two), d.Cards()[0])
}
