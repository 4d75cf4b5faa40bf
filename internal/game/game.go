package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/hand"
	"github.com/lox/blackjack/internal/statistics"
)

// ErrInvalidTransition is returned when an action is taken in a state that
// does not allow it.
var ErrInvalidTransition = errors.New("invalid transition")

// Game is the state of a single game. It exclusively owns the deck and both
// hands until it is resolved.
type Game struct {
	deck   *deck.Deck
	dealer hand.Hand
	player hand.Hand
	state  State
	result Result
}

// Result is the final state of a resolved game
type Result struct {
	Outcome     Outcome
	DealerScore int // Best dealer total or hand.Bust
	PlayerScore int // Best player total or hand.Bust
	Dealer      hand.Hand
	Player      hand.Hand
}

// PlayerBust reports whether the player went over 21
func (r Result) PlayerBust() bool {
	return r.PlayerScore == hand.Bust
}

// DealerBust reports whether the dealer went over 21
func (r Result) DealerBust() bool {
	return r.DealerScore == hand.Bust
}

// Record converts the result into a statistics entry
func (r Result) Record(seed int64) statistics.GameResult {
	return statistics.GameResult{
		PlayerWon:   r.Outcome == PlayerWins,
		HouseWon:    r.Outcome == HouseWins,
		PlayerBust:  r.PlayerBust(),
		DealerBust:  r.DealerBust(),
		PlayerCards: len(r.Player),
		DealerCards: len(r.Dealer),
		Seed:        seed,
	}
}

// New starts a game from d, dealing two cards to the dealer and then two to
// the player. The deck is used as is, so shuffle it first for real play.
func New(d *deck.Deck) (*Game, error) {
	g := &Game{
		deck:   d,
		dealer: make(hand.Hand, 0, 8),
		player: make(hand.Hand, 0, 8),
		state:  PlayerTurn,
	}

	for range 2 {
		card, err := g.draw()
		if err != nil {
			return nil, fmt.Errorf("failed to deal dealer: %w", err)
		}
		g.dealer = g.dealer.Add(card)
	}
	for range 2 {
		card, err := g.draw()
		if err != nil {
			return nil, fmt.Errorf("failed to deal player: %w", err)
		}
		g.player = g.player.Add(card)
	}

	return g, nil
}

// NewShuffled starts a game from a freshly built deck shuffled with rng
func NewShuffled(rng *rand.Rand) (*Game, error) {
	d := deck.Build()
	d.Shuffle(rng)
	return New(d)
}

// State returns the current phase of the game
func (g *Game) State() State {
	return g.state
}

// Dealer returns a copy of the dealer's hand
func (g *Game) Dealer() hand.Hand {
	return append(hand.Hand(nil), g.dealer...)
}

// Player returns a copy of the player's hand
func (g *Game) Player() hand.Hand {
	return append(hand.Hand(nil), g.player...)
}

// Deck returns a copy of the cards left in the deck, top first
func (g *Game) Deck() []deck.Card {
	return g.deck.Cards()
}

// Hit draws a card for the player. If every player total is then over 21
// the game resolves immediately as a house win and the dealer never plays.
func (g *Game) Hit() (deck.Card, error) {
	if g.state != PlayerTurn {
		return deck.Card{}, fmt.Errorf("%w: hit during %s", ErrInvalidTransition, g.state)
	}

	card, err := g.draw()
	if err != nil {
		return deck.Card{}, err
	}
	g.player = g.player.Add(card)

	if g.player.Busted() {
		g.finish(HouseWins)
	}
	return card, nil
}

// Stay ends the player's turn and hands control to the dealer
func (g *Game) Stay() error {
	if g.state != PlayerTurn {
		return fmt.Errorf("%w: stay during %s", ErrInvalidTransition, g.state)
	}
	g.state = DealerTurn
	return nil
}

// DealerStands reports whether the dealer's turn is over
func (g *Game) DealerStands() bool {
	return DealerStands(g.dealer.Scores(), g.player.Scores())
}

// DealerDraw draws a card for the dealer. It fails if the dealer should
// already be standing.
func (g *Game) DealerDraw() (deck.Card, error) {
	if g.state != DealerTurn {
		return deck.Card{}, fmt.Errorf("%w: dealer draw during %s", ErrInvalidTransition, g.state)
	}
	if g.DealerStands() {
		return deck.Card{}, fmt.Errorf("%w: dealer draw while standing", ErrInvalidTransition)
	}

	card, err := g.draw()
	if err != nil {
		return deck.Card{}, err
	}
	g.dealer = g.dealer.Add(card)
	return card, nil
}

// Resolve scores both hands once the dealer stands and ends the game
func (g *Game) Resolve() (Result, error) {
	switch {
	case g.state == Resolved:
		return g.result, nil
	case g.state != DealerTurn:
		return Result{}, fmt.Errorf("%w: resolve during %s", ErrInvalidTransition, g.state)
	case !g.DealerStands():
		return Result{}, fmt.Errorf("%w: resolve before dealer stands", ErrInvalidTransition)
	}

	g.finish(Decide(g.dealer.Best(), g.player.Best()))
	return g.result, nil
}

// Result returns the final result. Outcome is Undecided until the game
// is resolved.
func (g *Game) Result() Result {
	return g.result
}

func (g *Game) finish(outcome Outcome) {
	g.state = Resolved
	g.result = Result{
		Outcome:     outcome,
		DealerScore: g.dealer.Best(),
		PlayerScore: g.player.Best(),
		Dealer:      g.Dealer(),
		Player:      g.Player(),
	}
}

func (g *Game) draw() (deck.Card, error) {
	card, err := g.deck.Draw()
	if err != nil {
		return deck.Card{}, fmt.Errorf("draw failed with %d cards dealt: %w", len(g.dealer)+len(g.player), err)
	}
	return card, nil
}
