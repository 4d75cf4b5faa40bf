// Package game implements the blackjack game logic.
//
// The main type is Game, a state machine for a single game that owns the deck
// and both hands. A game moves through three states:
//
//	PlayerTurn -> DealerTurn -> Resolved
//
// The player hits or stays; a bust ends the game immediately in the house's
// favour. Once the player stays the dealer draws until DealerStands says to
// stop, and Resolve compares the best totals of both hands.
//
// # Basic Usage
//
//	g, err := game.NewShuffled(randutil.New(42))
//	// ...
//	g.Hit()
//	g.Stay()
//	for !g.DealerStands() {
//	    g.DealerDraw()
//	}
//	result, err := g.Resolve()
//
// # Interactive play
//
// Runner drives a Game through a Prompter (the player's choices) and a
// Display (where formatted views are rendered), pacing dealer draws through a
// Pacer. Session wraps Runner in the play-again loop, building a fresh
// shuffled deck for every game.
//
// # Deterministic Testing
//
// Pass a stacked deck to New for complete control over the cards:
//
//	g, err := game.New(deck.New(deck.MustParseCards("Kh7c 9d8s 5h")...))
//
// The first two cards go to the dealer, the next two to the player, and
// the rest are drawn in order.
package game
