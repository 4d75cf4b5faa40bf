package game

// State is the phase of a single game
type State int

const (
	PlayerTurn State = iota
	DealerTurn
	Resolved
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case PlayerTurn:
		return "player-turn"
	case DealerTurn:
		return "dealer-turn"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of a resolved game
type Outcome int

const (
	Undecided Outcome = iota
	PlayerWins
	HouseWins
	Tie
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "player-wins"
	case HouseWins:
		return "house-wins"
	case Tie:
		return "tie"
	default:
		return "undecided"
	}
}
