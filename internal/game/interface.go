package game

// Choice is a value the player can pick at a prompt
type Choice string

const (
	Hit  Choice = "hit"
	Stay Choice = "stay"
	Yes  Choice = "yes"
	No   Choice = "no"
)

// Option is one labelled entry offered at a prompt
type Option struct {
	Label string
	Value Choice
}

// The two fixed choice sets offered to the player
var (
	HitOrStay = []Option{{Label: "Hit", Value: Hit}, {Label: "Stay", Value: Stay}}
	PlayAgain = []Option{{Label: "Yes", Value: Yes}, {Label: "No", Value: No}}
)

// Prompter asks the player to pick one of the offered options. It blocks
// until a choice is made and is trusted to return one of the offered values.
type Prompter interface {
	Choose(message string, options []Option) (Choice, error)
}

// Display is where formatted game views are shown
type Display interface {
	Render(text string)
	Clear()
}
