package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/hand"
)

// HiddenCard stands in for the dealer's face-down cards
const HiddenCard = "???"

// DisplayStyles contains styling for game views
type DisplayStyles struct {
	Header    lipgloss.Style
	Total     lipgloss.Style
	Score     lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Push      lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
}

// NewDisplayStyles creates a new set of display styles
func NewDisplayStyles() *DisplayStyles {
	return &DisplayStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Total: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loss: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Bold(true),
		Hidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// PlainDisplayStyles returns styles that render text unchanged
func PlainDisplayStyles() *DisplayStyles {
	plain := lipgloss.NewStyle()
	return &DisplayStyles{
		Header: plain, Total: plain, Score: plain,
		Win: plain, Loss: plain, Push: plain,
		CardRed: plain, CardBlack: plain, Hidden: plain,
	}
}

// View formats game state into text for a Display. What each view reveals
// is fixed: the dealer's hole cards stay hidden until the player stays.
type View struct {
	styles *DisplayStyles
}

// NewView creates a view with the given styles
func NewView(styles *DisplayStyles) *View {
	if styles == nil {
		styles = NewDisplayStyles()
	}
	return &View{styles: styles}
}

// Table shows the dealer's first card with the rest hidden, the player's
// full hand, and the player's live totals.
func (v *View) Table(dealer, player hand.Hand) string {
	var sb strings.Builder

	sb.WriteString(v.header("DEALER'S HAND"))
	if len(dealer) > 0 {
		sb.WriteString(v.card(dealer[0]) + "\n")
	}
	for range max(len(dealer)-1, 0) {
		sb.WriteString(v.styles.Hidden.Render(HiddenCard) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(v.header("YOUR HAND"))
	sb.WriteString(v.cards(player))
	sb.WriteString("\n")
	sb.WriteString(v.styles.Total.Render("TOTAL: " + player.Scores().String()))
	sb.WriteString("\n")

	return sb.String()
}

// DealerReveal shows every dealer card once the player stays
func (v *View) DealerReveal(dealer hand.Hand) string {
	return v.header("DEALER'S HAND") + v.cards(dealer)
}

// DealerDraw shows a single card drawn by the dealer
func (v *View) DealerDraw(card deck.Card) string {
	return v.card(card)
}

// Result shows both best scores and the outcome banner
func (v *View) Result(r Result) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(v.styles.Score.Render("DEALER'S SCORE: "+hand.FormatScore(r.DealerScore)) + "\n")
	sb.WriteString(v.styles.Score.Render("YOUR SCORE: "+hand.FormatScore(r.PlayerScore)) + "\n")
	sb.WriteString("\n")

	rule := strings.Repeat("=", 15)
	sb.WriteString(rule + "\n")
	sb.WriteString(v.banner(r.Outcome) + "\n")
	sb.WriteString(rule + "\n")
	return sb.String()
}

// Banner returns the plain outcome text
func Banner(o Outcome) string {
	switch o {
	case PlayerWins:
		return "You Won!"
	case HouseWins:
		return "House Won."
	case Tie:
		return "Tied!"
	default:
		return ""
	}
}

func (v *View) banner(o Outcome) string {
	switch o {
	case PlayerWins:
		return v.styles.Win.Render(Banner(o))
	case HouseWins:
		return v.styles.Loss.Render(Banner(o))
	default:
		return v.styles.Push.Render(Banner(o))
	}
}

func (v *View) header(title string) string {
	rule := strings.Repeat("=", 14)
	return fmt.Sprintf("%s\n%s\n%s\n", rule, v.styles.Header.Render(title), rule)
}

func (v *View) cards(h hand.Hand) string {
	var sb strings.Builder
	for _, c := range h {
		sb.WriteString(v.card(c) + "\n")
	}
	return sb.String()
}

func (v *View) card(c deck.Card) string {
	if c.IsRed() {
		return v.styles.CardRed.Render(c.Name())
	}
	return v.styles.CardBlack.Render(c.Name())
}
