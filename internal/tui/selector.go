package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/blackjack/internal/game"
)

// keyMap defines the selector's key bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "choose"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// Selector is a Bubble Tea model that asks the player to pick one option
// from a list, moving a cursor with the arrow keys.
type Selector struct {
	message string
	options []game.Option
	cursor  int
	chosen  int
	aborted bool

	keys keyMap
	help help.Model
}

// NewSelector creates a selector for the given options
func NewSelector(message string, options []game.Option) *Selector {
	return &Selector{
		message: message,
		options: options,
		chosen:  -1,
		keys:    defaultKeys,
		help:    help.New(),
	}
}

// Init implements tea.Model
func (m *Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.options) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.options)
	case key.Matches(keyMsg, m.keys.Choose):
		m.chosen = m.cursor
		return m, tea.Quit
	default:
		// Digits pick an option directly
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx := int(s[0] - '1'); idx < len(m.options) {
				m.cursor = idx
				m.chosen = idx
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Selector) View() string {
	var sb strings.Builder
	sb.WriteString(QuestionMarkStyle.Render("?") + " " + MessageStyle.Render(m.message))

	if m.chosen >= 0 {
		sb.WriteString(" " + AnswerStyle.Render(m.options[m.chosen].Label) + "\n")
		return sb.String()
	}
	if m.aborted {
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("\n")
	for i, opt := range m.options {
		if i == m.cursor {
			sb.WriteString(fmt.Sprintf("%s %s\n", CursorStyle.Render("❯"), SelectedStyle.Render(opt.Label)))
		} else {
			sb.WriteString(fmt.Sprintf("  %s\n", OptionStyle.Render(opt.Label)))
		}
	}
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// Choice returns the picked value, or false if the prompt was abandoned
func (m *Selector) Choice() (game.Choice, bool) {
	if m.chosen < 0 {
		return "", false
	}
	return m.options[m.chosen].Value, true
}

// Aborted reports whether the player quit instead of choosing
func (m *Selector) Aborted() bool {
	return m.aborted
}
