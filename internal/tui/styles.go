package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for prompt elements
var (
	QuestionMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true)

	MessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	OptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	AnswerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF"))
)
