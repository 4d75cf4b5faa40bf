package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Console renders game views to a terminal
type Console struct {
	out   *termenv.Output
	clear bool
}

// NewConsole creates a console writing to w. When clear is false the screen
// is never wiped, which keeps the whole game in scrollback.
func NewConsole(w io.Writer, clear bool) *Console {
	return &Console{
		out:   termenv.NewOutput(w),
		clear: clear,
	}
}

// Render implements game.Display
func (c *Console) Render(text string) {
	fmt.Fprintln(c.out, text)
}

// Clear implements game.Display
func (c *Console) Clear() {
	if c.clear {
		c.out.ClearScreen()
	}
}

// HasColor reports whether the output supports ANSI colors
func (c *Console) HasColor() bool {
	return c.out.Profile != termenv.Ascii
}
