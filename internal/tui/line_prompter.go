package tui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// LinePrompter asks questions as numbered lists and reads answers one line
// at a time. It works when input is not a terminal, such as a pipe.
type LinePrompter struct {
	scanner *bufio.Scanner
	output  io.Writer
}

// NewLinePrompter creates a line prompter
func NewLinePrompter(input io.Reader, output io.Writer) *LinePrompter {
	return &LinePrompter{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

// Choose implements game.Prompter. Answers may be the option number or a
// case-insensitive prefix of its label; anything else asks again.
func (p *LinePrompter) Choose(message string, options []game.Option) (game.Choice, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options for prompt %q", message)
	}

	for {
		fmt.Fprintf(p.output, "? %s\n", message)
		for i, opt := range options {
			fmt.Fprintf(p.output, "  %d) %s\n", i+1, opt.Label)
		}
		fmt.Fprint(p.output, "> ")

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read answer: %w", err)
			}
			return "", fmt.Errorf("%w: input closed", ErrAborted)
		}

		if choice, ok := match(strings.TrimSpace(p.scanner.Text()), options); ok {
			return choice, nil
		}
		fmt.Fprintf(p.output, "Please answer 1-%d\n", len(options))
	}
}

func match(answer string, options []game.Option) (game.Choice, bool) {
	if answer == "" {
		return "", false
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1].Value, true
		}
		return "", false
	}

	answer = strings.ToLower(answer)
	var found []game.Option
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt.Label), answer) {
			found = append(found, opt)
		}
	}
	if len(found) != 1 {
		return "", false
	}
	return found[0].Value, true
}
