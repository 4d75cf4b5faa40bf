package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
)

// setupLogger builds a logger from the log settings. Output goes to the
// configured file when there is one, otherwise to fallback. The returned
// function closes the file.
func setupLogger(settings *config.LogSettings, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if settings.File != "" {
		file, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
		closeFn = func() {
			if err := file.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
