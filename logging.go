package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLogLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(raw)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// newFileLogger returns the logger used while the TUI owns the terminal.
// Without a log file every event is discarded.
func newFileLogger(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).
		Level(parseLogLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Str("mode", "tui").
		Logger()
	return logger, f, nil
}

// newConsoleLogger writes human-readable logs, used by the HTTP server.
func newConsoleLogger(w io.Writer, cfg Config) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(parseLogLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Logger()
}

func logConfigWarnings(logger zerolog.Logger, cfg Config) {
	for _, w := range cfg.Warnings {
		logger.Warn().Msg(w)
	}
}
