package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: "warn", want: zerolog.WarnLevel},
		{input: "", want: zerolog.InfoLevel},
		{input: "loud", want: zerolog.InfoLevel},
	}

	for _, tc := range tests {
		if got := parseLogLevel(tc.input); got != tc.want {
			t.Fatalf("parseLogLevel(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestNewFileLoggerWritesJSONLines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "pnl.log")

	logger, closer, err := newFileLogger(cfg)
	if err != nil {
		t.Fatalf("new file logger: %v", err)
	}
	logger.Info().Str("product", "mug").Msg("product added")
	logger.Debug().Msg("filtered out at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	body, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(body)
	if !strings.Contains(text, `"product":"mug"`) || !strings.Contains(text, `"mode":"tui"`) {
		t.Fatalf("expected structured log line, got %q", text)
	}
	if strings.Contains(text, "filtered out") {
		t.Fatalf("expected debug line to be filtered, got %q", text)
	}
}

func TestNewFileLoggerWithoutFileIsNop(t *testing.T) {
	logger, closer, err := newFileLogger(DefaultConfig())
	if err != nil {
		t.Fatalf("new file logger: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got %v", logger.GetLevel())
	}
}

func TestConsoleLoggerIncludesWarnings(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Warnings = []string{`ignoring PNL_ADS_RATE="lots"`}

	logConfigWarnings(newConsoleLogger(&buf, cfg), cfg)
	if !strings.Contains(buf.String(), "ignoring PNL_ADS_RATE") {
		t.Fatalf("expected warning in console output, got %q", buf.String())
	}
}
