package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRunTUIClosesLogFileOnError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipIntro = true
	cfg.LogFile = filepath.Join(t.TempDir(), "pnl.log")
	cfg.Warnings = []string{`ignoring PNL_ADS_RATE="lots"`}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runTUI(cfg,
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
	)
	if err == nil {
		t.Fatal("expected cancelled program to return an error")
	}

	body, readErr := os.ReadFile(cfg.LogFile)
	if readErr != nil {
		t.Fatalf("read log file: %v", readErr)
	}
	text := string(body)
	for _, want := range []string{"ignoring PNL_ADS_RATE", "program exited with error"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in log, got %q", want, text)
		}
	}
}
