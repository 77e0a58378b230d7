package main

import (
	"strings"
	"testing"

	"pnl/types"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderGradientText(t *testing.T) {
	input := "P & L"
	output := renderGradientText(input, "#7D56F4", "#EA80FC")

	if output == "" {
		t.Fatal("expected gradient output to be non-empty")
	}
	if got, want := lipgloss.Width(output), lipgloss.Width(input); got != want {
		t.Fatalf("expected visual width %d, got %d", want, got)
	}
}

func TestTierStyles(t *testing.T) {
	tests := []struct {
		name   string
		margin float64
		want   lipgloss.Style
	}{
		{name: "strong", margin: 32, want: tierStrongStyle},
		{name: "fair", margin: 12.5, want: tierFairStyle},
		{name: "thin", margin: 0, want: tierThinStyle},
		{name: "loss", margin: -4, want: tierLossStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := types.TierForMargin(tt.margin)
			style := tierStyleFor(tier)
			if got, want := style.GetForeground(), tt.want.GetForeground(); got != want {
				t.Fatalf("expected foreground %v, got %v", want, got)
			}
			if rendered := style.Render(tier.String()); !strings.Contains(rendered, tt.name) {
				t.Fatalf("expected badge to contain %q, got %q", tt.name, rendered)
			}
		})
	}
}

func TestToneStyleFor(t *testing.T) {
	if got, want := toneStyleFor(1).GetForeground(), successStyle.GetForeground(); got != want {
		t.Fatalf("expected success colour for positive value, got %v", got)
	}
	if got, want := toneStyleFor(-1).GetForeground(), dangerStyle.GetForeground(); got != want {
		t.Fatalf("expected danger colour for negative value, got %v", got)
	}
	if got, want := toneStyleFor(0).GetForeground(), mutedStyle.GetForeground(); got != want {
		t.Fatalf("expected muted colour for zero, got %v", got)
	}
}

func TestRenderPanelTitleTruncationSafety(t *testing.T) {
	panelWidth := 14
	panel := renderPanel("/", "超長いタイトルで切り詰めを確認する", "content", panelWidth, 1, false, false)
	lines := strings.Split(panel, "\n")
	if len(lines) == 0 {
		t.Fatal("expected rendered panel lines")
	}
	if got, want := lipgloss.Width(lines[0]), panelWidth+2; got != want {
		t.Fatalf("expected top border width %d, got %d", want, got)
	}
	if !strings.Contains(lines[0], "/") {
		t.Fatalf("expected icon to remain visible in title, got %q", lines[0])
	}
}
