package main

import (
	"fmt"
	"math"
	"strings"

	"pnl/insight"

	"github.com/charmbracelet/lipgloss"
)

// renderMarginBar fills |margin| percent of width, capped at 100%.
func renderMarginBar(margin float64, width int) string {
	if width <= 0 {
		return ""
	}

	ratio := math.Min(math.Abs(margin), 100) / 100
	if math.IsNaN(ratio) {
		ratio = 0
	}
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if margin >= 0 {
		return successStyle.Render(bar)
	}
	return dangerStyle.Render(bar)
}

func formatProfit(profit float64) string {
	if profit >= 0 {
		return successStyle.Render(fmt.Sprintf("+$%.2f", profit))
	}
	return dangerStyle.Render(fmt.Sprintf("-$%.2f", -profit))
}

// formatPercent is insight.FormatPercent coloured by sign.
func formatPercent(pct float64) string {
	return toneStyleFor(pct).Render(insight.FormatPercent(pct))
}

// kvLine puts label on the left and value flush right within width.
func kvLine(label, value string, width int) string {
	label = insight.Truncate(label, max(1, width-lipgloss.Width(value)-1))
	gap := max(1, width-lipgloss.Width(label)-lipgloss.Width(value))
	return labelStyle.Render(label) + strings.Repeat(" ", gap) + value
}

// clipLines keeps at most n lines of s.
func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
