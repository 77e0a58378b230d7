package insight

import (
	"fmt"

	"pnl/types"

	"github.com/charmbracelet/lipgloss"
)

// Card is one summary tile.
type Card struct {
	Label  string
	Value  string
	Sub    string
	Accent string
}

const (
	accentIndigo = "#6366F1"
	accentGreen  = "#16A34A"
	accentYellow = "#EAB308"
	accentRed    = "#DC2626"
)

// SummaryCards builds the four summary tiles for s.
func SummaryCards(s types.Summary) []Card {
	health := types.HealthForMargin(s.AverageMargin)
	healthAccent := accentGreen
	switch health {
	case types.MarginLow:
		healthAccent = accentYellow
	case types.MarginNegative:
		healthAccent = accentRed
	}

	best := Card{Label: "BEST PRODUCT", Value: "N/A", Accent: accentGreen}
	if s.HasBest {
		best.Value = truncateRunes(s.Best.Name, 20)
		if best.Value == "" {
			best.Value = s.Best.DisplayName()
		}
		best.Sub = FormatPercent(s.BestMargin) + " margin"
	}

	return []Card{
		{Label: "PRODUCTS", Value: fmt.Sprintf("%d", s.Count), Sub: "products", Accent: accentIndigo},
		{Label: "AVG MARGIN", Value: FormatPercent(s.AverageMargin), Sub: string(health), Accent: healthAccent},
		best,
		{Label: "LOSING", Value: fmt.Sprintf("%d", s.LossCount), Sub: fmt.Sprintf("/ %d products", s.Count), Accent: accentRed},
	}
}

// RenderSummaryCards lays the cards out in one row, or two rows when narrow.
func RenderSummaryCards(s types.Summary, width int) string {
	cards := SummaryCards(s)
	perRow := len(cards)
	if width < 72 {
		perRow = 2
	}

	// each card adds two border columns
	cardWidth := maxInt(12, width/perRow-2)

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := minInt(len(cards), start+perRow)
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, renderCard(c, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c Card, width int) string {
	inner := maxInt(1, width-2)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#667085")).Render(Truncate(c.Label, inner))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true).Render(Truncate(c.Value, inner))
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#475467")).Render(Truncate(c.Sub, inner))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, label, value, sub))
}

// truncateRunes cuts s to n runes without an ellipsis.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
