package main

import (
	"fmt"
	"strings"

	"pnl/insight"
	"pnl/types"

	"github.com/charmbracelet/lipgloss"
)

// Pre-rendered ASCII art for "P & L" (figlet standard font).
var introArtLines = []string{
	` ____        ___         _     `,
	`|  _ \      ( _ )       | |    `,
	`| |_) |     / _ \/\     | |    `,
	`|  __/     | (_>  <     | |___ `,
	`|_|         \___/\/     |_____|`,
}

const (
	introBackground = "#1D1D2E"
	introGradientA  = "#7D56F4"
	introGradientB  = "#EA80FC"
)

// introLedgerLine is one step of the P&L formula shown under the banner.
type introLedgerLine struct {
	op    string
	label string
	value float64
}

// introLedger sums the loaded portfolio into revenue, the three cost
// buckets and profit, in formula order.
func introLedger(products []types.Product) []introLedgerLine {
	var revenue, landed, fees, ads float64
	for _, p := range products {
		mt := p.Metrics()
		revenue += p.SellingPrice
		landed += mt.BaseCostTotal
		fees += mt.MarketplaceFees
		ads += mt.AdsSpend
	}
	return []introLedgerLine{
		{op: " ", label: "revenue", value: revenue},
		{op: "-", label: "landed cost", value: landed},
		{op: "-", label: "marketplace fees", value: fees},
		{op: "-", label: "ads spend", value: ads},
		{op: "=", label: "profit", value: types.TotalProfit(products)},
	}
}

// introProgress returns how far the banner reveal, the ledger count-up and
// the fade have advanced, each in [0,1].
func (m Model) introProgress() (reveal, ledger, fade float64) {
	clamp := func(v float64) float64 { return min(1, max(0, v)) }
	tick := float64(m.intro.Tick)
	switch m.intro.Phase {
	case 0:
		return clamp(tick / introRevealTicks), 0, 0
	case 1:
		return 1, clamp((tick - introRevealTicks) / introLedgerTicks), 0
	default:
		return 1, 1, clamp((tick - introRevealTicks - introLedgerTicks) / introFadeTicks)
	}
}

func (m Model) renderIntro() string {
	reveal, ledger, fade := m.introProgress()

	content := []string{"", m.renderIntroBanner(reveal, fade), ""}
	if m.intro.Phase >= 1 {
		subColor := interpolateHexColor(introBackground, "#667085", min(1, ledger*2)*(1-fade))
		content = append(content,
			lipgloss.NewStyle().Foreground(lipgloss.Color(subColor)).Render("marketplace profit & loss"),
			"",
			m.renderIntroLedger(ledger, fade),
		)
	}

	if m.intro.Tick > 5 {
		hintOpacity := min(1.0, float64(m.intro.Tick-5)/10.0) * (1 - fade)
		hintColor := interpolateHexColor(introBackground, "#475467", hintOpacity)
		content = append(content, "", lipgloss.NewStyle().
			Foreground(lipgloss.Color(hintColor)).
			Italic(true).
			Render("press any key to skip"))
	}

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, content...),
	)
}

// renderIntroBanner wipes the art in column by column.
func (m Model) renderIntroBanner(reveal, fade float64) string {
	width := 0
	for _, line := range introArtLines {
		width = max(width, len([]rune(line)))
	}

	rendered := make([]string, len(introArtLines))
	for i, line := range introArtLines {
		runes := []rune(line)
		var b strings.Builder
		for col := 0; col < width; col++ {
			t := float64(col) / float64(max(1, width-1))
			if t > reveal || col >= len(runes) {
				b.WriteRune(' ')
				continue
			}
			appear := min(1, (reveal-t)*4)
			color := interpolateHexColor(introBackground, interpolateHexColor(introGradientA, introGradientB, t), appear)
			color = interpolateHexColor(color, introBackground, fade)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(runes[col])))
		}
		rendered[i] = b.String()
	}
	return strings.Join(rendered, "\n")
}

// renderIntroLedger counts the portfolio P&L up line by line. Without
// products it shows the bare formula.
func (m Model) renderIntroLedger(progress, fade float64) string {
	muted := interpolateHexColor(introBackground, "#98A2B3", 1-fade)
	if len(m.products) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).
			Render("price - landed - fees - ads = profit")
	}

	lines := introLedger(m.products)
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		start := float64(i) / float64(len(lines))
		if progress < start {
			out = append(out, "")
			continue
		}
		count := min(1, (progress-start)*float64(len(lines)))

		valueColor := "#F2F4F7"
		if line.op == "=" {
			valueColor = "#12B76A"
			if line.value < 0 {
				valueColor = "#D92D20"
			}
		}
		valueColor = interpolateHexColor(valueColor, introBackground, fade)

		label := lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).
			Render(fmt.Sprintf("%s %-17s", line.op, line.label))
		value := lipgloss.NewStyle().Foreground(lipgloss.Color(valueColor)).Bold(line.op == "=").
			Render(fmt.Sprintf("%12s", insight.FormatMoney(line.value*count)))
		out = append(out, label+value)
	}
	return strings.Join(out, "\n")
}
