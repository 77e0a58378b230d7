package insight

import (
	"fmt"
	"math"
	"strings"
)

const (
	colorGain    = "#12B76A"
	colorLoss    = "#D92D20"
	colorNeutral = "#667085"
	colorTrack   = "#344054"
)

// RenderComparisonBody renders one bar per row for the margin or profit chart.
// progress in [0,1] scales bar length for the reveal animation.
func RenderComparisonBody(rows []Row, mode ChartMode, width, maxRows int, progress float64) []string {
	if mode == ChartBreakdown {
		return RenderBreakdownBody(rows, width, maxRows, progress)
	}
	if width < 24 {
		width = 24
	}
	if maxRows < 2 {
		maxRows = 2
	}
	if !ChartVisible(len(rows)) {
		return []string{
			chartTitle(mode),
			"~ add another product to compare ~",
		}
	}

	values := make([]float64, len(rows))
	labels := make([]string, len(rows))
	maxValue := 1.0
	valueWidth := 0
	for i, row := range rows {
		if mode == ChartProfit {
			values[i] = row.Metrics.Profit
			labels[i] = FormatMoney(values[i])
		} else {
			values[i] = row.Metrics.Margin
			labels[i] = FormatPercent(values[i])
		}
		if !math.IsNaN(values[i]) && !math.IsInf(values[i], 0) {
			maxValue = math.Max(maxValue, math.Abs(values[i]))
		}
		valueWidth = maxInt(valueWidth, len([]rune(labels[i])))
	}

	visible, hidden := visibleRows(len(rows), maxRows)
	nameWidth := minInt(16, maxInt(6, width/4))
	barWidth := maxInt(1, width-nameWidth-valueWidth-2)

	lines := make([]string, 0, visible+1)
	for i := 0; i < visible; i++ {
		name := padRight(Truncate(rows[i].Name, nameWidth), nameWidth)
		cells := scaledCells(values[i], maxValue, barWidth, progress)
		bar := paint(barColor(values[i], maxValue), strings.Repeat("█", cells)) +
			paint(colorTrack, strings.Repeat("░", barWidth-cells))
		value := fmt.Sprintf("%*s", valueWidth, labels[i])
		lines = append(lines, clipANSIWidth(name+" "+bar+" "+paint(signColor(values[i]), value), width))
	}
	if hidden > 0 {
		lines = append(lines, fmt.Sprintf("+%d more", hidden))
	}
	return lines
}

// RenderBreakdownBody splits each selling price into landed cost,
// marketplace fees, ads spend and profit segments.
func RenderBreakdownBody(rows []Row, width, maxRows int, progress float64) []string {
	if width < 24 {
		width = 24
	}
	if maxRows < 3 {
		maxRows = 3
	}
	if len(rows) == 0 {
		return []string{
			chartTitle(ChartBreakdown),
			"~ no products ~",
		}
	}

	visible, hidden := visibleRows(len(rows), maxRows-1) // reserve the legend line
	nameWidth := minInt(16, maxInt(6, width/4))
	const priceWidth = 9
	barWidth := maxInt(4, width-nameWidth-priceWidth-2)

	lines := make([]string, 0, visible+2)
	for i := 0; i < visible; i++ {
		row := rows[i]
		m := row.Metrics
		parts := []float64{m.BaseCostTotal, m.MarketplaceFees, m.AdsSpend, math.Max(m.Profit, 0)}
		filled := int(math.Round(float64(barWidth) * clamp01(progress)))
		cells := splitCells(parts, filled)

		var bar strings.Builder
		used := 0
		for j, n := range cells {
			bar.WriteString(paint(segmentColors[j], strings.Repeat(segmentGlyphs[j], n)))
			used += n
		}
		bar.WriteString(paint(colorTrack, strings.Repeat("░", barWidth-used)))

		tail := fmt.Sprintf("%*s", priceWidth, FormatMoney(row.Price))
		if m.Profit < 0 {
			tail = paint(colorLoss, fmt.Sprintf("%*s", priceWidth, "✗"+FormatMoney(m.Profit)))
		}

		name := padRight(Truncate(row.Name, nameWidth), nameWidth)
		lines = append(lines, clipANSIWidth(name+" "+bar.String()+" "+tail, width))
	}
	if hidden > 0 {
		lines = append(lines, fmt.Sprintf("+%d more", hidden))
	}
	lines = append(lines, clipANSIWidth(renderBreakdownLegend(), width))
	return lines
}

var (
	segmentColors = []string{"#98A2B3", "#F79009", "#EA80FC", colorGain}
	segmentGlyphs = []string{"▓", "▒", "▒", "█"}
	segmentNames  = []string{"landed", "fees", "ads", "profit"}
)

func renderBreakdownLegend() string {
	parts := make([]string, len(segmentNames))
	for i, name := range segmentNames {
		parts[i] = paint(segmentColors[i], segmentGlyphs[i]) + " " + name
	}
	return strings.Join(parts, "  ")
}

func visibleRows(total, maxRows int) (visible, hidden int) {
	if total <= maxRows {
		return total, 0
	}
	visible = maxInt(1, maxRows-1) // one line for the overflow note
	return visible, total - visible
}

func signColor(v float64) string {
	switch {
	case v > 0:
		return colorGain
	case v < 0:
		return colorLoss
	default:
		return colorNeutral
	}
}

// barColor fades the sign colour toward neutral as |v| shrinks relative
// to maxValue, so small margins read as weaker bars.
func barColor(v, maxValue float64) string {
	strength := 1.0
	if !math.IsInf(v, 0) {
		strength = clamp01(math.Abs(v) / maxValue)
	}
	return blendHex(colorNeutral, signColor(v), 0.35+0.65*strength)
}

func chartTitle(mode ChartMode) string {
	switch mode {
	case ChartProfit:
		return "Profit Comparison"
	case ChartBreakdown:
		return "Cost Breakdown"
	default:
		return "Margin Comparison"
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
