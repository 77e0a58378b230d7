package insight

import "github.com/charmbracelet/lipgloss"

var (
	chartTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#EA80FC"))

	chartTabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#667085"))
)

// RenderChartTabs renders the chart mode selector.
func RenderChartTabs(mode ChartMode) string {
	tabs := []struct {
		label string
		mode  ChartMode
	}{
		{label: "[1:Margin]", mode: ChartMargin},
		{label: "[2:Profit]", mode: ChartProfit},
		{label: "[3:Costs]", mode: ChartBreakdown},
	}

	out := ""
	for i, tab := range tabs {
		if i > 0 {
			out += " "
		}
		if tab.mode == mode {
			out += chartTabActiveStyle.Render(tab.label)
		} else {
			out += chartTabInactiveStyle.Render(tab.label)
		}
	}
	return out
}
