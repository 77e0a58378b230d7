package main

import (
	"fmt"
	"strings"

	"pnl/insight"
	"pnl/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 64
	minHeight = 24

	chartMaxRows = 6
)

// View renders the UI (required by tea.Model interface).
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.intro.Show {
		return m.renderIntro()
	}

	if m.width < minWidth || m.height < minHeight {
		return helpStyle.Render(
			fmt.Sprintf(
				"Terminal too small (%dx%d). Resize to at least %dx%d.",
				m.width,
				m.height,
				minWidth,
				minHeight,
			),
		)
	}

	contentWidth := m.width - 2
	summary := types.Summarize(m.products)

	sections := []string{m.renderAppHeader(contentWidth)}
	if m.showHelp {
		sections = append(sections, m.renderGuidePanel(contentWidth-2))
	}
	sections = append(sections, insight.RenderSummaryCards(summary, contentWidth))

	chart := ""
	if insight.ChartVisible(len(m.products)) {
		chart = m.renderChartPanel(contentWidth-2, m.chartHeight())
	}
	helpBar := m.renderHelpBar()

	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	if chart != "" {
		used += lipgloss.Height(chart)
	}
	used += lipgloss.Height(helpBar)

	// renderPanel adds a title row and a bottom border around the body.
	productsHeight := max(4, m.height-used-2)
	sections = append(sections, m.renderProductsPanel(contentWidth-2, productsHeight))
	if chart != "" {
		sections = append(sections, chart)
	}
	sections = append(sections, helpBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// chartHeight is the chart body height: tabs line plus bars.
func (m Model) chartHeight() int {
	rows := min(len(m.chartRows()), chartMaxRows)
	if m.chartMode == insight.ChartBreakdown {
		rows++ // legend
	}
	return max(3, rows+1)
}

func (m Model) renderAppHeader(contentWidth int) string {
	title := renderGradientText("P & L  Simulator", "#7D56F4", "#EA80FC")
	subtitle := mutedStyle.Render("marketplace unit economics")

	adsActive := m.focusedPanel == panelAds
	adsLabel := labelStyle.Render("Global ads %")
	if adsActive {
		adsLabel = activeTitleStyle.Render("Global ads %")
	}
	ads := adsLabel + " " + m.adsInput.View()
	if adsActive {
		ads += " " + keyStyle.Render("enter") + keyDescStyle.Render(" apply to all")
	} else {
		ads += " " + keyStyle.Render("g") + keyDescStyle.Render(" edit")
	}

	left := title + "  " + subtitle
	gap := max(1, contentWidth-lipgloss.Width(left)-lipgloss.Width(ads))
	line := left + strings.Repeat(" ", gap) + ads
	if lipgloss.Width(line) > contentWidth {
		line = left + "\n" + ads
	}
	separator := renderGradientText(strings.Repeat("━", max(8, contentWidth)), "#7D56F4", "#EA80FC")
	return lipgloss.JoinVertical(lipgloss.Left, line, separator)
}
