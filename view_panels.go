package main

import (
	"fmt"
	"strings"

	"pnl/insight"
	"pnl/types"

	"github.com/charmbracelet/lipgloss"
)

// Card body lines needed for the detailed cost breakdown.
const fullCardLines = 17

func (m Model) renderProductsPanel(width, height int) string {
	active := m.focusedPanel == panelProducts
	flashActive := active && m.focusFlash.Active
	title := fmt.Sprintf("Products (%d)", len(m.products))

	if len(m.products) == 0 {
		content := emptyStyle.Render("~ No products yet ~") + "\n" +
			keyStyle.Render("a") + keyDescStyle.Render(" add a product")
		return renderPanel("#", title, content, width, height, active, flashActive)
	}

	// one line for the scroll indicator, two for card borders
	cardLines := max(3, height-3)
	visible := m.visibleCards()
	start := min(m.cardOffset, max(0, len(m.products)-visible))
	end := min(len(m.products), start+visible)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selected := i == m.selected
		var body string
		if selected && m.editing {
			body = m.renderEditorCard(m.products[i], cardLines)
		} else {
			body = renderProductCard(m.products[i], selected, productCardWidth-4, cardLines)
		}
		cards = append(cards, cardBoxStyle(selected, active).Render(body))
	}

	status := fmt.Sprintf("product %d of %d", m.selected+1, len(m.products))
	if start > 0 {
		status = "‹ " + status
	}
	if end < len(m.products) {
		status += " ›"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		scrollInfoStyle.Render(status),
	)
	return renderPanel("#", title, clipLines(content, height), width, height, active, flashActive)
}

func cardBoxStyle(selected, panelActive bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(productCardWidth - 2)
	if selected {
		style = style.BorderForeground(colorPrimary)
		if panelActive {
			style = style.Border(lipgloss.ThickBorder()).BorderForeground(colorHighlight)
		}
	}
	return style
}

// renderProductCard shows the full breakdown when maxLines allows it and a
// compact totals view otherwise.
func renderProductCard(p types.Product, selected bool, width, maxLines int) string {
	mt := p.Metrics()
	tier := types.TierForMargin(mt.Margin)

	marker := "  "
	if selected {
		marker = highlightStyle.Render("▸ ")
	}
	name := marker + valueStyle.Render(insight.Truncate(p.DisplayName(), width-2))

	badge := tierStyleFor(tier).Render(tier.String())
	priceLine := priceStyle.Render(insight.FormatMoney(p.SellingPrice))
	right := badge + " " + formatPercent(mt.Margin)
	priceLine += strings.Repeat(" ", max(1, width-lipgloss.Width(priceLine)-lipgloss.Width(right))) + right

	lines := []string{
		name,
		priceLine,
		kvLine("Profit", formatProfit(mt.Profit), width),
		separatorStyle.Render(strings.Repeat("╌", width)),
	}

	if maxLines >= fullCardLines {
		lines = append(lines,
			kvLine("Base cost", insight.FormatMoney(p.BaseCost), width),
			kvLine("Shipping", insight.FormatMoney(p.ShippingFees), width),
			kvLine("Duty", insight.FormatMoney(p.DutyFees), width),
			kvLine("Landed total", valueStyle.Render(insight.FormatMoney(mt.BaseCostTotal)), width),
			kvLine(fmt.Sprintf("Referral %s%%", types.FormatAmount(p.ReferralRate)), insight.FormatMoney(mt.ReferralFees), width),
			kvLine("FBA fees", insight.FormatMoney(p.FBAFees), width),
			kvLine("Storage", insight.FormatMoney(p.StorageFees), width),
			kvLine("Other", insight.FormatMoney(p.OtherFees), width),
			kvLine("Fees total", valueStyle.Render(insight.FormatMoney(mt.MarketplaceFees)), width),
		)
	} else {
		lines = append(lines,
			kvLine("Landed cost", insight.FormatMoney(mt.BaseCostTotal), width),
			kvLine("Marketplace fees", insight.FormatMoney(mt.MarketplaceFees), width),
		)
	}

	lines = append(lines,
		kvLine(fmt.Sprintf("Ads %s%%", types.FormatAmount(p.AdsRate)), insight.FormatMoney(mt.AdsSpend), width),
		kvLine("Cost/revenue", fmt.Sprintf("%.2f%%", mt.BaseCostRatio), width),
		renderMarginBar(mt.Margin, width),
	)

	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// renderEditorCard lists every field with its input, scrolling around the
// focused field when the card is short.
func (m Model) renderEditorCard(p types.Product, maxLines int) string {
	width := productCardWidth - 4
	mt := p.Metrics()

	header := []string{
		highlightStyle.Render("✎ ") + valueStyle.Render(insight.Truncate(p.DisplayName(), width-2)),
		kvLine("Profit", formatProfit(mt.Profit)+" "+formatPercent(mt.Margin), width),
	}

	fields := types.Fields()
	rows := make([]string, len(fields))
	const labelWidth = 11
	for i, f := range fields {
		label := fmt.Sprintf("%-*s", labelWidth, insight.Truncate(f.Label(), labelWidth))
		marker := "  "
		if i == m.fieldIndex {
			marker = highlightStyle.Render("▸ ")
			label = activeTitleStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		input := m.fieldInputs[i].View()
		rows[i] = marker + label + " " + mutedStyle.Render(f.Prefix()) + input + mutedStyle.Render(f.Suffix())
	}

	room := max(1, maxLines-len(header))
	start := 0
	if len(rows) > room {
		start = min(max(0, m.fieldIndex-room/2), len(rows)-room)
	}
	end := min(len(rows), start+room)

	lines := append(header, rows[start:end]...)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChartPanel(width, height int) string {
	active := m.focusedPanel == panelChart
	flashActive := active && m.focusFlash.Active

	order := chartOrders[m.chartOrder%len(chartOrders)]
	filter := chartFilters[m.chartFilter%len(chartFilters)]
	inner := max(24, width-2)

	tabs := insight.RenderChartTabs(m.chartMode)
	meta := mutedStyle.Render(fmt.Sprintf("order:%s  filter:%s", order.Label, filter))
	header := tabs + strings.Repeat(" ", max(2, inner-lipgloss.Width(tabs)-lipgloss.Width(meta))) + meta
	if lipgloss.Width(header) > inner {
		header = tabs
	}

	rows := m.chartRows()
	var body []string
	switch {
	case len(rows) == 0:
		body = []string{emptyStyle.Render(fmt.Sprintf("~ no %s products ~", filter))}
	case len(rows) == 1 && m.chartMode != insight.ChartBreakdown:
		body = []string{emptyStyle.Render(fmt.Sprintf("~ only %s matches %s ~", insight.Truncate(rows[0].Name, 20), filter))}
	default:
		maxRows := chartMaxRows
		if m.chartMode == insight.ChartBreakdown {
			maxRows++
		}
		body = insight.RenderComparisonBody(rows, m.chartMode, inner, maxRows, m.chartReveal.Progress())
	}

	content := header + "\n" + strings.Join(body, "\n")
	return renderPanel("~", m.chartMode.Title(), clipLines(content, height), width, height, active, flashActive)
}

func (m Model) renderGuidePanel(width int) string {
	lines := []string{
		valueStyle.Render("How it works"),
		labelStyle.Render("Press ") + keyStyle.Render("e") + labelStyle.Render(" on a card to edit. Every keystroke recomputes."),
		labelStyle.Render("Selling price  ") + textStyle.Render("listing price on the marketplace"),
		labelStyle.Render("Base cost      ") + textStyle.Render("unit purchase cost"),
		labelStyle.Render("Shipping, duty ") + textStyle.Render("freight to the warehouse and import duty"),
		labelStyle.Render("Referral %     ") + textStyle.Render("marketplace commission, usually 15%"),
		labelStyle.Render("FBA, storage   ") + textStyle.Render("fulfilment and storage fees per unit"),
		labelStyle.Render("Ads %          ") + textStyle.Render("ad spend as a share of revenue"),
		successStyle.Render("green") + labelStyle.Render(" = profit  ") + dangerStyle.Render("red") + labelStyle.Render(" = loss"),
	}
	return renderPanel("?", "Guide", strings.Join(lines, "\n"), width, len(lines), false, false)
}

func (m Model) renderHelpBar() string {
	helpModel := m.help
	helpModel.Width = max(0, m.width-2)

	var help string
	if m.editing || m.focusedPanel == panelAds {
		help = helpModel.View(editorHelp{keys: m.keys})
	} else {
		help = helpModel.View(m.keys)
	}

	if m.reduceMotion {
		help = mutedStyle.Render("◌ reduced motion") + "  " + help
	}
	if m.warning != "" {
		help = warningStyle.Render(m.warning) + "  " + help
	}
	if m.exporting {
		return helpStyle.Render(m.spinner.View() + " Exporting " + string(m.exportFormat) + "...\n" + help)
	}
	if m.err != nil {
		errLine := dangerStyle.Render(fmt.Sprintf("Error: %v", m.err))
		return helpStyle.Render(errLine + "\n" + help)
	}
	if m.notice != "" {
		return helpStyle.Render(successStyle.Render(m.notice) + "\n" + help)
	}

	return helpStyle.Render(help)
}
