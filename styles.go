package main

import (
	"strings"

	"pnl/insight"
	"pnl/types"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color palette
var (
	colorPrimary      = lipgloss.AdaptiveColor{Light: "#7928CA", Dark: "#7D56F4"}
	colorSuccess      = lipgloss.AdaptiveColor{Light: "#12B76A", Dark: "#73F59F"}
	colorWarning      = lipgloss.AdaptiveColor{Light: "#DC6803", Dark: "#F79009"}
	colorDanger       = lipgloss.AdaptiveColor{Light: "#D92D20", Dark: "#F97066"}
	colorMuted        = lipgloss.AdaptiveColor{Light: "#98A2B3", Dark: "#667085"}
	colorText         = lipgloss.AdaptiveColor{Light: "#1D2939", Dark: "#F2F4F7"}
	colorHighlight    = lipgloss.AdaptiveColor{Light: "#E040FB", Dark: "#EA80FC"}
	colorBorder       = lipgloss.AdaptiveColor{Light: "#D0D5DD", Dark: "#475467"}
	colorBorderActive = lipgloss.AdaptiveColor{Light: "#7928CA", Dark: "#7D56F4"}
	colorSubtle       = lipgloss.AdaptiveColor{Light: "#EAECF0", Dark: "#344054"}
)

// Margin tier badge styles
var (
	tierStrongStyle = lipgloss.NewStyle().Foreground(colorSuccess).Background(lipgloss.Color("#0F2F1F")).Bold(true).Padding(0, 1)
	tierFairStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")).Background(lipgloss.Color("#2E2A0F")).Bold(true).Padding(0, 1)
	tierThinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FB923C")).Background(lipgloss.Color("#33200F")).Bold(true).Padding(0, 1)
	tierLossStyle   = lipgloss.NewStyle().Foreground(colorDanger).Background(lipgloss.Color("#2E1111")).Bold(true).Padding(0, 1)
)

// Panel styles
var (
	// Base panel style with border
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Padding(0, 1)

	// Active (focused) panel style
	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorBorderActive).
				Foreground(colorText).
				Padding(0, 1)

	// Panel title style
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Active title style
	activeTitleStyle = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Bold(true)

	// Highlight style for panel icons
	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)
)

// Text styles
var (
	// Normal text
	textStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// Muted/help text
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Success/profit text
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// Warning text
	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Danger/negative text
	dangerStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	// Price style
	priceStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// Key badge style
	keyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSubtle).
			Bold(true).
			Padding(0, 1)

	// Key description style
	keyDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Label style
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Value style
	valueStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	// Separator style
	separatorStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	// Empty state style
	emptyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	// Scroll indicator style
	scrollInfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Help bar style
var helpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	MarginTop(1)

func tierStyleFor(tier types.MarginTier) lipgloss.Style {
	switch tier {
	case types.MarginTierStrong:
		return tierStrongStyle
	case types.MarginTierFair:
		return tierFairStyle
	case types.MarginTierThin:
		return tierThinStyle
	default:
		return tierLossStyle
	}
}

// toneStyleFor colours a value green when positive, red when negative, muted at zero.
func toneStyleFor(v float64) lipgloss.Style {
	switch {
	case v > 0:
		return successStyle
	case v < 0:
		return dangerStyle
	default:
		return mutedStyle
	}
}

func renderGradientText(text, colorA, colorB string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) == 1 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorA)).Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes)-1)
		color := interpolateHexColor(colorA, colorB, t)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return b.String()
}

func interpolateHexColor(colorA, colorB string, t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	start, err := colorful.Hex(colorA)
	if err != nil {
		return colorA
	}
	end, err := colorful.Hex(colorB)
	if err != nil {
		return colorB
	}
	return start.BlendHsv(end, t).Clamped().Hex()
}

// renderPanel creates a styled panel with title.
func renderPanel(icon, label, content string, width, height int, active, flashActive bool) string {
	style := panelStyle
	tStyle := titleStyle
	borderColor := colorBorder
	leftCorner := "╭─"
	rightCorner := "╮"
	dash := "─"

	if active {
		style = activePanelStyle
		tStyle = activeTitleStyle
		borderColor = colorBorderActive
		leftCorner = "┏━"
		rightCorner = "┓"
		dash = "━"
	}
	if flashActive && active {
		borderColor = colorHighlight
	}

	if width < 4 {
		width = 4
	}
	if height < 1 {
		height = 1
	}

	maxTitleWidth := width - 2
	if maxTitleWidth < 1 {
		maxTitleWidth = 1
	}

	styledTitle := renderPanelTitle(icon, label, tStyle, maxTitleWidth)
	titleWidth := lipgloss.Width(styledTitle)
	rightDashCount := max(0, width-titleWidth-1)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	topBorder := borderStyle.Render(leftCorner) + styledTitle + borderStyle.Render(strings.Repeat(dash, rightDashCount)+rightCorner)

	contentBox := style.
		BorderForeground(borderColor).
		Width(width).
		Height(height).
		BorderTop(false).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, topBorder, contentBox)
}

func renderPanelTitle(icon, label string, titleTextStyle lipgloss.Style, maxTitleWidth int) string {
	icon = strings.TrimSpace(icon)
	if maxTitleWidth < 1 {
		return ""
	}

	if icon == "" {
		return fitStyledTitle(label, titleTextStyle, maxTitleWidth)
	}

	iconWidth := lipgloss.Width(icon)
	if iconWidth >= maxTitleWidth {
		return highlightStyle.Render(insight.Truncate(icon, maxTitleWidth))
	}

	labelWidth := maxTitleWidth - iconWidth - 1
	if labelWidth <= 0 {
		return highlightStyle.Render(icon)
	}

	rawLabel := insight.Truncate(label, labelWidth)
	styledTitle := highlightStyle.Render(icon) + " " + titleTextStyle.Render(rawLabel)
	for lipgloss.Width(styledTitle) > maxTitleWidth && labelWidth > 0 {
		labelWidth--
		rawLabel = insight.Truncate(label, labelWidth)
		if rawLabel == "" {
			styledTitle = highlightStyle.Render(icon)
			break
		}
		styledTitle = highlightStyle.Render(icon) + " " + titleTextStyle.Render(rawLabel)
	}

	if lipgloss.Width(styledTitle) > maxTitleWidth {
		return highlightStyle.Render(insight.Truncate(icon, maxTitleWidth))
	}

	return styledTitle
}

func fitStyledTitle(raw string, s lipgloss.Style, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	allowed := maxWidth
	trimmed := insight.Truncate(raw, allowed)
	styled := s.Render(trimmed)
	for lipgloss.Width(styled) > maxWidth && allowed > 0 {
		allowed--
		trimmed = insight.Truncate(raw, allowed)
		styled = s.Render(trimmed)
	}

	if lipgloss.Width(styled) > maxWidth {
		return s.Render("…")
	}
	return styled
}
