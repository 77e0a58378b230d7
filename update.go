package main

import (
	"fmt"
	"time"

	"pnl/insight"
	"pnl/types"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Total ticks for each intro phase.
const (
	introRevealTicks = 30 // banner wipe
	introLedgerTicks = 15 // portfolio P&L count-up
	introFadeTicks   = 8  // fade out
	introTotalTicks  = introRevealTicks + introLedgerTicks + introFadeTicks
)

const chartRevealSteps = 12

// Update handles messages and updates the model (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case introTickMsg:
		if !m.intro.Show {
			return m, nil
		}
		m.intro.Tick++

		if m.intro.Tick < introRevealTicks {
			m.intro.Phase = 0
		} else if m.intro.Tick < introRevealTicks+introLedgerTicks {
			m.intro.Phase = 1
		} else if m.intro.Tick < introTotalTicks {
			m.intro.Phase = 2
		} else {
			return m.finishIntro()
		}

		return m, tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
			return introTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.ensureSelectedVisible()
		return m, nil

	case exportResultMsg:
		m.exporting = false
		if msg.Err != nil {
			m.err = msg.Err
			m.notice = ""
			m.logger.Error().Err(msg.Err).Str("path", msg.Path).Msg("export failed")
			return m, nil
		}
		m.err = nil
		m.notice = "Exported to " + msg.Path
		m.logger.Info().Str("path", msg.Path).Int("products", len(m.products)).Msg("export written")
		return m, nil

	case focusFlashTickMsg:
		if msg.gen != m.focusFlash.Gen || !m.focusFlash.Active {
			return m, nil
		}
		if m.focusFlash.Ticks <= 1 {
			m.focusFlash.Ticks = 0
			m.focusFlash.Active = false
			return m, nil
		}
		m.focusFlash.Ticks--
		gen := m.focusFlash.Gen
		return m, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
			return focusFlashTickMsg{gen: gen}
		})

	case chartRevealTickMsg:
		if msg.gen != m.chartReveal.Gen || !m.chartReveal.Active {
			return m, nil
		}
		m.chartReveal.Step++
		if m.chartReveal.Step >= m.chartReveal.Steps {
			m.chartReveal.Step = m.chartReveal.Steps
			m.chartReveal.Active = false
			return m, nil
		}
		gen := m.chartReveal.Gen
		return m, tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg {
			return chartRevealTickMsg{gen: gen}
		})

	case spinner.TickMsg:
		if m.exporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		updated, cmd := m.handleKeyMsg(msg)
		return updated, cmd
	}

	return m, nil
}

// finishIntro hides the intro and starts the first chart reveal.
func (m Model) finishIntro() (Model, tea.Cmd) {
	m.intro.Show = false
	m.intro.Completed = true
	return m.startChartReveal()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.intro.Show {
		return m.finishIntro()
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Text inputs own the keyboard while they are focused.
	if m.editing {
		return m.handleEditorKeys(msg)
	}
	if m.focusedPanel == panelAds {
		return m.handleAdsKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		return m.changeFocus(m.nextPanel(1))

	case key.Matches(msg, m.keys.ShiftTab):
		return m.changeFocus(m.nextPanel(-1))

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.ToggleAnim):
		m = m.toggleReduceMotion()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.startExport()

	case key.Matches(msg, m.keys.AdsRate):
		return m.changeFocus(panelAds)

	case key.Matches(msg, m.keys.Add):
		return m.addProduct()

	case key.Matches(msg, m.keys.ChartMrg):
		return m.changeChartMode(insight.ChartMargin)

	case key.Matches(msg, m.keys.ChartPft):
		return m.changeChartMode(insight.ChartProfit)

	case key.Matches(msg, m.keys.ChartCost):
		return m.changeChartMode(insight.ChartBreakdown)

	case key.Matches(msg, m.keys.Order):
		m.chartOrder = (m.chartOrder + 1) % len(chartOrders)
		return m.startChartReveal()

	case key.Matches(msg, m.keys.Filter):
		m.chartFilter = (m.chartFilter + 1) % len(chartFilters)
		return m.startChartReveal()

	case key.Matches(msg, m.keys.Escape):
		m.notice = ""
		m.err = nil
		return m.changeFocus(panelProducts)
	}

	switch m.focusedPanel {
	case panelProducts:
		return m.handleProductKeys(msg)
	case panelChart:
		return m.handleChartKeys(msg)
	}

	return m, nil
}

// nextPanel steps focus by delta, skipping the chart while it is hidden.
func (m Model) nextPanel(delta int) int {
	next := m.focusedPanel
	for i := 0; i < panelCount; i++ {
		next = (next + delta + panelCount) % panelCount
		if next == panelChart && !insight.ChartVisible(len(m.products)) {
			continue
		}
		return next
	}
	return m.focusedPanel
}

func (m Model) handleProductKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
			m = m.ensureSelectedVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.selected < len(m.products)-1 {
			m.selected++
			m = m.ensureSelectedVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if _, ok := m.selectedProduct(); ok {
			m = m.openEditor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Duplicate):
		return m.duplicateSelected()

	case key.Matches(msg, m.keys.Remove):
		return m.removeSelected()
	}
	return m, nil
}

func (m Model) handleChartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Right):
		return m.changeChartMode(m.chartMode.Next())
	case key.Matches(msg, m.keys.Left):
		return m.changeChartMode(m.chartMode.Next().Next())
	}
	return m, nil
}

func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m = m.closeEditor()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.fieldIndex == len(m.fieldInputs)-1 {
			m = m.closeEditor()
			return m, nil
		}
		m = m.focusField(m.fieldIndex + 1)
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m = m.focusField((m.fieldIndex + 1) % len(m.fieldInputs))
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m = m.focusField((m.fieldIndex - 1 + len(m.fieldInputs)) % len(m.fieldInputs))
		return m, nil
	}

	if m.selected < 0 || m.selected >= len(m.products) {
		m = m.closeEditor()
		return m, nil
	}

	m.fieldInputs = append([]textinput.Model(nil), m.fieldInputs...)
	var cmd tea.Cmd
	m.fieldInputs[m.fieldIndex], cmd = m.fieldInputs[m.fieldIndex].Update(msg)

	// Copy before writing so earlier Model values keep their products.
	products := append([]types.Product(nil), m.products...)
	products[m.selected].SetText(types.Fields()[m.fieldIndex], m.fieldInputs[m.fieldIndex].Value())
	m.products = products
	return m, cmd
}

func (m Model) handleAdsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.changeFocus(panelProducts)

	case key.Matches(msg, m.keys.Tab):
		return m.changeFocus(m.nextPanel(1))

	case key.Matches(msg, m.keys.ShiftTab):
		return m.changeFocus(m.nextPanel(-1))

	case key.Matches(msg, m.keys.Enter):
		m = m.applyGlobalAdsRate()
		return m, nil
	}

	var cmd tea.Cmd
	m.adsInput, cmd = m.adsInput.Update(msg)
	m.globalAdsRate = types.ParseAmount(m.adsInput.Value())
	return m, cmd
}

// applyGlobalAdsRate copies the global ads rate onto every product.
func (m Model) applyGlobalAdsRate() Model {
	products := make([]types.Product, len(m.products))
	for i, p := range m.products {
		p.AdsRate = m.globalAdsRate
		products[i] = p
	}
	m.products = products
	m.err = nil
	m.notice = fmt.Sprintf("Applied %s%% ads to %d products", types.FormatAmount(m.globalAdsRate), len(products))
	m.logger.Info().Float64("ads_rate", m.globalAdsRate).Int("products", len(products)).Msg("global ads rate applied")
	return m
}

func (m Model) addProduct() (tea.Model, tea.Cmd) {
	p := types.NewProduct(m.referralRate, m.globalAdsRate)
	m.products = append(append([]types.Product(nil), m.products...), p)
	m.selected = len(m.products) - 1
	m = m.ensureSelectedVisible()
	m.logger.Debug().Str("id", p.ID.String()).Msg("product added")

	var cmd tea.Cmd
	m, cmd = m.focusProducts()
	m = m.openEditor()
	if len(m.products) == 2 {
		// The chart appears with the second product.
		var reveal tea.Cmd
		m, reveal = m.startChartReveal()
		cmd = tea.Batch(cmd, reveal)
	}
	return m, cmd
}

func (m Model) duplicateSelected() (tea.Model, tea.Cmd) {
	p, ok := m.selectedProduct()
	if !ok {
		return m, nil
	}
	dup := p.Duplicate()
	m.products = append(append([]types.Product(nil), m.products...), dup)
	m.selected = len(m.products) - 1
	m = m.ensureSelectedVisible()
	m.notice = "Duplicated " + p.DisplayName()
	m.logger.Debug().Str("id", dup.ID.String()).Str("source", p.ID.String()).Msg("product duplicated")
	if len(m.products) == 2 {
		return m.startChartReveal()
	}
	return m, nil
}

func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	p, ok := m.selectedProduct()
	if !ok {
		return m, nil
	}
	products := make([]types.Product, 0, len(m.products)-1)
	products = append(products, m.products[:m.selected]...)
	products = append(products, m.products[m.selected+1:]...)
	m.products = products
	if m.selected >= len(m.products) {
		m.selected = max(0, len(m.products)-1)
	}
	if m.editing {
		m = m.closeEditor()
	}
	if m.focusedPanel == panelChart && !insight.ChartVisible(len(m.products)) {
		m.focusedPanel = panelProducts
	}
	m = m.ensureSelectedVisible()
	m.notice = "Removed " + p.DisplayName()
	m.logger.Debug().Str("id", p.ID.String()).Msg("product removed")
	return m, nil
}

// openEditor loads the selected product into the field inputs.
func (m Model) openEditor() Model {
	p, ok := m.selectedProduct()
	if !ok {
		return m
	}
	m.fieldInputs = append([]textinput.Model(nil), m.fieldInputs...)
	for i, f := range types.Fields() {
		m.fieldInputs[i].SetValue(p.Text(f))
	}
	m.editing = true
	return m.focusField(0)
}

func (m Model) closeEditor() Model {
	m.editing = false
	m.fieldInputs = append([]textinput.Model(nil), m.fieldInputs...)
	for i := range m.fieldInputs {
		m.fieldInputs[i].Blur()
	}
	return m
}

func (m Model) focusField(index int) Model {
	if index < 0 || index >= len(m.fieldInputs) {
		return m
	}
	m.fieldInputs = append([]textinput.Model(nil), m.fieldInputs...)
	for i := range m.fieldInputs {
		m.fieldInputs[i].Blur()
	}
	m.fieldIndex = index
	m.fieldInputs[index].Focus()
	m.fieldInputs[index].CursorEnd()
	return m
}

// ensureSelectedVisible scrolls the card strip so the selected card is shown.
func (m Model) ensureSelectedVisible() Model {
	visible := m.visibleCards()
	if m.selected < m.cardOffset {
		m.cardOffset = m.selected
	}
	if m.selected >= m.cardOffset+visible {
		m.cardOffset = m.selected - visible + 1
	}
	if maxOffset := max(0, len(m.products)-visible); m.cardOffset > maxOffset {
		m.cardOffset = maxOffset
	}
	if m.cardOffset < 0 {
		m.cardOffset = 0
	}
	return m
}

func (m Model) changeChartMode(mode insight.ChartMode) (tea.Model, tea.Cmd) {
	if m.chartMode == mode {
		return m, nil
	}
	m.chartMode = mode
	return m.startChartReveal()
}

// startChartReveal restarts the bar growth animation. Value edits do not call
// this, so bars track typing without replaying.
func (m Model) startChartReveal() (Model, tea.Cmd) {
	m.chartReveal.Gen++
	if m.reduceMotion || !insight.ChartVisible(len(m.products)) {
		m.chartReveal.Active = false
		m.chartReveal.Step = 0
		m.chartReveal.Steps = 0
		return m, nil
	}
	m.chartReveal.Active = true
	m.chartReveal.Step = 0
	m.chartReveal.Steps = chartRevealSteps
	gen := m.chartReveal.Gen
	return m, tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg {
		return chartRevealTickMsg{gen: gen}
	})
}

func (m Model) toggleReduceMotion() Model {
	m.reduceMotion = !m.reduceMotion
	if !m.reduceMotion {
		return m
	}

	// Snap every animation channel to a stable resting state immediately.
	m.focusFlash.Gen++
	m.focusFlash.Active = false
	m.focusFlash.Ticks = 0

	m.chartReveal.Gen++
	m.chartReveal.Active = false
	m.chartReveal.Step = 0
	m.chartReveal.Steps = 0

	return m
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	if len(m.products) == 0 {
		m.err = nil
		m.notice = "Nothing to export"
		return m, nil
	}
	m.exporting = true
	m.err = nil
	m.notice = ""
	path := BuildExportPath(m.exportDir, "products", string(m.exportFormat), m.now())
	return m, tea.Batch(m.spinner.Tick, exportCmd(m.exportFormat, path, m.products))
}

func exportCmd(format ExportFormat, path string, products []types.Product) tea.Cmd {
	snapshot := append([]types.Product(nil), products...)
	return func() tea.Msg {
		return exportResultMsg{Path: path, Err: Export(format, path, snapshot)}
	}
}

// updateFocus manages focus state for text inputs.
func (m Model) updateFocus() Model {
	if m.focusedPanel == panelAds {
		m.adsInput.Focus()
		m.adsInput.CursorEnd()
	} else {
		m.adsInput.Blur()
	}
	return m
}

func (m Model) focusProducts() (Model, tea.Cmd) {
	updated, cmd := m.changeFocus(panelProducts)
	return updated.(Model), cmd
}

func (m Model) changeFocus(newPanel int) (tea.Model, tea.Cmd) {
	if m.focusedPanel == newPanel {
		m = m.updateFocus()
		return m, nil
	}

	m.focusedPanel = newPanel
	m = m.updateFocus()
	m.focusFlash.Gen++
	if m.reduceMotion {
		m.focusFlash.Ticks = 0
		m.focusFlash.Active = false
		return m, nil
	}
	m.focusFlash.Ticks = 3
	m.focusFlash.Active = true
	gen := m.focusFlash.Gen

	return m, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return focusFlashTickMsg{gen: gen}
	})
}
