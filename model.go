package main

import (
	"strings"
	"time"

	"pnl/insight"
	"pnl/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Panel focus states
const (
	panelProducts = iota
	panelChart
	panelAds
	panelCount
)

// Width of one product card including its border.
const productCardWidth = 36

// IntroAnimation groups intro animation state.
type IntroAnimation struct {
	Show      bool
	Completed bool
	Tick      int
	Phase     int // 0=banner wipe, 1=ledger count-up, 2=fade out
}

// FocusFlash groups focus highlight animation state.
type FocusFlash struct {
	Ticks  int
	Gen    int
	Active bool
}

// ChartReveal grows the comparison bars from zero to full length.
type ChartReveal struct {
	Step   int
	Steps  int
	Gen    int
	Active bool
}

// Progress returns how far the bars have grown, in [0,1].
func (r ChartReveal) Progress() float64 {
	if !r.Active || r.Steps <= 0 {
		return 1
	}
	return float64(r.Step) / float64(r.Steps)
}

// chartOrder is one entry of the chart ordering cycle.
type chartOrder struct {
	Field types.SortField
	Dir   types.SortDirection
	Label string
}

var chartOrders = []chartOrder{
	{Field: types.SortFieldInput, Dir: types.SortDirectionAsc, Label: "input"},
	{Field: types.SortFieldMargin, Dir: types.SortDirectionDesc, Label: "margin ↓"},
	{Field: types.SortFieldProfit, Dir: types.SortDirectionDesc, Label: "profit ↓"},
	{Field: types.SortFieldPrice, Dir: types.SortDirectionDesc, Label: "price ↓"},
	{Field: types.SortFieldName, Dir: types.SortDirectionAsc, Label: "name"},
}

var chartFilters = []types.ProfitFilter{
	types.FilterAll,
	types.FilterProfitable,
	types.FilterLosing,
}

// Model represents the application state.
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Shared components
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	showHelp bool

	// Intro animation
	intro IntroAnimation

	// Focus management
	focusedPanel int

	// Products
	products   []types.Product
	selected   int
	cardOffset int

	// Editor
	editing     bool
	fieldIndex  int
	fieldInputs []textinput.Model

	// Global ads rate
	adsInput      textinput.Model
	globalAdsRate float64
	referralRate  float64

	// Chart
	chartMode   insight.ChartMode
	chartOrder  int
	chartFilter int

	// Export
	exportDir    string
	exportFormat ExportFormat
	exporting    bool

	// State
	notice  string
	warning string
	err     error
	logger  zerolog.Logger
	now     func() time.Time

	// Animations
	reduceMotion bool
	focusFlash   FocusFlash
	chartReveal  ChartReveal
}

// NewModel creates a new application model with initial state.
func NewModel(cfg Config, logger zerolog.Logger) Model {
	fields := types.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 14
		ti.Width = 14
		if !f.Numeric() {
			ti.CharLimit = 80
			ti.Placeholder = "Product name"
		}
		inputs[i] = ti
	}

	ai := textinput.New()
	ai.Prompt = ""
	ai.CharLimit = 6
	ai.Width = 6
	ai.SetValue(types.FormatAmount(cfg.AdsRate))

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	hp := help.New()
	hp.ShortSeparator = "  "
	hp.FullSeparator = "   "
	hp.Styles.ShortKey = keyStyle
	hp.Styles.ShortDesc = keyDescStyle
	hp.Styles.ShortSeparator = separatorStyle
	hp.Styles.Ellipsis = separatorStyle
	hp.Styles.FullKey = keyStyle
	hp.Styles.FullDesc = keyDescStyle
	hp.Styles.FullSeparator = separatorStyle

	warning := ""
	if len(cfg.Warnings) > 0 {
		warning = strings.Join(cfg.Warnings, "; ")
	}

	var products []types.Product
	if cfg.LoadSamples {
		products = types.SampleProducts()
	}

	return Model{
		keys:          defaultKeyMap(),
		help:          hp,
		spinner:       sp,
		intro:         IntroAnimation{Show: !cfg.SkipIntro && !cfg.ReduceMotion, Completed: cfg.SkipIntro || cfg.ReduceMotion},
		focusedPanel:  panelProducts,
		products:      products,
		fieldInputs:   inputs,
		adsInput:      ai,
		globalAdsRate: cfg.AdsRate,
		referralRate:  cfg.ReferralRate,
		chartMode:     insight.ChartMargin,
		exportDir:     cfg.ExportDir,
		exportFormat:  cfg.ExportFormat,
		logger:        logger,
		now:           time.Now,
		reduceMotion:  cfg.ReduceMotion,
		warning:       warning,
	}
}

// Init initializes the model (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	if !m.intro.Show {
		return textinput.Blink
	}
	return tea.Batch(
		textinput.Blink,
		tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
			return introTickMsg{}
		}),
	)
}

// chartRows returns the filtered, ordered rows fed to the comparison chart.
func (m Model) chartRows() []insight.Row {
	order := chartOrders[m.chartOrder%len(chartOrders)]
	filtered := types.ApplyFilter(m.products, chartFilters[m.chartFilter%len(chartFilters)])
	return insight.BuildRows(types.SortProducts(filtered, order.Field, order.Dir))
}

// visibleCards returns how many product cards fit side by side.
func (m Model) visibleCards() int {
	return max(1, (m.width-6)/productCardWidth)
}

func (m Model) selectedProduct() (types.Product, bool) {
	if m.selected < 0 || m.selected >= len(m.products) {
		return types.Product{}, false
	}
	return m.products[m.selected], true
}

type exportResultMsg struct {
	Path string
	Err  error
}

type focusFlashTickMsg struct {
	gen int
}

type chartRevealTickMsg struct {
	gen int
}

type introTickMsg struct{}
