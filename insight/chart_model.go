package insight

import (
	"pnl/types"
)

// ChartMode controls which comparison chart is active in the UI.
type ChartMode int

const (
	ChartMargin ChartMode = iota
	ChartProfit
	ChartBreakdown
)

// Next cycles through the chart modes.
func (m ChartMode) Next() ChartMode {
	return (m + 1) % 3
}

func (m ChartMode) String() string {
	switch m {
	case ChartProfit:
		return "profit"
	case ChartBreakdown:
		return "breakdown"
	default:
		return "margin"
	}
}

// Title is the panel heading for the mode.
func (m ChartMode) Title() string {
	return chartTitle(m)
}

// Row is one product prepared for charting.
type Row struct {
	Name    string
	Price   float64
	Metrics types.Metrics
}

// BuildRows computes chart rows in product order.
func BuildRows(products []types.Product) []Row {
	rows := make([]Row, len(products))
	for i, p := range products {
		rows[i] = Row{
			Name:    p.DisplayName(),
			Price:   p.SellingPrice,
			Metrics: types.ComputeMetrics(p),
		}
	}
	return rows
}

// ChartVisible reports whether a comparison chart makes sense for n products.
func ChartVisible(n int) bool {
	return n > 1
}
