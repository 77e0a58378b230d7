package types

import "strings"

// ProfitFilter narrows a product list by the sign of its profit.
type ProfitFilter string

const (
	FilterAll        ProfitFilter = "all"
	FilterProfitable ProfitFilter = "profitable"
	FilterLosing     ProfitFilter = "losing"
)

// ApplyFilter returns only products matching f. Unknown filters keep everything.
func ApplyFilter(in []Product, f ProfitFilter) []Product {
	if len(in) == 0 {
		return nil
	}

	mode := normalizeFilter(f)
	out := make([]Product, 0, len(in))
	for _, p := range in {
		profit := ComputeMetrics(p).Profit
		switch mode {
		case FilterProfitable:
			if profit < 0 {
				continue
			}
		case FilterLosing:
			if profit >= 0 {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func normalizeFilter(f ProfitFilter) ProfitFilter {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case string(FilterProfitable):
		return FilterProfitable
	case string(FilterLosing):
		return FilterLosing
	default:
		return FilterAll
	}
}
