package types

import (
	"sort"
	"strings"
)

// SortField selects which product attribute to order by.
type SortField string

const (
	SortFieldInput  SortField = "input"
	SortFieldMargin SortField = "margin"
	SortFieldProfit SortField = "profit"
	SortFieldPrice  SortField = "price"
	SortFieldName   SortField = "name"
)

// SortDirection selects ascending or descending sort order.
type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

// SortProducts returns a sorted copy of in. Equal keys keep input order,
// and SortFieldInput returns the copy unchanged.
func SortProducts(in []Product, field SortField, dir SortDirection) []Product {
	out := append([]Product(nil), in...)
	field = normalizeSortField(field)
	if len(out) <= 1 || field == SortFieldInput {
		return out
	}
	dir = normalizeSortDirection(dir)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareProducts(out[i], out[j], field)
		if cmp == 0 {
			return false
		}
		if dir == SortDirectionDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

func normalizeSortField(field SortField) SortField {
	switch strings.ToLower(strings.TrimSpace(string(field))) {
	case string(SortFieldMargin):
		return SortFieldMargin
	case string(SortFieldProfit):
		return SortFieldProfit
	case string(SortFieldPrice):
		return SortFieldPrice
	case string(SortFieldName):
		return SortFieldName
	default:
		return SortFieldInput
	}
}

func normalizeSortDirection(dir SortDirection) SortDirection {
	switch strings.ToLower(strings.TrimSpace(string(dir))) {
	case string(SortDirectionDesc):
		return SortDirectionDesc
	default:
		return SortDirectionAsc
	}
}

func compareProducts(a, b Product, field SortField) int {
	switch field {
	case SortFieldName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortFieldPrice:
		return compareFloat(a.SellingPrice, b.SellingPrice)
	case SortFieldProfit:
		return compareFloat(ComputeMetrics(a).Profit, ComputeMetrics(b).Profit)
	default:
		return compareFloat(ComputeMetrics(a).Margin, ComputeMetrics(b).Margin)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
