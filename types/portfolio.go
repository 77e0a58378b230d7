package types

// Summary aggregates metrics across a product list.
type Summary struct {
	Count         int
	Best          Product
	HasBest       bool
	BestMargin    float64
	TotalProfit   float64
	AverageMargin float64
	LossCount     int
}

// BestProduct returns the product with the highest margin.
// Ties keep the first product in input order. ok is false for an empty list.
func BestProduct(products []Product) (best Product, ok bool) {
	if len(products) == 0 {
		return Product{}, false
	}

	best = products[0]
	bestMargin := ComputeMetrics(best).Margin
	for _, p := range products[1:] {
		if margin := ComputeMetrics(p).Margin; margin > bestMargin {
			best = p
			bestMargin = margin
		}
	}
	return best, true
}

// TotalProfit sums profit across products.
func TotalProfit(products []Product) float64 {
	var total float64
	for _, p := range products {
		total += ComputeMetrics(p).Profit
	}
	return total
}

// AverageMargin returns the mean margin, or 0 for an empty list.
func AverageMargin(products []Product) float64 {
	if len(products) == 0 {
		return 0
	}

	var sum float64
	for _, p := range products {
		sum += ComputeMetrics(p).Margin
	}
	return sum / float64(len(products))
}

// LossCount counts products with negative profit.
func LossCount(products []Product) int {
	count := 0
	for _, p := range products {
		if ComputeMetrics(p).Profit < 0 {
			count++
		}
	}
	return count
}

// Summarize computes every aggregate in one call.
func Summarize(products []Product) Summary {
	s := Summary{
		Count:         len(products),
		TotalProfit:   TotalProfit(products),
		AverageMargin: AverageMargin(products),
		LossCount:     LossCount(products),
	}
	s.Best, s.HasBest = BestProduct(products)
	if s.HasBest {
		s.BestMargin = ComputeMetrics(s.Best).Margin
	}
	return s
}
