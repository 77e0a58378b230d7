package types

// Metrics holds the figures derived from a single product.
type Metrics struct {
	BaseCostTotal   float64 `json:"baseCostTotal"`
	ReferralFees    float64 `json:"referralFees"`
	MarketplaceFees float64 `json:"marketplaceFees"`
	AdsSpend        float64 `json:"adsSpend"`
	Profit          float64 `json:"profit"`
	Margin          float64 `json:"margin"`        // percent of selling price
	BaseCostRatio   float64 `json:"baseCostRatio"` // percent of selling price
}

// ComputeMetrics derives cost, fee, and profit figures for p.
// Ratios are 0 when the selling price is not positive.
func ComputeMetrics(p Product) Metrics {
	baseCostTotal := p.BaseCost + p.ShippingFees + p.DutyFees
	referralFees := p.SellingPrice * (p.ReferralRate / 100)
	marketplaceFees := referralFees + p.FBAFees + p.StorageFees + p.OtherFees
	adsSpend := p.SellingPrice * (p.AdsRate / 100)
	profit := p.SellingPrice - baseCostTotal - marketplaceFees - adsSpend

	var margin, baseCostRatio float64
	if p.SellingPrice > 0 {
		margin = (profit / p.SellingPrice) * 100
		baseCostRatio = (baseCostTotal / p.SellingPrice) * 100
	}

	return Metrics{
		BaseCostTotal:   baseCostTotal,
		ReferralFees:    referralFees,
		MarketplaceFees: marketplaceFees,
		AdsSpend:        adsSpend,
		Profit:          profit,
		Margin:          margin,
		BaseCostRatio:   baseCostRatio,
	}
}

// Metrics is shorthand for ComputeMetrics(p).
func (p Product) Metrics() Metrics {
	return ComputeMetrics(p)
}

// MarginHealth grades an average margin for the summary card.
type MarginHealth string

const (
	MarginHealthy  MarginHealth = "healthy"
	MarginLow      MarginHealth = "low"
	MarginNegative MarginHealth = "negative"
)

// HealthForMargin classifies margin as healthy (>= 15%), low (>= 0%) or negative.
func HealthForMargin(margin float64) MarginHealth {
	switch {
	case margin >= 15:
		return MarginHealthy
	case margin >= 0:
		return MarginLow
	default:
		return MarginNegative
	}
}

// MarginTier buckets a product margin for badge colouring.
type MarginTier int

const (
	MarginTierLoss MarginTier = iota
	MarginTierThin
	MarginTierFair
	MarginTierStrong
)

// TierForMargin buckets margin at 20%, 10% and 0%.
func TierForMargin(margin float64) MarginTier {
	switch {
	case margin >= 20:
		return MarginTierStrong
	case margin >= 10:
		return MarginTierFair
	case margin >= 0:
		return MarginTierThin
	default:
		return MarginTierLoss
	}
}

func (t MarginTier) String() string {
	switch t {
	case MarginTierStrong:
		return "strong"
	case MarginTierFair:
		return "fair"
	case MarginTierThin:
		return "thin"
	default:
		return "loss"
	}
}
