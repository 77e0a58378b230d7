package server

import (
	"bytes"
	"encoding/json"
	"strings"

	"pnl/types"

	"github.com/google/uuid"
)

// flexFloat decodes a JSON number or a numeric string. Anything else,
// including unparsable text, decodes to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexFloat(types.ParseAmount(s))
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// ProductRequestDTO is one product as accepted on the wire.
type ProductRequestDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	SellingPrice flexFloat  `json:"sellingPrice"`
	BaseCost     flexFloat  `json:"baseCost"`
	ShippingFees flexFloat  `json:"shippingFees"`
	DutyFees     flexFloat  `json:"dutyFees"`
	ReferralRate *flexFloat `json:"referralRate"`
	FBAFees      flexFloat  `json:"fbaFees"`
	StorageFees  flexFloat  `json:"storageFees"`
	OtherFees    flexFloat  `json:"otherFees"`
	AdsRate      *flexFloat `json:"adsRate"`
}

// toProduct fills a missing or malformed ID with a fresh one and missing
// rates with the server defaults.
func (d ProductRequestDTO) toProduct(referralRate, adsRate float64) types.Product {
	id, err := uuid.Parse(strings.TrimSpace(d.ID))
	if err != nil {
		id = uuid.New()
	}
	if d.ReferralRate != nil {
		referralRate = float64(*d.ReferralRate)
	}
	if d.AdsRate != nil {
		adsRate = float64(*d.AdsRate)
	}
	return types.Product{
		ID:           id,
		Name:         d.Name,
		SellingPrice: float64(d.SellingPrice),
		BaseCost:     float64(d.BaseCost),
		ShippingFees: float64(d.ShippingFees),
		DutyFees:     float64(d.DutyFees),
		ReferralRate: referralRate,
		FBAFees:      float64(d.FBAFees),
		StorageFees:  float64(d.StorageFees),
		OtherFees:    float64(d.OtherFees),
		AdsRate:      adsRate,
	}
}

type PortfolioRequestDTO struct {
	Products []ProductRequestDTO `json:"products"`
}

type ProductResult struct {
	Product types.Product `json:"product"`
	Metrics types.Metrics `json:"metrics"`
}

type SummaryDTO struct {
	Count         int            `json:"count"`
	BestProduct   *types.Product `json:"bestProduct"`
	BestMargin    float64        `json:"bestMargin"`
	TotalProfit   float64        `json:"totalProfit"`
	AverageMargin float64        `json:"averageMargin"`
	LossCount     int            `json:"lossCount"`
}

type PortfolioResponse struct {
	Products []ProductResult `json:"products"`
	Summary  SummaryDTO      `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func newProductResult(p types.Product) ProductResult {
	return ProductResult{Product: p, Metrics: p.Metrics()}
}

func newPortfolioResponse(products []types.Product) PortfolioResponse {
	results := make([]ProductResult, len(products))
	for i, p := range products {
		results[i] = newProductResult(p)
	}

	s := types.Summarize(products)
	summary := SummaryDTO{
		Count:         s.Count,
		BestMargin:    s.BestMargin,
		TotalProfit:   s.TotalProfit,
		AverageMargin: s.AverageMargin,
		LossCount:     s.LossCount,
	}
	if s.HasBest {
		best := s.Best
		summary.BestProduct = &best
	}
	return PortfolioResponse{Products: results, Summary: summary}
}
