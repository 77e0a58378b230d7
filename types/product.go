package types

import (
	"github.com/google/uuid"
)

// Default rates applied to newly created products.
const (
	DefaultReferralRate = 15.0
	DefaultAdsRate      = 25.0
)

// Product represents one marketplace listing under analysis.
type Product struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	SellingPrice float64 `json:"sellingPrice"`

	// Landed cost components
	BaseCost     float64 `json:"baseCost"`
	ShippingFees float64 `json:"shippingFees"`
	DutyFees     float64 `json:"dutyFees"`

	// Marketplace fee components
	ReferralRate float64 `json:"referralRate"` // percent of selling price
	FBAFees      float64 `json:"fbaFees"`
	StorageFees  float64 `json:"storageFees"`
	OtherFees    float64 `json:"otherFees"`

	AdsRate float64 `json:"adsRate"` // percent of selling price
}

// NewProduct returns an empty product with a fresh identity.
func NewProduct(referralRate, adsRate float64) Product {
	return Product{
		ID:           uuid.New(),
		ReferralRate: referralRate,
		AdsRate:      adsRate,
	}
}

// Duplicate copies every value of p under a new identity.
func (p Product) Duplicate() Product {
	dup := p
	dup.ID = uuid.New()
	dup.Name = p.Name + " (copy)"
	return dup
}

// DisplayName returns the product name or a placeholder when unnamed.
func (p Product) DisplayName() string {
	if p.Name == "" {
		return "Untitled"
	}
	return p.Name
}

// SampleProducts returns the starter product set.
func SampleProducts() []Product {
	return []Product{
		{
			ID:           uuid.New(),
			Name:         "Glass Suncatcher Ornament",
			SellingPrice: 15.99,
			BaseCost:     1.70,
			ShippingFees: 1.14,
			ReferralRate: 16.89,
			FBAFees:      4.16,
			StorageFees:  0.05,
			OtherFees:    0.34,
			AdsRate:      25,
		},
		{
			ID:           uuid.New(),
			Name:         "2 Layer Suncatcher Ornament",
			SellingPrice: 9.80,
			BaseCost:     1.96,
			ShippingFees: 1.14,
			ReferralRate: 15,
			FBAFees:      3.68,
			StorageFees:  0.01,
			OtherFees:    0.01,
			AdsRate:      25,
		},
		{
			ID:           uuid.New(),
			Name:         "Aluminum Suncatcher Ornament",
			SellingPrice: 18.99,
			BaseCost:     1.60,
			ShippingFees: 1.14,
			ReferralRate: 15,
			FBAFees:      3.68,
			StorageFees:  0.02,
			OtherFees:    0.02,
			AdsRate:      25,
		},
	}
}
