package types

import "strings"

// Field identifies one editable product attribute.
type Field int

const (
	FieldName Field = iota
	FieldSellingPrice
	FieldBaseCost
	FieldShippingFees
	FieldDutyFees
	FieldReferralRate
	FieldFBAFees
	FieldStorageFees
	FieldOtherFees
	FieldAdsRate
)

var fieldOrder = []Field{
	FieldName,
	FieldSellingPrice,
	FieldBaseCost,
	FieldShippingFees,
	FieldDutyFees,
	FieldReferralRate,
	FieldFBAFees,
	FieldStorageFees,
	FieldOtherFees,
	FieldAdsRate,
}

type fieldInfo struct {
	key    string
	label  string
	prefix string
	suffix string
}

var fieldInfos = map[Field]fieldInfo{
	FieldName:         {key: "name", label: "Name"},
	FieldSellingPrice: {key: "sellingPrice", label: "Selling price", prefix: "$"},
	FieldBaseCost:     {key: "baseCost", label: "Base cost", prefix: "$"},
	FieldShippingFees: {key: "shippingFees", label: "Shipping", prefix: "$"},
	FieldDutyFees:     {key: "dutyFees", label: "Duty", prefix: "$"},
	FieldReferralRate: {key: "referralRate", label: "Referral", suffix: "%"},
	FieldFBAFees:      {key: "fbaFees", label: "FBA fees", prefix: "$"},
	FieldStorageFees:  {key: "storageFees", label: "Storage", prefix: "$"},
	FieldOtherFees:    {key: "otherFees", label: "Other fees", prefix: "$"},
	FieldAdsRate:      {key: "adsRate", label: "Ads", suffix: "%"},
}

// Fields returns every editable field in editor order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// ParseField resolves a field from its key, case-insensitively.
func ParseField(key string) (Field, bool) {
	k := strings.TrimSpace(key)
	for _, f := range fieldOrder {
		if strings.EqualFold(fieldInfos[f].key, k) {
			return f, true
		}
	}
	return 0, false
}

func (f Field) Key() string    { return fieldInfos[f].key }
func (f Field) Label() string  { return fieldInfos[f].label }
func (f Field) Prefix() string { return fieldInfos[f].prefix }
func (f Field) Suffix() string { return fieldInfos[f].suffix }

// Numeric reports whether the field holds a number.
func (f Field) Numeric() bool {
	return f != FieldName
}

// Value returns the numeric value of f. The name field reads as 0.
func (p Product) Value(f Field) float64 {
	switch f {
	case FieldSellingPrice:
		return p.SellingPrice
	case FieldBaseCost:
		return p.BaseCost
	case FieldShippingFees:
		return p.ShippingFees
	case FieldDutyFees:
		return p.DutyFees
	case FieldReferralRate:
		return p.ReferralRate
	case FieldFBAFees:
		return p.FBAFees
	case FieldStorageFees:
		return p.StorageFees
	case FieldOtherFees:
		return p.OtherFees
	case FieldAdsRate:
		return p.AdsRate
	default:
		return 0
	}
}

// SetValue assigns a numeric field. It is a no-op for the name field.
func (p *Product) SetValue(f Field, v float64) {
	switch f {
	case FieldSellingPrice:
		p.SellingPrice = v
	case FieldBaseCost:
		p.BaseCost = v
	case FieldShippingFees:
		p.ShippingFees = v
	case FieldDutyFees:
		p.DutyFees = v
	case FieldReferralRate:
		p.ReferralRate = v
	case FieldFBAFees:
		p.FBAFees = v
	case FieldStorageFees:
		p.StorageFees = v
	case FieldOtherFees:
		p.OtherFees = v
	case FieldAdsRate:
		p.AdsRate = v
	}
}

// Text returns f as editable text.
func (p Product) Text(f Field) string {
	if f == FieldName {
		return p.Name
	}
	return FormatAmount(p.Value(f))
}

// SetText assigns f from user text, coercing numeric fields with ParseAmount.
func (p *Product) SetText(f Field, text string) {
	if f == FieldName {
		p.Name = text
		return
	}
	p.SetValue(f, ParseAmount(text))
}
