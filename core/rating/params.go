// Package rating - Rating parameters
// Coefficients are business configuration, not code. Defaults mirror
// the underwriting model the schedule was priced with.
package rating

import "github.com/shopspring/decimal"

// WeightBand maps a takeoff-weight band to a hull rate adjustment
type WeightBand struct {
	// UpToKG is the inclusive upper bound of the band in kilograms.
	// Zero means unbounded (the last band).
	UpToKG decimal.Decimal `json:"up_to_kg"`

	// Factor is the multiplicative hull rate adjustment for this band
	Factor decimal.Decimal `json:"factor"`
}

// Params holds every coefficient the rating engine uses
type Params struct {
	// HullBaseRate is the hull premium rate before weight adjustment
	HullBaseRate decimal.Decimal `json:"hull_base_rate"`

	// LiabilityBaseRate is the TPL ground-up base layer rate
	LiabilityBaseRate decimal.Decimal `json:"liability_base_rate"`

	// WeightBands are the hull adjustment bands, ascending by UpToKG,
	// unbounded band last
	WeightBands []WeightBand `json:"weight_bands"`

	// RiebesellBaseLimit is the limit at which the Riebesell curve
	// factor equals 1
	RiebesellBaseLimit decimal.Decimal `json:"riebesell_base_limit"`

	// RiebesellZ is the Riebesell premium increase per doubling of
	// limit
	RiebesellZ float64 `json:"riebesell_z"`

	// Currency is the pricing currency
	Currency string `json:"currency"`
}

// DefaultParams returns the model's standard coefficients
func DefaultParams() Params {
	return Params{
		HullBaseRate:      decimal.NewFromFloat(0.06),
		LiabilityBaseRate: decimal.NewFromFloat(0.02),
		WeightBands: []WeightBand{
			{UpToKG: decimal.NewFromInt(5), Factor: decimal.NewFromInt(1)},
			{UpToKG: decimal.NewFromInt(10), Factor: decimal.NewFromFloat(1.2)},
			{UpToKG: decimal.NewFromInt(20), Factor: decimal.NewFromFloat(1.6)},
			{UpToKG: decimal.Zero, Factor: decimal.NewFromFloat(2.5)},
		},
		RiebesellBaseLimit: decimal.NewFromInt(1000000),
		RiebesellZ:         0.2,
		Currency:           "GBP",
	}
}

// weightAdjustment returns the hull adjustment factor for a weight
func (p Params) weightAdjustment(weightKG decimal.Decimal) decimal.Decimal {
	for _, band := range p.WeightBands {
		if band.UpToKG.IsZero() || weightKG.LessThanOrEqual(band.UpToKG) {
			return band.Factor
		}
	}
	// No unbounded band configured; treat the heaviest band as open.
	if n := len(p.WeightBands); n > 0 {
		return p.WeightBands[n-1].Factor
	}
	return decimal.NewFromInt(1)
}
