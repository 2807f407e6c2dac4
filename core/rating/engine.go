// Package rating - Exposure and premium computation
// Pure functions of catalog records and parameters. Deterministic: no
// randomness, no hidden state, no I/O. Inputs are assumed valid; the
// catalog enforces schedule invariants at construction.
package rating

import (
	"math"

	"github.com/shopspring/decimal"

	"drone-cover/core/types"
	"drone-cover/internal/errors"
)

// DroneRating is the full rating breakdown for one drone at quantity 1
type DroneRating struct {
	SerialNumber string `json:"serial_number"`

	// Hull section
	HullBaseRate         decimal.Decimal `json:"hull_base_rate"`
	HullWeightAdjustment decimal.Decimal `json:"hull_weight_adjustment"`
	HullFinalRate        decimal.Decimal `json:"hull_final_rate"`
	HullPremium          decimal.Decimal `json:"hull_premium"`

	// TPL section
	TPLBaseRate         decimal.Decimal `json:"tpl_base_rate"`
	TPLBaseLayerPremium decimal.Decimal `json:"tpl_base_layer_premium"`
	TPLILF              decimal.Decimal `json:"tpl_ilf"`
	TPLLayerPremium     decimal.Decimal `json:"tpl_layer_premium"`

	// UnitPremium is hull premium plus TPL layer premium
	UnitPremium decimal.Decimal `json:"unit_premium"`
}

// CameraRating is the rating breakdown for one camera at quantity 1
type CameraRating struct {
	SerialNumber string `json:"serial_number"`

	// PairedDrone is the drone the camera was rated against
	PairedDrone string `json:"paired_drone"`

	// Rate is the hull rate inherited from the paired drone
	Rate decimal.Decimal `json:"rate"`

	// Premium is camera value times Rate
	Premium decimal.Decimal `json:"premium"`
}

// Engine computes exposure scores and unit premiums
type Engine struct {
	params Params
}

// NewEngine creates a rating engine with the given parameters
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Params returns the engine's parameters
func (e *Engine) Params() Params {
	return e.params
}

// RateDrone computes the hull and TPL premium breakdown for one drone.
// A zero-value drone rates to zero across the board.
func (e *Engine) RateDrone(d types.Drone) DroneRating {
	r := DroneRating{SerialNumber: d.SerialNumber}
	if d.Value.IsZero() {
		return r
	}

	r.HullBaseRate = e.params.HullBaseRate
	r.HullWeightAdjustment = e.params.weightAdjustment(d.WeightKG)
	r.HullFinalRate = r.HullBaseRate.Mul(r.HullWeightAdjustment)
	r.HullPremium = d.Value.Mul(r.HullFinalRate)

	r.TPLBaseRate = e.params.LiabilityBaseRate
	r.TPLBaseLayerPremium = d.Value.Mul(r.TPLBaseRate)
	r.TPLILF = e.layerFactor(d.TPLLimit, d.TPLExcess)
	r.TPLLayerPremium = r.TPLBaseLayerPremium.Mul(r.TPLILF)

	r.UnitPremium = r.HullPremium.Add(r.TPLLayerPremium)
	return r
}

// RateCamera computes the premium for a camera attached to a specific
// drone. The drone must be in the camera's compatibility set; pricing
// a camera against an unrelated drone is a caller defect.
func (e *Engine) RateCamera(c types.DetachableCamera, d types.Drone) (CameraRating, error) {
	if !c.IsCompatibleWith(d.SerialNumber) {
		return CameraRating{}, errors.IncompatiblePairing(c.SerialNumber, d.SerialNumber)
	}

	r := CameraRating{
		SerialNumber: c.SerialNumber,
		PairedDrone:  d.SerialNumber,
	}
	if c.Value.IsZero() {
		return r, nil
	}

	// The camera shares the paired drone's hull risk profile: it
	// inherits the drone's weight-adjusted hull rate.
	r.Rate = e.params.HullBaseRate.Mul(e.params.weightAdjustment(d.WeightKG))
	r.Premium = c.Value.Mul(r.Rate)
	return r, nil
}

// layerFactor is the increased limit factor for the TPL layer between
// excess and excess+limit, from the Riebesell curve: premium grows by
// (1+z) for every doubling of limit.
func (e *Engine) layerFactor(limit, excess decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(e.riebesell(limit.Add(excess)) - e.riebesell(excess))
}

func (e *Engine) riebesell(x decimal.Decimal) float64 {
	ratio, _ := x.Div(e.params.RiebesellBaseLimit).Float64()
	if ratio <= 0 {
		return 0
	}
	return math.Pow(ratio, math.Log2(1+e.params.RiebesellZ))
}
