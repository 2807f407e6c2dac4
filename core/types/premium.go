// Package types - Premium and fleet request types
package types

import "github.com/shopspring/decimal"

// FleetRequest is the external input to fleet pricing: requested
// quantities by serial number, per asset class. Quantities are
// non-negative; zero means "exclude from totals", not an error.
type FleetRequest struct {
	// Drones maps drone serial number to requested quantity
	Drones map[string]int `json:"drones"`

	// Cameras maps camera serial number to requested quantity
	Cameras map[string]int `json:"cameras"`
}

// NewFleetRequest creates an empty fleet request
func NewFleetRequest() FleetRequest {
	return FleetRequest{
		Drones:  make(map[string]int),
		Cameras: make(map[string]int),
	}
}

// PremiumRow is a single priced line item
type PremiumRow struct {
	// SerialNumber is the asset serial number
	SerialNumber string `json:"serial_number"`

	// Kind is the asset class
	Kind AssetKind `json:"kind"`

	// UnitPremium is the premium for a single unit
	UnitPremium decimal.Decimal `json:"unit_premium"`

	// Quantity is the number of insured units
	Quantity int `json:"quantity"`

	// ExtendedPremium is UnitPremium multiplied by Quantity
	ExtendedPremium decimal.Decimal `json:"extended_premium"`

	// PairedDrone records which drone a camera was rated against.
	// Empty for drone rows.
	PairedDrone string `json:"paired_drone,omitempty"`
}

// FleetPricingResult is the full output of a fleet pricing run
type FleetPricingResult struct {
	// Rows holds the priced line items, drones first, each class in
	// catalog insertion order. Zero-quantity requests are omitted.
	Rows []PremiumRow `json:"rows"`

	// DroneHullNet is the hull net premium across all drone rows
	DroneHullNet decimal.Decimal `json:"drone_hull_net"`

	// DroneTPLNet is the TPL layer net premium across all drone rows
	DroneTPLNet decimal.Decimal `json:"drone_tpl_net"`

	// CameraNet is the net premium across all camera rows
	CameraNet decimal.Decimal `json:"camera_net"`

	// Surcharge holds flat charges for units left outside cover by a
	// capacity cap. Zero when no cap is in effect.
	Surcharge decimal.Decimal `json:"surcharge"`

	// GrandTotal is the net total: sum of all extended premiums plus
	// surcharge
	GrandTotal decimal.Decimal `json:"grand_total"`

	// Currency is the pricing currency
	Currency Currency `json:"currency"`
}
