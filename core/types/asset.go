// Package types holds the shared domain types for drone insurance rating.
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// AssetKind distinguishes the insurable asset classes
type AssetKind string

const (
	KindDrone  AssetKind = "drone"
	KindCamera AssetKind = "camera"
)

// Drone is a single insurable drone as it appears on the schedule.
// Monetary fields are in schedule currency; weight is in kilograms.
type Drone struct {
	// SerialNumber uniquely identifies the drone
	SerialNumber string `json:"serial_number"`

	// Value is the hull (agreed) value
	Value decimal.Decimal `json:"value"`

	// WeightKG is the takeoff weight in kilograms
	WeightKG decimal.Decimal `json:"weight_kg"`

	// HasDetachableCamera indicates a camera may be attached
	HasDetachableCamera bool `json:"has_detachable_camera"`

	// TPLLimit is the third-party liability limit
	TPLLimit decimal.Decimal `json:"tpl_limit"`

	// TPLExcess is the third-party liability excess. Never exceeds TPLLimit.
	TPLExcess decimal.Decimal `json:"tpl_excess"`
}

// DetachableCamera is a camera insurable only in combination with a
// compatible drone.
type DetachableCamera struct {
	// SerialNumber uniquely identifies the camera
	SerialNumber string `json:"serial_number"`

	// Value is the agreed value
	Value decimal.Decimal `json:"value"`

	// CompatibleDrones lists, in schedule order, the serial numbers of
	// drones this camera may attach to. Never empty, and every entry
	// resolves to a drone with HasDetachableCamera set.
	CompatibleDrones []string `json:"compatible_drones"`
}

// IsCompatibleWith reports whether the camera may attach to the drone
func (c DetachableCamera) IsCompatibleWith(droneSerial string) bool {
	for _, s := range c.CompatibleDrones {
		if s == droneSerial {
			return true
		}
	}
	return false
}
