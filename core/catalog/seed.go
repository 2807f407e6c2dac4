// Package catalog - Canonical schedule data
package catalog

import (
	"github.com/shopspring/decimal"

	"drone-cover/core/types"
)

// Seed returns the canonical catalog for the Drones R Us schedule.
// Values are GBP, weights in kilograms, as materialized from the
// underwriting spreadsheet.
func Seed() (*Catalog, error) {
	drones := []types.Drone{
		{
			SerialNumber:        "AAA-111",
			Value:               decimal.NewFromInt(10000),
			WeightKG:            decimal.NewFromInt(2),
			HasDetachableCamera: true,
			TPLLimit:            decimal.NewFromInt(1000000),
			TPLExcess:           decimal.Zero,
		},
		{
			SerialNumber:        "BBB-222",
			Value:               decimal.NewFromInt(12000),
			WeightKG:            decimal.NewFromInt(15),
			HasDetachableCamera: false,
			TPLLimit:            decimal.NewFromInt(4000000),
			TPLExcess:           decimal.NewFromInt(1000000),
		},
		{
			SerialNumber:        "CCC-333",
			Value:               decimal.NewFromInt(15000),
			WeightKG:            decimal.NewFromInt(7),
			HasDetachableCamera: true,
			TPLLimit:            decimal.NewFromInt(5000000),
			TPLExcess:           decimal.NewFromInt(5000000),
		},
	}

	// Cameras attach to any camera-capable drone on the schedule.
	attachable := []string{"AAA-111", "CCC-333"}

	cameras := []types.DetachableCamera{
		{SerialNumber: "ZZZ-999", Value: decimal.NewFromInt(5000), CompatibleDrones: attachable},
		{SerialNumber: "YYY-888", Value: decimal.NewFromInt(2500), CompatibleDrones: attachable},
		{SerialNumber: "XXX-777", Value: decimal.NewFromInt(1500), CompatibleDrones: attachable},
		{SerialNumber: "WWW-666", Value: decimal.NewFromInt(2000), CompatibleDrones: attachable},
	}

	return New(drones, cameras)
}
