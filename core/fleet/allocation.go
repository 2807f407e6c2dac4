// Package fleet - Capacity-capped allocation
// Optional mode where the insured declares a fleet size per asset
// class. Scheduled quantities are allocated to cover highest unit
// premium first; declared units beyond the schedule are charged at a
// flat rate per unit.
package fleet

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Option configures a fleet pricing run
type Option func(*options)

type options struct {
	droneFleetSize  int
	cameraFleetSize int
	uninsuredDrone  decimal.Decimal
	excessCamera    decimal.Decimal
}

func defaultOptions() options {
	return options{
		uninsuredDrone: decimal.NewFromInt(150),
		excessCamera:   decimal.NewFromInt(50),
	}
}

// WithDroneFleetSize caps insured drone units at n, allocating cover
// to the highest unit premiums first
func WithDroneFleetSize(n int) Option {
	return func(o *options) { o.droneFleetSize = n }
}

// WithCameraFleetSize caps insured camera units at m
func WithCameraFleetSize(m int) Option {
	return func(o *options) { o.cameraFleetSize = m }
}

// WithFlatCharges overrides the flat per-unit charges for declared
// drone units beyond the schedule and for cameras in excess of the
// drone fleet
func WithFlatCharges(uninsuredDrone, excessCamera decimal.Decimal) Option {
	return func(o *options) {
		o.uninsuredDrone = uninsuredDrone
		o.excessCamera = excessCamera
	}
}

// capDroneLines reallocates drone quantities under the declared fleet
// size and returns the flat charge for declared units the schedule
// does not cover.
func capDroneLines(lines []*line, opts options) decimal.Decimal {
	scheduled := frontLoad(lines, opts.droneFleetSize, func(l *line) decimal.Decimal {
		return l.droneRating.UnitPremium
	})
	extra := opts.droneFleetSize - scheduled
	if extra <= 0 {
		return decimal.Zero
	}
	return opts.uninsuredDrone.Mul(decimal.NewFromInt(int64(extra)))
}

// capCameraLines reallocates camera quantities under the declared
// camera fleet size. Cameras in excess of the drone fleet cannot all
// be airborne at once and carry a flat charge each.
func capCameraLines(lines []*line, opts options) decimal.Decimal {
	frontLoad(lines, opts.cameraFleetSize, func(l *line) decimal.Decimal {
		return l.cameraRating.Premium
	})
	excess := opts.cameraFleetSize - opts.droneFleetSize
	if opts.droneFleetSize <= 0 || excess <= 0 {
		return decimal.Zero
	}
	return opts.excessCamera.Mul(decimal.NewFromInt(int64(excess)))
}

// frontLoad caps the total quantity across lines at n, keeping units
// on the highest-premium lines. Ties keep catalog order. Returns the
// number of units actually allocated.
func frontLoad(lines []*line, n int, premium func(*line) decimal.Decimal) int {
	ranked := make([]*line, len(lines))
	copy(ranked, lines)
	sort.SliceStable(ranked, func(i, j int) bool {
		return premium(ranked[i]).GreaterThan(premium(ranked[j]))
	})

	allocated := 0
	for _, l := range ranked {
		want := l.quantity
		if allocated+want > n {
			want = n - allocated
		}
		l.quantity = want
		allocated += want
	}
	return allocated
}
