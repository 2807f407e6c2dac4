// Package fleet - Fleet pricing aggregation
// Converts a fleet request into premium rows and totals. Stateless,
// single pass, all-or-nothing: an unknown serial aborts the whole run
// with no partial output.
package fleet

import (
	"github.com/shopspring/decimal"

	"drone-cover/core/catalog"
	"drone-cover/core/rating"
	"drone-cover/core/types"
	"drone-cover/internal/errors"
)

// Aggregator prices fleet requests against a catalog
type Aggregator struct {
	cat    *catalog.Catalog
	engine *rating.Engine
}

// NewAggregator creates a fleet aggregator
func NewAggregator(cat *catalog.Catalog, engine *rating.Engine) *Aggregator {
	return &Aggregator{cat: cat, engine: engine}
}

// BaseCase returns the fleet request that prices every catalog asset
// at quantity 1. It is the reference pricing run.
func (a *Aggregator) BaseCase() types.FleetRequest {
	req := types.NewFleetRequest()
	for _, d := range a.cat.Drones() {
		req.Drones[d.SerialNumber] = 1
	}
	for _, c := range a.cat.Cameras() {
		req.Cameras[c.SerialNumber] = 1
	}
	return req
}

// PriceFleet prices a fleet request. Rows are ordered drones first,
// then cameras, each class in catalog insertion order; zero-quantity
// requests are omitted from the rows but are not errors.
//
// Camera pairing rule: a camera is rated against the first drone in
// its CompatibleDrones list requested with quantity > 0 in this fleet,
// falling back to the first listed compatible drone. The rule is fixed
// so cost attribution for multi-compatible cameras is deterministic.
func (a *Aggregator) PriceFleet(req types.FleetRequest, opts ...Option) (*types.FleetPricingResult, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	droneLines, err := a.resolveDrones(req)
	if err != nil {
		return nil, err
	}
	cameraLines, err := a.resolveCameras(req)
	if err != nil {
		return nil, err
	}

	// Capacity caps reallocate quantities before any premium math.
	surcharge := decimal.Zero
	if options.droneFleetSize > 0 {
		surcharge = surcharge.Add(capDroneLines(droneLines, options))
	}
	if options.cameraFleetSize > 0 {
		surcharge = surcharge.Add(capCameraLines(cameraLines, options))
	}

	result := &types.FleetPricingResult{
		Currency:  types.Currency(a.engine.Params().Currency),
		Surcharge: surcharge,
	}

	for _, line := range droneLines {
		if line.quantity == 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(line.quantity))
		r := line.droneRating
		result.Rows = append(result.Rows, types.PremiumRow{
			SerialNumber:    line.serial,
			Kind:            types.KindDrone,
			UnitPremium:     r.UnitPremium,
			Quantity:        line.quantity,
			ExtendedPremium: r.UnitPremium.Mul(qty),
		})
		result.DroneHullNet = result.DroneHullNet.Add(r.HullPremium.Mul(qty))
		result.DroneTPLNet = result.DroneTPLNet.Add(r.TPLLayerPremium.Mul(qty))
	}

	for _, line := range cameraLines {
		if line.quantity == 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(line.quantity))
		r := line.cameraRating
		result.Rows = append(result.Rows, types.PremiumRow{
			SerialNumber:    line.serial,
			Kind:            types.KindCamera,
			UnitPremium:     r.Premium,
			Quantity:        line.quantity,
			ExtendedPremium: r.Premium.Mul(qty),
			PairedDrone:     r.PairedDrone,
		})
		result.CameraNet = result.CameraNet.Add(r.Premium.Mul(qty))
	}

	result.GrandTotal = result.DroneHullNet.
		Add(result.DroneTPLNet).
		Add(result.CameraNet).
		Add(result.Surcharge)

	return result, nil
}

// ExposureBreakdown rates every catalog asset at quantity 1 and
// returns the full per-asset breakdowns in catalog insertion order.
// Cameras are paired under the same rule as PriceFleet, against the
// given request.
func (a *Aggregator) ExposureBreakdown(req types.FleetRequest) ([]rating.DroneRating, []rating.CameraRating, error) {
	var droneRatings []rating.DroneRating
	for _, d := range a.cat.Drones() {
		droneRatings = append(droneRatings, a.engine.RateDrone(d))
	}

	var cameraRatings []rating.CameraRating
	for _, c := range a.cat.Cameras() {
		paired, err := a.pairCamera(c, req)
		if err != nil {
			return nil, nil, err
		}
		r, err := a.engine.RateCamera(c, paired)
		if err != nil {
			return nil, nil, err
		}
		cameraRatings = append(cameraRatings, r)
	}
	return droneRatings, cameraRatings, nil
}

// line is a resolved, rated fleet request entry
type line struct {
	serial       string
	quantity     int
	droneRating  rating.DroneRating
	cameraRating rating.CameraRating
}

// resolveDrones validates every requested drone serial against the
// catalog and rates each line. Lines come back in catalog insertion
// order regardless of request map iteration order.
func (a *Aggregator) resolveDrones(req types.FleetRequest) ([]*line, error) {
	for serial := range req.Drones {
		if _, err := a.cat.LookupDrone(serial); err != nil {
			return nil, err
		}
	}
	for serial, qty := range req.Drones {
		if qty < 0 {
			return nil, errors.Input("negative quantity for drone " + serial)
		}
	}

	var lines []*line
	for _, d := range a.cat.Drones() {
		qty, ok := req.Drones[d.SerialNumber]
		if !ok {
			continue
		}
		lines = append(lines, &line{
			serial:      d.SerialNumber,
			quantity:    qty,
			droneRating: a.engine.RateDrone(d),
		})
	}
	return lines, nil
}

func (a *Aggregator) resolveCameras(req types.FleetRequest) ([]*line, error) {
	for serial := range req.Cameras {
		if _, err := a.cat.LookupCamera(serial); err != nil {
			return nil, err
		}
	}
	for serial, qty := range req.Cameras {
		if qty < 0 {
			return nil, errors.Input("negative quantity for camera " + serial)
		}
	}

	var lines []*line
	for _, c := range a.cat.Cameras() {
		qty, ok := req.Cameras[c.SerialNumber]
		if !ok {
			continue
		}
		paired, err := a.pairCamera(c, req)
		if err != nil {
			return nil, err
		}
		r, err := a.engine.RateCamera(c, paired)
		if err != nil {
			return nil, err
		}
		lines = append(lines, &line{
			serial:       c.SerialNumber,
			quantity:     qty,
			cameraRating: r,
		})
	}
	return lines, nil
}

// pairCamera applies the fixed pairing rule documented on PriceFleet
func (a *Aggregator) pairCamera(c types.DetachableCamera, req types.FleetRequest) (types.Drone, error) {
	for _, serial := range c.CompatibleDrones {
		if req.Drones[serial] > 0 {
			return a.cat.LookupDrone(serial)
		}
	}
	return a.cat.LookupDrone(c.CompatibleDrones[0])
}
