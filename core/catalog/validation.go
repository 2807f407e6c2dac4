// Package catalog - Schedule invariant checks
// Every invariant is enforced here, once, at construction. The rating
// engine assumes catalog records are valid and does not re-validate.
package catalog

import (
	"drone-cover/core/types"
	"drone-cover/internal/errors"
)

func validateDrone(d types.Drone) error {
	if d.SerialNumber == "" {
		return errors.New(errors.TypeInvalidAsset, "drone with empty serial number")
	}
	if d.Value.IsNegative() {
		return errors.InvalidAsset(d.SerialNumber, "value must be non-negative")
	}
	if d.WeightKG.IsNegative() {
		return errors.InvalidAsset(d.SerialNumber, "weight must be non-negative")
	}
	if d.TPLLimit.IsNegative() {
		return errors.InvalidAsset(d.SerialNumber, "TPL limit must be non-negative")
	}
	if d.TPLExcess.IsNegative() {
		return errors.InvalidAsset(d.SerialNumber, "TPL excess must be non-negative")
	}
	if d.TPLExcess.GreaterThan(d.TPLLimit) {
		return errors.InvalidAsset(d.SerialNumber, "TPL excess exceeds TPL limit")
	}
	return nil
}

// validateCamera runs after all drones are registered, so compatibility
// references can be resolved against the catalog under construction.
func validateCamera(cam types.DetachableCamera, c *Catalog) error {
	if cam.SerialNumber == "" {
		return errors.New(errors.TypeInvalidAsset, "camera with empty serial number")
	}
	if cam.Value.IsNegative() {
		return errors.InvalidAsset(cam.SerialNumber, "value must be non-negative")
	}
	if len(cam.CompatibleDrones) == 0 {
		return errors.InvalidAsset(cam.SerialNumber, "compatible drone list is empty")
	}
	for _, serial := range cam.CompatibleDrones {
		i, ok := c.droneIdx[serial]
		if !ok {
			return errors.InvalidAsset(cam.SerialNumber, "references unknown drone "+serial)
		}
		if !c.drones[i].HasDetachableCamera {
			return errors.InvalidAsset(cam.SerialNumber, "references drone "+serial+" which cannot carry a detachable camera")
		}
	}
	return nil
}
