// Package catalog - Authoritative asset catalog
// Holds the canonical, immutable set of drones and detachable cameras
// from the insured's schedule. This is the source of truth for rating.
package catalog

import (
	"drone-cover/core/types"
	"drone-cover/internal/errors"
)

// Catalog is the validated, insertion-ordered asset registry.
// Read-only after construction; safe for concurrent readers.
type Catalog struct {
	drones   []types.Drone
	cameras  []types.DetachableCamera
	droneIdx map[string]int
	camIdx   map[string]int
}

// New builds a catalog from schedule records, rejecting the whole set
// if any record violates an invariant. No partial catalog is exposed.
func New(drones []types.Drone, cameras []types.DetachableCamera) (*Catalog, error) {
	c := &Catalog{
		drones:   make([]types.Drone, 0, len(drones)),
		cameras:  make([]types.DetachableCamera, 0, len(cameras)),
		droneIdx: make(map[string]int, len(drones)),
		camIdx:   make(map[string]int, len(cameras)),
	}

	for _, d := range drones {
		if err := validateDrone(d); err != nil {
			return nil, err
		}
		if _, dup := c.droneIdx[d.SerialNumber]; dup {
			return nil, errors.InvalidAsset(d.SerialNumber, "duplicate drone serial number")
		}
		c.droneIdx[d.SerialNumber] = len(c.drones)
		c.drones = append(c.drones, d)
	}

	for _, cam := range cameras {
		if err := validateCamera(cam, c); err != nil {
			return nil, err
		}
		if _, dup := c.camIdx[cam.SerialNumber]; dup {
			return nil, errors.InvalidAsset(cam.SerialNumber, "duplicate camera serial number")
		}
		c.camIdx[cam.SerialNumber] = len(c.cameras)
		c.cameras = append(c.cameras, cam)
	}

	return c, nil
}

// LookupDrone returns the drone with the given serial number
func (c *Catalog) LookupDrone(serial string) (types.Drone, error) {
	i, ok := c.droneIdx[serial]
	if !ok {
		return types.Drone{}, errors.UnknownAsset("drone", serial)
	}
	return c.drones[i], nil
}

// LookupCamera returns the camera with the given serial number
func (c *Catalog) LookupCamera(serial string) (types.DetachableCamera, error) {
	i, ok := c.camIdx[serial]
	if !ok {
		return types.DetachableCamera{}, errors.UnknownAsset("camera", serial)
	}
	return c.cameras[i], nil
}

// Drones returns all drones in insertion order
func (c *Catalog) Drones() []types.Drone {
	out := make([]types.Drone, len(c.drones))
	copy(out, c.drones)
	return out
}

// Cameras returns all cameras in insertion order
func (c *Catalog) Cameras() []types.DetachableCamera {
	out := make([]types.DetachableCamera, len(c.cameras))
	copy(out, c.cameras)
	return out
}

// Size returns the total number of catalog entries
func (c *Catalog) Size() int {
	return len(c.drones) + len(c.cameras)
}
