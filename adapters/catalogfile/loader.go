// Package catalogfile loads an asset catalog from an HCL schedule file.
// The schedule is the materialized form of the underwriting spreadsheet:
//
//	drone "AAA-111" {
//	  value                 = 10000
//	  weight_kg             = 2
//	  has_detachable_camera = true
//	  tpl_limit             = 1000000
//	}
//
//	camera "ZZZ-999" {
//	  value             = 5000
//	  compatible_drones = ["AAA-111"]
//	}
//
// Parsing reports syntax problems; catalog construction still owns
// every data-integrity invariant.
package catalogfile

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"drone-cover/core/catalog"
	"drone-cover/core/types"
	"drone-cover/internal/errors"
)

type scheduleFile struct {
	Drones  []droneBlock  `hcl:"drone,block"`
	Cameras []cameraBlock `hcl:"camera,block"`
}

type droneBlock struct {
	Serial              string  `hcl:"serial,label"`
	Value               float64 `hcl:"value"`
	WeightKG            float64 `hcl:"weight_kg"`
	HasDetachableCamera bool    `hcl:"has_detachable_camera"`
	TPLLimit            float64 `hcl:"tpl_limit"`
	TPLExcess           float64 `hcl:"tpl_excess,optional"`
}

type cameraBlock struct {
	Serial           string   `hcl:"serial,label"`
	Value            float64  `hcl:"value"`
	CompatibleDrones []string `hcl:"compatible_drones"`
}

// Load reads and parses a schedule file and builds a validated catalog
func Load(path string) (*catalog.Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read schedule file", err)
	}
	return Parse(src, path)
}

// Parse builds a catalog from schedule file contents. filename is used
// in diagnostics only.
func Parse(src []byte, filename string) (*catalog.Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid schedule file", diags)
	}

	var schedule scheduleFile
	if diags := gohcl.DecodeBody(file.Body, nil, &schedule); diags.HasErrors() {
		return nil, errors.Parsing("invalid schedule contents", diags)
	}

	drones := make([]types.Drone, 0, len(schedule.Drones))
	for _, b := range schedule.Drones {
		drones = append(drones, types.Drone{
			SerialNumber:        b.Serial,
			Value:               decimal.NewFromFloat(b.Value),
			WeightKG:            decimal.NewFromFloat(b.WeightKG),
			HasDetachableCamera: b.HasDetachableCamera,
			TPLLimit:            decimal.NewFromFloat(b.TPLLimit),
			TPLExcess:           decimal.NewFromFloat(b.TPLExcess),
		})
	}

	cameras := make([]types.DetachableCamera, 0, len(schedule.Cameras))
	for _, b := range schedule.Cameras {
		cameras = append(cameras, types.DetachableCamera{
			SerialNumber:     b.Serial,
			Value:            decimal.NewFromFloat(b.Value),
			CompatibleDrones: b.CompatibleDrones,
		})
	}

	return catalog.New(drones, cameras)
}
