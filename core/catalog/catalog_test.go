// Package catalog - Construction invariant tests
// Construction is all-or-nothing: any bad record rejects the whole
// schedule.
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"drone-cover/core/types"
	"drone-cover/internal/errors"
)

func validDrone(serial string) types.Drone {
	return types.Drone{
		SerialNumber:        serial,
		Value:               decimal.NewFromInt(10000),
		WeightKG:            decimal.NewFromInt(2),
		HasDetachableCamera: true,
		TPLLimit:            decimal.NewFromInt(1000000),
		TPLExcess:           decimal.Zero,
	}
}

func TestNewValidCatalog(t *testing.T) {
	cat, err := New(
		[]types.Drone{validDrone("AAA-111"), validDrone("BBB-222")},
		[]types.DetachableCamera{{
			SerialNumber:     "ZZZ-999",
			Value:            decimal.NewFromInt(300),
			CompatibleDrones: []string{"AAA-111"},
		}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := cat.LookupDrone("AAA-111")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if d.SerialNumber != "AAA-111" {
		t.Errorf("got serial %s", d.SerialNumber)
	}

	if _, err := cat.LookupCamera("ZZZ-999"); err != nil {
		t.Fatalf("camera lookup failed: %v", err)
	}
	if cat.Size() != 3 {
		t.Errorf("size = %d, want 3", cat.Size())
	}
}

func TestLookupUnknown(t *testing.T) {
	cat, err := New([]types.Drone{validDrone("AAA-111")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cat.LookupDrone("ZZZ-000"); !errors.IsType(err, errors.TypeUnknownAsset) {
		t.Errorf("unknown drone: got %v, want UNKNOWN_ASSET", err)
	}
	if _, err := cat.LookupCamera("ZZZ-000"); !errors.IsType(err, errors.TypeUnknownAsset) {
		t.Errorf("unknown camera: got %v, want UNKNOWN_ASSET", err)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	serials := []string{"CCC-333", "AAA-111", "BBB-222"}
	var drones []types.Drone
	for _, s := range serials {
		drones = append(drones, validDrone(s))
	}

	cat, err := New(drones, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, d := range cat.Drones() {
		if d.SerialNumber != serials[i] {
			t.Errorf("position %d: got %s, want %s", i, d.SerialNumber, serials[i])
		}
	}
}

func TestInvalidAssetDefinitions(t *testing.T) {
	negativeValue := validDrone("AAA-111")
	negativeValue.Value = decimal.NewFromInt(-1)

	negativeWeight := validDrone("AAA-111")
	negativeWeight.WeightKG = decimal.NewFromInt(-1)

	excessOverLimit := validDrone("AAA-111")
	excessOverLimit.TPLExcess = excessOverLimit.TPLLimit.Add(decimal.NewFromInt(1))

	noCameraMount := validDrone("BBB-222")
	noCameraMount.HasDetachableCamera = false

	cases := []struct {
		name    string
		drones  []types.Drone
		cameras []types.DetachableCamera
	}{
		{"negative value", []types.Drone{negativeValue}, nil},
		{"negative weight", []types.Drone{negativeWeight}, nil},
		{"excess over limit", []types.Drone{excessOverLimit}, nil},
		{"duplicate drone serial", []types.Drone{validDrone("AAA-111"), validDrone("AAA-111")}, nil},
		{"empty drone serial", []types.Drone{validDrone("")}, nil},
		{
			"camera with empty compatibility set",
			[]types.Drone{validDrone("AAA-111")},
			[]types.DetachableCamera{{SerialNumber: "ZZZ-999", Value: decimal.NewFromInt(300)}},
		},
		{
			"camera referencing unknown drone",
			[]types.Drone{validDrone("AAA-111")},
			[]types.DetachableCamera{{
				SerialNumber:     "ZZZ-999",
				Value:            decimal.NewFromInt(300),
				CompatibleDrones: []string{"NOPE-000"},
			}},
		},
		{
			"camera referencing non-attachable drone",
			[]types.Drone{noCameraMount},
			[]types.DetachableCamera{{
				SerialNumber:     "ZZZ-999",
				Value:            decimal.NewFromInt(300),
				CompatibleDrones: []string{"BBB-222"},
			}},
		},
		{
			"camera with negative value",
			[]types.Drone{validDrone("AAA-111")},
			[]types.DetachableCamera{{
				SerialNumber:     "ZZZ-999",
				Value:            decimal.NewFromInt(-300),
				CompatibleDrones: []string{"AAA-111"},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat, err := New(tc.drones, tc.cameras)
			if err == nil {
				t.Fatal("expected construction to fail")
			}
			if !errors.IsType(err, errors.TypeInvalidAsset) {
				t.Errorf("error type = %v, want INVALID_ASSET", err)
			}
			if cat != nil {
				t.Error("no partial catalog may be exposed on failure")
			}
		})
	}
}

func TestSeedCatalog(t *testing.T) {
	cat, err := Seed()
	if err != nil {
		t.Fatalf("built-in schedule must be valid: %v", err)
	}
	if got := len(cat.Drones()); got != 3 {
		t.Errorf("seed drones = %d, want 3", got)
	}
	if got := len(cat.Cameras()); got != 4 {
		t.Errorf("seed cameras = %d, want 4", got)
	}

	// BBB-222 cannot carry a camera; no camera may reference it.
	for _, c := range cat.Cameras() {
		if c.IsCompatibleWith("BBB-222") {
			t.Errorf("camera %s references non-attachable drone", c.SerialNumber)
		}
	}
}
