// Package catalogfile - Schedule parsing tests
package catalogfile

import (
	"testing"

	"github.com/shopspring/decimal"

	"drone-cover/internal/errors"
)

const validSchedule = `
drone "AAA-111" {
  value                 = 10000
  weight_kg             = 2
  has_detachable_camera = true
  tpl_limit             = 1000000
}

drone "BBB-222" {
  value                 = 12000
  weight_kg             = 15
  has_detachable_camera = false
  tpl_limit             = 4000000
  tpl_excess            = 1000000
}

camera "ZZZ-999" {
  value             = 5000
  compatible_drones = ["AAA-111"]
}
`

func TestParseValidSchedule(t *testing.T) {
	cat, err := Parse([]byte(validSchedule), "fleet.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drones := cat.Drones()
	if len(drones) != 2 {
		t.Fatalf("drones = %d, want 2", len(drones))
	}
	if drones[0].SerialNumber != "AAA-111" {
		t.Errorf("first drone = %s, want AAA-111", drones[0].SerialNumber)
	}
	if !drones[1].TPLExcess.Equal(decimal.NewFromInt(1000000)) {
		t.Errorf("BBB-222 excess = %s, want 1000000", drones[1].TPLExcess)
	}
	// tpl_excess is optional and defaults to zero.
	if !drones[0].TPLExcess.IsZero() {
		t.Errorf("AAA-111 excess = %s, want 0", drones[0].TPLExcess)
	}

	cams := cat.Cameras()
	if len(cams) != 1 || cams[0].SerialNumber != "ZZZ-999" {
		t.Fatalf("cameras = %v", cams)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte(`drone "AAA-111" {`), "broken.hcl")
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("got %v, want PARSING_ERROR", err)
	}
}

func TestParseRejectsInvalidAsset(t *testing.T) {
	src := `
drone "AAA-111" {
  value                 = 10000
  weight_kg             = 2
  has_detachable_camera = false
  tpl_limit             = 1000000
}

camera "ZZZ-999" {
  value             = 5000
  compatible_drones = ["AAA-111"]
}
`
	// Well-formed HCL, but the camera references a drone that cannot
	// carry one: catalog validation must reject it.
	_, err := Parse([]byte(src), "fleet.hcl")
	if !errors.IsType(err, errors.TypeInvalidAsset) {
		t.Errorf("got %v, want INVALID_ASSET", err)
	}
}
