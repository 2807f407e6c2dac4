package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := UnknownAsset("drone", "ZZZ-000")
	if got := err.Error(); got != "[UNKNOWN_ASSET] drone not found: ZZZ-000" {
		t.Errorf("unexpected message: %s", got)
	}
	if !IsType(err, TypeUnknownAsset) {
		t.Error("IsType must match the constructor's type")
	}
	if IsType(err, TypeInvalidAsset) {
		t.Error("IsType must not match other types")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Parsing("bad schedule", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause must unwrap")
	}
}

func TestIncompatiblePairingContext(t *testing.T) {
	err := IncompatiblePairing("ZZZ-999", "BBB-222")
	if err.Context["camera"] != "ZZZ-999" || err.Context["drone"] != "BBB-222" {
		t.Errorf("context = %v", err.Context)
	}
}
