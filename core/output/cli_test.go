// Package output - Renderer tests
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"drone-cover/core/types"
)

func testReport() *QuoteReport {
	return &QuoteReport{
		Title: "Fleet Extension Quote",
		Placement: Placement{
			Insured:     "Drones R Us",
			Underwriter: "Michael",
			Broker:      "Aon",
			Brokerage:   decimal.NewFromFloat(0.3),
		},
		Result: &types.FleetPricingResult{
			Rows: []types.PremiumRow{
				{
					SerialNumber:    "AAA-111",
					Kind:            types.KindDrone,
					UnitPremium:     decimal.NewFromInt(700),
					Quantity:        3,
					ExtendedPremium: decimal.NewFromInt(2100),
				},
			},
			DroneHullNet: decimal.NewFromInt(1800),
			DroneTPLNet:  decimal.NewFromInt(300),
			GrandTotal:   decimal.NewFromInt(2100),
			Currency:     types.CurrencyGBP,
		},
	}
}

func TestGrossUp(t *testing.T) {
	p := Placement{Brokerage: decimal.NewFromFloat(0.3)}

	// At 30% brokerage, gross is net * 10/7.
	got := p.Gross(decimal.NewFromInt(700))
	if !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("gross = %s, want 1000", got)
	}
}

func TestCLIRender(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{NoColor: true}
	if err := f.Render(&buf, testReport()); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"AAA-111", "2100.00", "Drones R Us", "3000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONRenderRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Render(&buf, testReport()); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var decoded QuoteReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Title != "Fleet Extension Quote" {
		t.Errorf("title = %s", decoded.Title)
	}
	if !decoded.Result.GrandTotal.Equal(decimal.NewFromInt(2100)) {
		t.Errorf("grand total = %s", decoded.Result.GrandTotal)
	}
}

func TestMarkdownRender(t *testing.T) {
	var buf bytes.Buffer
	f := &MarkdownFormatter{}
	if err := f.Render(&buf, testReport()); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| AAA-111 | drone |") {
		t.Errorf("markdown table missing drone row:\n%s", out)
	}
}

func TestForFormatUnknown(t *testing.T) {
	if _, err := ForFormat("yaml"); err == nil {
		t.Error("unknown format must error")
	}
}
