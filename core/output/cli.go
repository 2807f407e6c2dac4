// Package output - Terminal report renderer
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"drone-cover/core/ui"
)

// CLIFormatter renders reports as terminal tables
type CLIFormatter struct {
	// NoColor disables ANSI colors
	NoColor bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report as terminal output
func (f *CLIFormatter) Render(w io.Writer, report *QuoteReport) error {
	term := ui.NewWriter(w, f.NoColor)

	term.Header(report.Title)
	term.Field("Insured", report.Placement.Insured)
	term.Field("Underwriter", report.Placement.Underwriter)
	term.Field("Broker", report.Placement.Broker)
	term.Field("Brokerage", report.Placement.Brokerage.Mul(decimal.NewFromInt(100)).StringFixed(0)+"%")

	if len(report.DroneRatings) > 0 {
		term.Header("Drone Exposure")
		rows := make([][]string, 0, len(report.DroneRatings))
		for _, r := range report.DroneRatings {
			rows = append(rows, []string{
				r.SerialNumber,
				r.HullFinalRate.StringFixed(4),
				r.HullPremium.StringFixed(2),
				r.TPLILF.StringFixed(4),
				r.TPLLayerPremium.StringFixed(2),
				r.UnitPremium.StringFixed(2),
			})
		}
		term.Table(
			[]string{"Serial", "Hull Rate", "Hull Premium", "TPL ILF", "TPL Premium", "Unit Premium"},
			rows,
		)
	}

	if len(report.CameraRatings) > 0 {
		term.Header("Camera Exposure")
		rows := make([][]string, 0, len(report.CameraRatings))
		for _, r := range report.CameraRatings {
			rows = append(rows, []string{
				r.SerialNumber,
				r.PairedDrone,
				r.Rate.StringFixed(4),
				r.Premium.StringFixed(2),
			})
		}
		term.Table([]string{"Serial", "Paired Drone", "Rate", "Premium"}, rows)
	}

	result := report.Result
	if result == nil {
		return nil
	}

	term.Header("Premium Schedule (" + result.Currency.String() + ")")
	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, []string{
			row.SerialNumber,
			string(row.Kind),
			row.UnitPremium.StringFixed(2),
			decimal.NewFromInt(int64(row.Quantity)).String(),
			row.ExtendedPremium.StringFixed(2),
		})
	}
	term.Table([]string{"Serial", "Kind", "Unit Premium", "Qty", "Extended"}, rows)

	term.Header("Totals")
	gross := func(net decimal.Decimal) string {
		return report.Placement.Gross(net).StringFixed(2)
	}
	totalRows := [][]string{
		{"Drone - Hull", result.DroneHullNet.StringFixed(2), gross(result.DroneHullNet)},
		{"Drone - TPL", result.DroneTPLNet.StringFixed(2), gross(result.DroneTPLNet)},
		{"Camera - Hull", result.CameraNet.StringFixed(2), gross(result.CameraNet)},
	}
	if !result.Surcharge.IsZero() {
		totalRows = append(totalRows, []string{"Flat Charges", result.Surcharge.StringFixed(2), gross(result.Surcharge)})
	}
	totalRows = append(totalRows, []string{"Total", result.GrandTotal.StringFixed(2), gross(result.GrandTotal)})
	term.Table([]string{"", "Net", "Gross"}, totalRows)

	return nil
}
