// Package output - Markdown report renderer
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// MarkdownFormatter renders reports as markdown tables
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report as markdown
func (f *MarkdownFormatter) Render(w io.Writer, report *QuoteReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Title)
	fmt.Fprintf(&b, "**Insured:** %s  \n", report.Placement.Insured)
	fmt.Fprintf(&b, "**Underwriter:** %s  \n", report.Placement.Underwriter)
	fmt.Fprintf(&b, "**Broker:** %s (%s%% brokerage)\n\n",
		report.Placement.Broker,
		report.Placement.Brokerage.Mul(decimal.NewFromInt(100)).StringFixed(0))

	if len(report.DroneRatings) > 0 {
		b.WriteString("## Drone Exposure\n\n")
		b.WriteString("| Serial | Hull Rate | Hull Premium | TPL ILF | TPL Premium | Unit Premium |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|\n")
		for _, r := range report.DroneRatings {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				r.SerialNumber,
				r.HullFinalRate.StringFixed(4),
				r.HullPremium.StringFixed(2),
				r.TPLILF.StringFixed(4),
				r.TPLLayerPremium.StringFixed(2),
				r.UnitPremium.StringFixed(2))
		}
		b.WriteString("\n")
	}

	if len(report.CameraRatings) > 0 {
		b.WriteString("## Camera Exposure\n\n")
		b.WriteString("| Serial | Paired Drone | Rate | Premium |\n")
		b.WriteString("|---|---|---:|---:|\n")
		for _, r := range report.CameraRatings {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				r.SerialNumber, r.PairedDrone,
				r.Rate.StringFixed(4), r.Premium.StringFixed(2))
		}
		b.WriteString("\n")
	}

	if result := report.Result; result != nil {
		fmt.Fprintf(&b, "## Premium Schedule (%s)\n\n", result.Currency)
		b.WriteString("| Serial | Kind | Unit Premium | Qty | Extended |\n")
		b.WriteString("|---|---|---:|---:|---:|\n")
		for _, row := range result.Rows {
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
				row.SerialNumber, row.Kind,
				row.UnitPremium.StringFixed(2), row.Quantity,
				row.ExtendedPremium.StringFixed(2))
		}

		b.WriteString("\n## Totals\n\n")
		b.WriteString("| | Net | Gross |\n|---|---:|---:|\n")
		writeTotal := func(label string, net decimal.Decimal) {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				label, net.StringFixed(2), report.Placement.Gross(net).StringFixed(2))
		}
		writeTotal("Drone - Hull", result.DroneHullNet)
		writeTotal("Drone - TPL", result.DroneTPLNet)
		writeTotal("Camera - Hull", result.CameraNet)
		if !result.Surcharge.IsZero() {
			writeTotal("Flat Charges", result.Surcharge)
		}
		writeTotal("**Total**", result.GrandTotal)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
