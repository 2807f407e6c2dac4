// Package output provides quote report formatting.
// This package produces human and machine-readable outputs; it never
// does premium math beyond the brokerage gross-up.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"drone-cover/core/rating"
	"drone-cover/core/types"
	"drone-cover/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *QuoteReport) error
}

// Placement identifies the parties to the quote
type Placement struct {
	// Insured is the policyholder name
	Insured string `json:"insured"`

	// Underwriter is the underwriter name
	Underwriter string `json:"underwriter"`

	// Broker is the placing broker
	Broker string `json:"broker"`

	// Brokerage is the broker's share of gross premium (0 to 1,
	// exclusive of 1)
	Brokerage decimal.Decimal `json:"brokerage"`
}

// Gross converts a net premium to gross under this placement's
// brokerage: gross = net / (1 - brokerage).
func (p Placement) Gross(net decimal.Decimal) decimal.Decimal {
	return net.Div(decimal.NewFromInt(1).Sub(p.Brokerage))
}

// QuoteReport is the complete output of a pricing run
type QuoteReport struct {
	// Title names the run (base case or fleet extension)
	Title string `json:"title"`

	// Placement identifies the parties
	Placement Placement `json:"placement"`

	// DroneRatings holds per-drone exposure breakdowns, catalog order.
	// Present for base-case reports.
	DroneRatings []rating.DroneRating `json:"drone_ratings,omitempty"`

	// CameraRatings holds per-camera breakdowns, catalog order
	CameraRatings []rating.CameraRating `json:"camera_ratings,omitempty"`

	// Result is the priced fleet
	Result *types.FleetPricingResult `json:"result"`
}

// ForFormat returns the formatter for a format type
func ForFormat(f Format) (Formatter, error) {
	switch f {
	case FormatCLI:
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", f)
	}
}
