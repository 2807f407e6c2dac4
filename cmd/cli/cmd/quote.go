// Package cmd - quote commands
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drone-cover/adapters/catalogfile"
	"drone-cover/core/catalog"
	"drone-cover/core/fleet"
	"drone-cover/core/output"
	"drone-cover/core/rating"
	"drone-cover/core/types"
	"drone-cover/internal/config"
	"drone-cover/internal/errors"
	"drone-cover/internal/logging"
)

var (
	outputFormat    string
	scheduleFile    string
	droneQuantities []string
	camQuantities   []string
	interactive     bool
	droneFleetSize  int
	cameraFleetSize int
)

// quoteCmd groups the pricing runs
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute premiums for the schedule or a fleet",
}

// quoteBaseCmd prices every catalog asset at quantity 1
var quoteBaseCmd = &cobra.Command{
	Use:   "base",
	Short: "Price every scheduled asset at quantity 1",
	Long: `Compute the base-case quote: every drone and camera on the schedule
at quantity 1, with the intermediate exposure components that the
premiums derive from.`,
	Args: cobra.NoArgs,
	RunE: runQuoteBase,
}

// quoteFleetCmd prices a user-specified fleet
var quoteFleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Price a fleet of quantities per serial number",
	Long: `Compute the extension quote for user-supplied quantities.

Quantities are given as repeated SERIAL=QTY flags, or collected
interactively for every scheduled asset:

  drone-cover quote fleet --drone AAA-111=3 --drone CCC-333=1 --camera ZZZ-999=2
  drone-cover quote fleet --interactive`,
	Args: cobra.NoArgs,
	RunE: runQuoteFleet,
}

func init() {
	for _, c := range []*cobra.Command{quoteBaseCmd, quoteFleetCmd} {
		c.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
		c.Flags().StringVarP(&scheduleFile, "schedule", "s", "", "HCL schedule file (default: built-in schedule)")
	}

	quoteFleetCmd.Flags().StringArrayVar(&droneQuantities, "drone", nil, "drone quantity as SERIAL=QTY (repeatable)")
	quoteFleetCmd.Flags().StringArrayVar(&camQuantities, "camera", nil, "camera quantity as SERIAL=QTY (repeatable)")
	quoteFleetCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for a quantity per scheduled asset")
	quoteFleetCmd.Flags().IntVar(&droneFleetSize, "drone-fleet-size", 0, "declared drone fleet size (0 = uncapped)")
	quoteFleetCmd.Flags().IntVar(&cameraFleetSize, "camera-fleet-size", 0, "declared camera fleet size (0 = uncapped)")

	quoteCmd.AddCommand(quoteBaseCmd)
	quoteCmd.AddCommand(quoteFleetCmd)
}

func runQuoteBase(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	cfg := config.Get()
	agg := fleet.NewAggregator(cat, rating.NewEngine(cfg.Rating))

	req := agg.BaseCase()
	droneRatings, cameraRatings, err := agg.ExposureBreakdown(req)
	if err != nil {
		return err
	}
	result, err := agg.PriceFleet(req)
	if err != nil {
		return err
	}

	return render(&output.QuoteReport{
		Title:         "Base Case Quote",
		Placement:     placement(cfg),
		DroneRatings:  droneRatings,
		CameraRatings: cameraRatings,
		Result:        result,
	})
}

func runQuoteFleet(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	cfg := config.Get()
	agg := fleet.NewAggregator(cat, rating.NewEngine(cfg.Rating))

	var req types.FleetRequest
	if interactive {
		req, err = promptFleet(cat)
	} else {
		req, err = parseFleetFlags()
	}
	if err != nil {
		return err
	}

	opts := []fleet.Option{
		fleet.WithFlatCharges(cfg.Placement.UninsuredDroneCharge, cfg.Placement.ExcessCameraCharge),
	}
	if droneFleetSize > 0 {
		opts = append(opts, fleet.WithDroneFleetSize(droneFleetSize))
	}
	if cameraFleetSize > 0 {
		opts = append(opts, fleet.WithCameraFleetSize(cameraFleetSize))
	}

	result, err := agg.PriceFleet(req, opts...)
	if err != nil {
		return err
	}

	return render(&output.QuoteReport{
		Title:     "Fleet Extension Quote",
		Placement: placement(cfg),
		Result:    result,
	})
}

// loadCatalog resolves the active schedule: an HCL file when given,
// the built-in schedule otherwise.
func loadCatalog() (*catalog.Catalog, error) {
	if scheduleFile != "" {
		logging.Debug("loading schedule", zap.String("path", scheduleFile))
		return catalogfile.Load(scheduleFile)
	}
	return catalog.Seed()
}

func placement(cfg *config.Config) output.Placement {
	return output.Placement{
		Insured:     cfg.Placement.Insured,
		Underwriter: cfg.Placement.Underwriter,
		Broker:      cfg.Placement.Broker,
		Brokerage:   cfg.Placement.Brokerage,
	}
}

func render(report *output.QuoteReport) error {
	cfg := config.Get()
	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}

	formatter, err := output.ForFormat(format)
	if err != nil {
		return err
	}
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.NoColor = cfg.Output.NoColor
	}
	return formatter.Render(os.Stdout, report)
}

// parseFleetFlags builds the fleet request from repeated SERIAL=QTY
// flags
func parseFleetFlags() (types.FleetRequest, error) {
	req := types.NewFleetRequest()
	for _, spec := range droneQuantities {
		serial, qty, err := parseQuantity(spec)
		if err != nil {
			return req, err
		}
		req.Drones[serial] = qty
	}
	for _, spec := range camQuantities {
		serial, qty, err := parseQuantity(spec)
		if err != nil {
			return req, err
		}
		req.Cameras[serial] = qty
	}
	return req, nil
}

func parseQuantity(spec string) (string, int, error) {
	serial, qtyStr, ok := strings.Cut(spec, "=")
	if !ok {
		return "", 0, errors.Input("expected SERIAL=QTY, got " + spec)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 0 {
		return "", 0, errors.Input("quantity for " + serial + " must be a non-negative integer")
	}
	return serial, qty, nil
}

// promptFleet collects a quantity for every scheduled asset from
// stdin. Blank input means zero.
func promptFleet(cat *catalog.Catalog) (types.FleetRequest, error) {
	req := types.NewFleetRequest()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Enter requested quantities (blank = 0):")
	for _, d := range cat.Drones() {
		qty, err := promptQuantity(reader, "drone", d.SerialNumber)
		if err != nil {
			return req, err
		}
		req.Drones[d.SerialNumber] = qty
	}
	for _, c := range cat.Cameras() {
		qty, err := promptQuantity(reader, "camera", c.SerialNumber)
		if err != nil {
			return req, err
		}
		req.Cameras[c.SerialNumber] = qty
	}
	return req, nil
}

func promptQuantity(reader *bufio.Reader, kind, serial string) (int, error) {
	for {
		fmt.Printf("  %s %s: ", kind, serial)
		input, err := reader.ReadString('\n')
		if err != nil {
			return 0, errors.Input("failed to read quantity for " + serial)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			return 0, nil
		}
		qty, err := strconv.Atoi(input)
		if err != nil || qty < 0 {
			fmt.Println("  please enter a non-negative integer")
			continue
		}
		return qty, nil
	}
}
