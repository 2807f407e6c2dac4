// Package cmd - catalog commands
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"drone-cover/core/ui"
	"drone-cover/internal/config"
)

// catalogCmd groups catalog inspection commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the asset catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scheduled drones and cameras",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a schedule file without pricing it",
	Args:  cobra.NoArgs,
	RunE:  runCatalogValidate,
}

func init() {
	for _, c := range []*cobra.Command{catalogListCmd, catalogValidateCmd} {
		c.Flags().StringVarP(&scheduleFile, "schedule", "s", "", "HCL schedule file (default: built-in schedule)")
	}
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	term := ui.NewWriter(os.Stdout, config.Get().Output.NoColor)

	term.Header("Drones")
	rows := make([][]string, 0)
	for _, d := range cat.Drones() {
		camera := "no"
		if d.HasDetachableCamera {
			camera = "yes"
		}
		rows = append(rows, []string{
			d.SerialNumber,
			d.Value.StringFixed(0),
			d.WeightKG.String() + "kg",
			camera,
			d.TPLLimit.StringFixed(0),
			d.TPLExcess.StringFixed(0),
		})
	}
	term.Table([]string{"Serial", "Value", "Weight", "Camera", "TPL Limit", "TPL Excess"}, rows)

	term.Header("Detachable Cameras")
	rows = rows[:0]
	for _, c := range cat.Cameras() {
		rows = append(rows, []string{
			c.SerialNumber,
			c.Value.StringFixed(0),
			strings.Join(c.CompatibleDrones, ", "),
		})
	}
	term.Table([]string{"Serial", "Value", "Compatible Drones"}, rows)

	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	fmt.Printf("schedule is valid: %d drones, %d cameras\n",
		len(cat.Drones()), len(cat.Cameras()))
	return nil
}
