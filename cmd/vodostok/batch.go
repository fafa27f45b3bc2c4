package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"Vodostok/internal/calc/premium/importer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.xlsx>",
	Short: "Calculate every row of an xlsx workbook",
	Long: `Read the first sheet of a workbook and calculate each data row.
Columns: material, roof_area_m2, rainfall_mm_h, drain_length_m,
house_length_m, house_width_m, house_height_m, drains. The first row is
a header; house dimensions and drains are optional.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		out, err := importer.Import(f)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", args[0], err)
		}
		printBatch(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func printBatch(out io.Writer, res importer.DrainageImportResult) {
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Row\tMaterial\tFlow\tD, mm\tSlope, mm/m\tVelocity, m/s\tTotal, ₽\t")
	for _, r := range res.Results {
		total := "-"
		if r.Result.TotalWithReserve > 0 {
			total = fmt.Sprintf("%.0f", r.Result.TotalWithReserve)
		}
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%d\t%g\t%.2f %s\t%s\t\n",
			r.Row, r.Result.Material, r.Result.FlowRate, r.Result.DiameterMM,
			r.Result.SlopeMMPerM, r.Result.VelocityMS, velocityMark(r.Result.VelocityOK), total)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Calculated: %d\n", res.Count)
	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, color.RedString("  Skipped rows: %v", res.Skipped))
	}
	fmt.Fprintln(out)
}
