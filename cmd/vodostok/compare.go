package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"Vodostok/internal/calc/premium/recommend"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var compareInput inputFlags

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare PVC, metal and copper for the same roof",
	Long: `Calculate the roof with every material and rank them: velocity within
limits first, then total cost, then cost tier.

Example:
  vodostok compare -a 120 -r 90 -l 18 --house-length 12 --house-width 8 --house-height 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := compareInput.build(cmd)
		if err != nil {
			return err
		}
		rec, err := recommend.Materials(p.Input)
		if err != nil {
			return err
		}
		printComparison(cmd.OutOrStdout(), rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareInput.register(compareCmd)
}

func printComparison(out io.Writer, rec recommend.MaterialRecommendResult) {
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  \tMaterial\tD, mm\tVelocity, m/s\tCapacity, m³/h\tCost\tTotal, ₽\t")
	for _, o := range rec.Options {
		mark := " "
		if o.MaterialID == rec.Recommended {
			mark = color.GreenString("★")
		}
		total := "-"
		if o.Result.TotalWithReserve > 0 {
			total = fmt.Sprintf("%.0f", o.Result.TotalWithReserve)
		}
		fmt.Fprintf(w, "  %s\t%s\t%d\t%.2f %s\t%.2f\t%s\t%s\t\n",
			mark, o.Result.Material, o.Result.DiameterMM, o.Result.VelocityMS,
			velocityMark(o.Result.VelocityOK), o.Result.CapacityM3H, o.Result.CostTier, total)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n\n", rec.Notes)
}
