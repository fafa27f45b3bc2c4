package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/premium/estimate"
	"Vodostok/internal/calc/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	calcInput   inputFlags
	calcPDF     string
	calcXLSX    string
	calcVerbose bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Size the drainage system and price the materials",
	Long: `Calculate the design flow, downpipe diameter, slope, velocity and
capacity for a roof. When house dimensions are given, a materials bill
with a 10% reserve is added.

Examples:
  # Basic sizing
  vodostok calc --area 100 --rainfall 100 --length 10

  # Copper system with a bill, 3 downpipes and a PDF report
  vodostok calc -a 120 -r 90 -l 18 -m copper \
    --house-length 12 --house-width 8 --house-height 6 --drains 3 --pdf report.pdf

  # From a project file
  vodostok calc --input dacha.yaml --xlsx estimate.xlsx`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcInput.register(calcCmd)
	calcCmd.Flags().StringVar(&calcPDF, "pdf", "", "Write a PDF report to this file")
	calcCmd.Flags().StringVar(&calcXLSX, "xlsx", "", "Write the materials estimate to this xlsx file")
	calcCmd.Flags().BoolVarP(&calcVerbose, "verbose", "v", false, "Also print the materials bill in Latin titles")
}

func runCalc(cmd *cobra.Command, args []string) error {
	p, err := calcInput.build(cmd)
	if err != nil {
		return err
	}
	res, err := drainage.Calculate(p.Input)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), p, res, calcVerbose)

	if calcPDF != "" {
		meta := report.Meta{Project: p.Project, Author: p.Author, Notes: p.Notes}
		if err := writeFile(calcPDF, func(w io.Writer) error {
			return report.Render(w, meta, p.Input, res, time.Now())
		}); err != nil {
			return fmt.Errorf("failed to write PDF report: %w", err)
		}
		color.Green("Report saved to %s\n", calcPDF)
	}
	if calcXLSX != "" {
		if err := writeFile(calcXLSX, func(w io.Writer) error {
			return estimate.Write(w, res)
		}); err != nil {
			return fmt.Errorf("failed to write estimate: %w", err)
		}
		color.Green("Estimate saved to %s\n", calcXLSX)
	}
	return nil
}

func printResult(out io.Writer, p Project, res drainage.Result, latin bool) {
	in := p.Input

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	if p.Project != "" {
		fmt.Fprintf(out, "     ROOF DRAINAGE - %s\n", p.Project)
	} else {
		fmt.Fprintln(out, "     ROOF DRAINAGE")
	}
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Roof area:\t%g m²\n", in.RoofAreaM2)
	fmt.Fprintf(w, "  Rainfall intensity:\t%g mm/h\n", in.RainfallMMH)
	fmt.Fprintf(w, "  Drain run length:\t%g m\n", in.DrainLengthM)
	fmt.Fprintf(w, "  Material:\t%s\n", res.Material)
	if in.Extended() {
		fmt.Fprintf(w, "  House:\t%g × %g × %g m\n", in.HouseLengthM, in.HouseWidthM, in.HouseHeightM)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design flow:\t%.3f\n", res.FlowRate)
	fmt.Fprintf(w, "  Pipe diameter:\t%d mm\n", res.DiameterMM)
	fmt.Fprintf(w, "  Slope:\t%g mm/m\n", res.SlopeMMPerM)
	fmt.Fprintf(w, "  Velocity:\t%.2f m/s %s\n", res.VelocityMS, velocityMark(res.VelocityOK))
	fmt.Fprintf(w, "  Capacity:\t%.2f m³/h\n", res.CapacityM3H)
	fmt.Fprintf(w, "  Roughness n:\t%g\n", res.Roughness)
	fmt.Fprintf(w, "  Cost tier:\t%s\n", res.CostTier)
	fmt.Fprintf(w, "  Downpipes:\t%d\n", res.DrainCount)
	w.Flush()
	fmt.Fprintln(out)

	if len(res.Materials) > 0 {
		fmt.Fprintln(out, "MATERIALS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "Item\tQty\tUnit\tPrice, ₽\tTotal, ₽\t")
		for _, item := range res.Materials {
			name := item.Name
			if latin {
				name = drainage.ComponentTitle(item)
			}
			fmt.Fprintf(w, "%s\t%g\t%s\t%.0f\t%.0f\t\n", name, item.Quantity, item.Unit, item.UnitPrice, item.TotalPrice)
		}
		w.Flush()
		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Total:\t%.0f ₽\n", res.TotalCost)
		fmt.Fprintf(w, "  With 10%% reserve:\t%s\n", color.GreenString("%.0f ₽", res.TotalWithReserve))
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "  %s\n\n", res.Notes)
}

func velocityMark(ok bool) string {
	if ok {
		return color.GreenString("✓")
	}
	return color.YellowString("⚠ (outside %.1f-%.1f m/s)", drainage.MinVelocity, drainage.MaxVelocity)
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
