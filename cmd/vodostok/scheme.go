package main

import (
	"fmt"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/plan"
	"Vodostok/internal/diagram"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
)

var (
	schemeInput  inputFlags
	schemeView   string
	schemeOutput string
)

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Draw the slope profile or the plan view",
	Long: `Draw the drain run slope or the house plan with downpipe positions.
Without --output an ASCII drawing is printed.

Examples:
  vodostok scheme -a 100 -r 100 -l 10
  vodostok scheme -a 100 -r 100 -l 10 -o slope.svg
  vodostok scheme --view plan --input dacha.yaml -o plan.png`,
	RunE: runScheme,
}

func init() {
	rootCmd.AddCommand(schemeCmd)
	schemeInput.register(schemeCmd)
	schemeCmd.Flags().StringVar(&schemeView, "view", diagram.ViewProfile, "Drawing: profile or plan")
	schemeCmd.Flags().StringVarP(&schemeOutput, "output", "o", "", "Export the diagram to file (png, svg, pdf)")
}

func runScheme(cmd *cobra.Command, args []string) error {
	p, err := schemeInput.build(cmd)
	if err != nil {
		return err
	}
	res, err := drainage.Calculate(p.Input)
	if err != nil {
		return err
	}
	geom := drainage.Scheme(p.Input, res)

	if schemeView != diagram.ViewProfile && schemeView != diagram.ViewPlan {
		return fmt.Errorf("unknown view %q", schemeView)
	}
	if schemeView == diagram.ViewPlan && !p.Extended() {
		return fmt.Errorf("plan view needs --house-length, --house-width and --house-height")
	}

	points := p.DrainPoints
	if len(points) == 0 {
		points = plan.Spread(p.Drains)
	}

	if schemeOutput == "" {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		if schemeView == diagram.ViewPlan {
			fmt.Fprint(out, diagram.DrawASCIIPlan(points))
		} else {
			fmt.Fprint(out, diagram.DrawASCIISlope(geom))
		}
		fmt.Fprintln(out)
		return nil
	}

	var pl *plot.Plot
	if schemeView == diagram.ViewPlan {
		pl, err = diagram.PlanPlot(p.HouseLengthM, p.HouseWidthM, points)
	} else {
		pl, err = diagram.SlopePlot(geom)
	}
	if err != nil {
		return err
	}
	if err := diagram.Export(pl, schemeOutput); err != nil {
		return fmt.Errorf("failed to export diagram: %w", err)
	}
	color.Green("Diagram saved to %s\n", schemeOutput)
	return nil
}
