package main

import (
	"fmt"
	"os"

	"Vodostok/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vodostok",
	Short: "Roof drainage sizing and materials calculator",
	Long: `vodostok - roof drainage calculator

Sizes downpipes and gutters for a roof and prices the materials:
  - Design flow from roof area and rainfall intensity
  - Pipe diameter, slope, velocity and capacity for PVC, metal and copper
  - Materials bill with a 10% reserve for a house outline
  - Slope and plan diagrams, PDF reports and xlsx estimates`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   vodostok v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Roof drainage calculator                                ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Commands:")
		fmt.Fprintln(out, "    • calc     size the drainage and price the materials")
		fmt.Fprintln(out, "    • scheme   draw the slope or plan diagram")
		fmt.Fprintln(out, "    • compare  compare PVC, metal and copper")
		fmt.Fprintln(out, "    • batch    calculate every row of an xlsx file")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'vodostok --help' to see all flags.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Copyright © %s %s.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
