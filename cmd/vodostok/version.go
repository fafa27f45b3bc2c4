package main

import (
	"fmt"

	"Vodostok/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vodostok",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vodostok %s\n", version.Get())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
