package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

var debugLogging bool

var rootCmd = &cobra.Command{
	Use:   "gocable",
	Short: "Electrical Cable Sizing Tool",
	Long: `gocable - Go Electrical Cable Sizing Tool

A CLI tool for electrical contractors sizing low-voltage circuits
based on ABNT NBR 5410.

This tool helps electricians and engineers perform:
  - Conductor sizing by voltage drop and current-carrying capacity
  - Voltage drop, short-circuit and conduit fill checks
  - Ohm's law, AC power and power-factor correction calculations
  - Lighting estimates by the lumen method
  - Unit conversions and standards lookup`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(debugLogging)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintf(w, "  ║   gocable v%-47s║\n", version.Version)
		fmt.Fprintln(w, "  ║   Go Electrical Cable Sizing Tool                         ║")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  A CLI tool for sizing low-voltage circuits")
		fmt.Fprintln(w, "  based on ABNT NBR 5410.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Features:")
		fmt.Fprintln(w, "    • Cable sizing by voltage drop and ampacity")
		fmt.Fprintln(w, "    • Voltage drop, conduit fill and short-circuit checks")
		fmt.Fprintln(w, "    • Ohm's law, AC power and power-factor correction")
		fmt.Fprintln(w, "    • Lighting estimates, unit converters and standards")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Use 'gocable --help' to see available commands.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(w, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(w)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable development logging to stderr")
}
