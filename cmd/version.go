package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocable",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, version.String())
		fmt.Fprintln(w, "Electrical Cable Sizing Tool")
		fmt.Fprintln(w, "Based on ABNT NBR 5410 (Low-voltage electrical installations)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
