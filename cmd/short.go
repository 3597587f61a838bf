package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/spf13/cobra"
)

var (
	shortVoltage  float64
	shortLength   float64
	shortSection  float64
	shortMaterial string
)

var shortCmd = &cobra.Command{
	Use:   "short",
	Short: "Estimate the short-circuit current at the end of a run",
	Long: `Estimate the prospective short-circuit current at the end of a run
from the conductor resistance alone:

  Icc = V / (ρ·L / S)

Source and transformer impedance are not considered, so the value is an
upper bound useful for a first check of breaking capacity.

Examples:
  gocable short --voltage 220 --length 50 --section 10`,
	RunE: runShort,
}

func init() {
	rootCmd.AddCommand(shortCmd)

	shortCmd.Flags().Float64VarP(&shortVoltage, "voltage", "v", 220, "Voltage (V)")
	shortCmd.Flags().Float64VarP(&shortLength, "length", "l", 0, "Conductor length (m) [required]")
	shortCmd.Flags().Float64VarP(&shortSection, "section", "s", 0, "Conductor cross-section (mm²) [required]")
	shortCmd.Flags().StringVarP(&shortMaterial, "material", "m", string(nbr.Copper), "Conductor material (copper, aluminum)")

	shortCmd.MarkFlagRequired("length")
	shortCmd.MarkFlagRequired("section")
}

func runShort(cmd *cobra.Command, args []string) error {
	material, err := nbr.ParseMaterial(shortMaterial)
	if err != nil {
		return err
	}

	icc, err := formula.ShortCircuitCurrent(shortVoltage, shortLength, shortSection, material)
	if err != nil {
		return err
	}
	log.Debugw("short-circuit estimate", "icc_a", icc)

	w := cmd.OutOrStdout()
	printHeader(w, "SHORT-CIRCUIT CURRENT (CONDUCTOR ONLY)")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Voltage:\t%.1f V\n", shortVoltage)
	fmt.Fprintf(tw, "  Length:\t%.1f m\n", shortLength)
	fmt.Fprintf(tw, "  Cross-section:\t%g mm²\n", shortSection)
	fmt.Fprintf(tw, "  Material:\t%s\n", materialLabel(material))
	fmt.Fprintf(tw, "  Conductor resistance:\t%.4f Ω\n", material.Resistivity()*shortLength/shortSection)
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	fmt.Fprintf(w, "  Icc ≈ %.2f kA\n", icc/1000)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Note: source impedance ignored; actual fault current is lower.")
	fmt.Fprintln(w)
	return nil
}
