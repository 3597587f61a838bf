package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/spf13/cobra"
)

var (
	pfcPower   float64
	pfcInitial float64
	pfcTarget  float64
)

var pfcCmd = &cobra.Command{
	Use:   "pfc",
	Short: "Size a capacitor bank for power-factor correction",
	Long: `Calculate the reactive power a capacitor bank must supply to raise
the power factor of a load.

  Qc = P·(tan φ1 − tan φ2)

Examples:
  gocable pfc --power 10000 --initial 0.80 --target 0.92`,
	RunE: runPFC,
}

func init() {
	rootCmd.AddCommand(pfcCmd)

	pfcCmd.Flags().Float64VarP(&pfcPower, "power", "P", 0, "Active power of the load (W) [required]")
	pfcCmd.Flags().Float64Var(&pfcInitial, "initial", 0.80, "Present power factor")
	pfcCmd.Flags().Float64Var(&pfcTarget, "target", 0.92, "Desired power factor")

	pfcCmd.MarkFlagRequired("power")
}

func runPFC(cmd *cobra.Command, args []string) error {
	qc, err := formula.PFCReactivePower(pfcPower, pfcInitial, pfcTarget)
	if err != nil {
		return err
	}
	log.Debugw("power-factor correction", "qc_var", qc)

	qLoad := pfcPower * math.Tan(math.Acos(pfcInitial))

	w := cmd.OutOrStdout()
	printHeader(w, "POWER-FACTOR CORRECTION")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Active power:\t%.2f W\n", pfcPower)
	fmt.Fprintf(tw, "  Present power factor:\t%.2f\n", pfcInitial)
	fmt.Fprintf(tw, "  Target power factor:\t%.2f\n", pfcTarget)
	fmt.Fprintf(tw, "  Load reactive power:\t%.2f VAr\n", qLoad)
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	if qc < 1e-9 {
		fmt.Fprintln(w, "  The load already meets the target power factor; no capacitors needed.")
		fmt.Fprintln(w)
		return nil
	}
	fmt.Fprintf(w, "  Capacitor bank Qc = %.2f VAr (%.2f kVAr)\n", qc, qc/1000)
	fmt.Fprintf(w, "  Resulting power factor = %.3f\n", formula.PowerFactorAfter(pfcPower, qLoad-qc))
	fmt.Fprintln(w)
	return nil
}
