package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/spf13/cobra"
)

var (
	powerVoltage float64
	powerCurrent float64
	powerPF      float64
	powerPhases  int
)

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Calculate active, apparent and reactive power",
	Long: `Calculate the AC power triangle of a load.

  P = V·I·cos φ·k    (W)
  S = V·I·k          (VA)
  Q = √(S² − P²)     (VAr)

where k = √3 for three-phase line values and 1 for single-phase.

Examples:
  gocable power --voltage 220 --current 10 --pf 0.8
  gocable power -v 380 -i 25 --pf 0.85 -p 3`,
	RunE: runPower,
}

func init() {
	rootCmd.AddCommand(powerCmd)

	powerCmd.Flags().Float64VarP(&powerVoltage, "voltage", "v", 220, "RMS voltage (V)")
	powerCmd.Flags().Float64VarP(&powerCurrent, "current", "i", 0, "RMS current (A) [required]")
	powerCmd.Flags().Float64Var(&powerPF, "pf", 0.92, "Power factor cos φ")
	powerCmd.Flags().IntVarP(&powerPhases, "phases", "p", 1, "Number of phases (1 or 3)")

	powerCmd.MarkFlagRequired("current")
}

func runPower(cmd *cobra.Command, args []string) error {
	phases, err := formula.ParsePhase(powerPhases)
	if err != nil {
		return err
	}

	res, err := formula.ACPower(powerVoltage, powerCurrent, powerPF, phases)
	if err != nil {
		return err
	}
	log.Debugw("power triangle", "p", res.ActiveW, "s", res.ApparentVA, "q", res.ReactiveVA)

	w := cmd.OutOrStdout()
	printHeader(w, "AC POWER")

	printSection(w, "INPUT DATA")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Voltage:\t%.1f V\n", powerVoltage)
	fmt.Fprintf(tw, "  Current:\t%.2f A\n", powerCurrent)
	fmt.Fprintf(tw, "  Power factor:\t%.2f\n", powerPF)
	fmt.Fprintf(tw, "  System:\t%s\n", phases)
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	tw = newTable(w)
	fmt.Fprintf(tw, "  Active power (P):\t%.2f W\n", res.ActiveW)
	fmt.Fprintf(tw, "  Apparent power (S):\t%.2f VA\n", res.ApparentVA)
	fmt.Fprintf(tw, "  Reactive power (Q):\t%.2f VAr\n", res.ReactiveVA)
	tw.Flush()
	fmt.Fprintln(w)
	return nil
}
