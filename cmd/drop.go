package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/spf13/cobra"
)

var (
	dropCircuit circuitFlags
	dropSection float64
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Calculate the voltage drop of a circuit",
	Long: `Calculate the voltage drop along a circuit for a given conductor.

  ρT = ρ20·(1 + α·(T − 20))
  ΔV = k·I·L·(r·cos φ + x·sin φ)

where r = ρT/S and x are per metre of conductor, k = 2 for single-phase
(go and return) and √3 for three-phase.

Examples:
  gocable drop --current 20 --length 30 --section 2.5
  gocable drop -i 40 -l 80 -s 10 -p 3 -v 380 --temp 90`,
	RunE: runDrop,
}

func init() {
	rootCmd.AddCommand(dropCmd)

	dropCircuit.register(dropCmd)
	dropCmd.Flags().Float64VarP(&dropSection, "section", "s", 0, "Conductor cross-section (mm²) [required]")
	dropCmd.MarkFlagRequired("section")
}

func runDrop(cmd *cobra.Command, args []string) error {
	spec, err := dropCircuit.spec()
	if err != nil {
		return err
	}

	drop, err := formula.VoltageDrop(spec, dropSection)
	if err != nil {
		return err
	}
	pct, err := formula.VoltageDropPercent(drop, spec.NominalVoltageV)
	if err != nil {
		return err
	}
	log.Debugw("voltage drop", "section", dropSection, "drop_v", drop, "drop_pct", pct)

	w := cmd.OutOrStdout()
	printHeader(w, "VOLTAGE DROP - NBR 5410")
	printCircuit(w, spec)

	printSection(w, "CONDUCTOR")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Cross-section:\t%g mm²\n", dropSection)
	fmt.Fprintf(tw, "  Resistivity at %.0f°C:\t%.5f Ω·mm²/m\n", spec.OperatingTempC, formula.ResistivityAt(spec.Material, spec.OperatingTempC))
	if amp, ok := nbr.Ampacity(dropSection); ok {
		fmt.Fprintf(tw, "  Ampacity (B1, PVC):\t%.1f A\n", amp)
	}
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	tw = newTable(w)
	fmt.Fprintf(tw, "  Voltage drop:\t%.2f V\n", drop)
	fmt.Fprintf(tw, "  Voltage drop:\t%.2f %%\n", pct)
	fmt.Fprintf(tw, "  Voltage at load:\t%.2f V\n", spec.NominalVoltageV-drop)
	tw.Flush()
	fmt.Fprintln(w)

	if pct <= nbr.MaxVoltageDropPct {
		fmt.Fprintf(w, "  ΔV = %.2f%% ≤ %.0f%% ✓\n", pct, nbr.MaxVoltageDropPct)
	} else {
		fmt.Fprintf(w, "  ΔV = %.2f%% > %.0f%% ✗ Use a larger section or shorten the run.\n", pct, nbr.MaxVoltageDropPct)
	}
	fmt.Fprintln(w)
	return nil
}
