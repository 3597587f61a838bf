package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/log"
	"github.com/spf13/cobra"
)

var (
	ohmVoltage    float64
	ohmResistance float64
	ohmCurrent    float64
)

var ohmCmd = &cobra.Command{
	Use:   "ohm",
	Short: "Solve Ohm's law from any two of voltage, resistance and current",
	Long: `Solve Ohm's law (V = R·I) and the dissipated power (P = V·I).

Give any two of --voltage, --resistance and --current; the third and the
power are derived. When all three are given, current is recomputed from
voltage and resistance. With fewer than two, the unresolved values are
shown as "-".

Examples:
  # 220 V across 10 Ω
  gocable ohm --voltage 220 --resistance 10

  # 12 V at 3 A
  gocable ohm -v 12 -i 3`,
	RunE: runOhm,
}

func init() {
	rootCmd.AddCommand(ohmCmd)

	ohmCmd.Flags().Float64VarP(&ohmVoltage, "voltage", "v", 0, "Voltage (V)")
	ohmCmd.Flags().Float64VarP(&ohmResistance, "resistance", "r", 0, "Resistance (Ω)")
	ohmCmd.Flags().Float64VarP(&ohmCurrent, "current", "i", 0, "Current (A)")
}

func runOhm(cmd *cobra.Command, args []string) error {
	var in formula.OhmInput
	if cmd.Flags().Changed("voltage") {
		in.V = formula.Float(ohmVoltage)
	}
	if cmd.Flags().Changed("resistance") {
		in.R = formula.Float(ohmResistance)
	}
	if cmd.Flags().Changed("current") {
		in.I = formula.Float(ohmCurrent)
	}

	res, err := formula.SolveOhmsLaw(in)
	if err != nil {
		return err
	}
	log.Debugw("ohm's law solved", "v", in.V != nil, "r", in.R != nil, "i", in.I != nil)

	w := cmd.OutOrStdout()
	printHeader(w, "OHM'S LAW")
	printSection(w, "RESULT")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Voltage (V):\t%s V\n", optional(res.V))
	fmt.Fprintf(tw, "  Resistance (R):\t%s Ω\n", optional(res.R))
	fmt.Fprintf(tw, "  Current (I):\t%s A\n", optional(res.I))
	fmt.Fprintf(tw, "  Power (P):\t%s W\n", optional(res.P))
	tw.Flush()
	fmt.Fprintln(w)
	return nil
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
