package cmd

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/spf13/cobra"
)

// circuitFlags are shared by every command that describes a circuit run.
type circuitFlags struct {
	current     float64
	length      float64
	voltage     float64
	phases      int
	powerFactor float64
	reactance   float64
	temperature float64
	material    string
}

func (f *circuitFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.current, "current", "i", 0, "Design current (A) [required]")
	cmd.Flags().Float64VarP(&f.length, "length", "l", 0, "One-way circuit length (m) [required]")
	cmd.Flags().Float64VarP(&f.voltage, "voltage", "v", 220, "Nominal voltage (V)")
	cmd.Flags().IntVarP(&f.phases, "phases", "p", 1, "Number of phases (1 or 3)")
	cmd.Flags().Float64Var(&f.powerFactor, "pf", 0.92, "Power factor cos φ")
	cmd.Flags().Float64VarP(&f.reactance, "reactance", "x", 0.1, "Conductor reactance (Ω/km)")
	cmd.Flags().Float64VarP(&f.temperature, "temp", "t", nbr.TempPVC, "Conductor operating temperature (°C): 20, 70 (PVC), 90 (XLPE/EPR)")
	cmd.Flags().StringVarP(&f.material, "material", "m", string(nbr.Copper), "Conductor material (copper, aluminum)")

	cmd.MarkFlagRequired("current")
	cmd.MarkFlagRequired("length")
}

func (f *circuitFlags) spec() (formula.CircuitSpec, error) {
	material, err := nbr.ParseMaterial(f.material)
	if err != nil {
		return formula.CircuitSpec{}, err
	}
	phases, err := formula.ParsePhase(f.phases)
	if err != nil {
		return formula.CircuitSpec{}, err
	}

	spec := formula.CircuitSpec{
		LengthM:           f.length,
		CurrentA:          f.current,
		NominalVoltageV:   f.voltage,
		Phases:            phases,
		PowerFactor:       f.powerFactor,
		ReactanceOhmPerKm: f.reactance,
		OperatingTempC:    f.temperature,
		Material:          material,
	}
	return spec, spec.Validate()
}

func materialLabel(m nbr.Material) string {
	if m == nbr.Aluminum {
		return "Aluminum"
	}
	return "Copper"
}

func printCircuit(w io.Writer, spec formula.CircuitSpec) {
	printSection(w, "CIRCUIT")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Current (I):\t%.2f A\n", spec.CurrentA)
	fmt.Fprintf(tw, "  Length (L):\t%.1f m\n", spec.LengthM)
	fmt.Fprintf(tw, "  Nominal voltage:\t%.1f V\n", spec.NominalVoltageV)
	fmt.Fprintf(tw, "  System:\t%s\n", spec.Phases)
	fmt.Fprintf(tw, "  Power factor:\t%.2f\n", spec.PowerFactor)
	fmt.Fprintf(tw, "  Reactance:\t%.3f Ω/km\n", spec.ReactanceOhmPerKm)
	fmt.Fprintf(tw, "  Temperature:\t%.0f °C\n", spec.OperatingTempC)
	fmt.Fprintf(tw, "  Material:\t%s\n", materialLabel(spec.Material))
	tw.Flush()
	fmt.Fprintln(w)
}
