package formula

import "github.com/alexiusacademia/gocable/internal/nbr"

// ShortCircuitCurrent estimates Icc = V / R with R = ρ·L/S of the conductor
// alone, at 20°C. Source and transformer impedance are ignored, so the
// value is an upper bound for a fault at the end of the run.
func ShortCircuitCurrent(v, lengthM, sectionMM2 float64, m nbr.Material) (float64, error) {
	if err := requireNonNegative("voltage", v); err != nil {
		return 0, err
	}
	if err := requirePositive("length", lengthM); err != nil {
		return 0, err
	}
	if err := requirePositive("cross-section", sectionMM2); err != nil {
		return 0, err
	}
	if !m.Valid() {
		return 0, &InputError{Field: "material", Value: m, Reason: "must be copper or aluminum"}
	}

	r := m.Resistivity() * lengthM / sectionMM2
	return v / r, nil
}
