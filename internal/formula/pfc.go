package formula

import "math"

// PFCReactivePower returns the capacitor reactive power (VAr) that raises
// the power factor of a load of p watts from fpInitial to fpTarget:
// Qc = P·(tan φ1 − tan φ2). A negative value means the load is already
// above the target.
func PFCReactivePower(p, fpInitial, fpTarget float64) (float64, error) {
	if err := requireNonNegative("active power", p); err != nil {
		return 0, err
	}
	if err := requirePowerFactor("initial power factor", fpInitial); err != nil {
		return 0, err
	}
	if err := requirePowerFactor("target power factor", fpTarget); err != nil {
		return 0, err
	}

	phi1 := math.Acos(fpInitial)
	phi2 := math.Acos(fpTarget)
	return p * (math.Tan(phi1) - math.Tan(phi2)), nil
}

// PowerFactorAfter is cos φ = P/√(P²+Q²) for a load drawing q VAr.
func PowerFactorAfter(p, q float64) float64 {
	s := math.Hypot(p, q)
	if s == 0 {
		return 1
	}
	return p / s
}
