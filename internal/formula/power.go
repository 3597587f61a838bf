package formula

import "math"

// Phase is the number of phases of a supply.
type Phase int

const (
	SinglePhase Phase = 1
	ThreePhase  Phase = 3
)

// ParsePhase accepts 1 or 3.
func ParsePhase(n int) (Phase, error) {
	p := Phase(n)
	if !p.Valid() {
		return 0, invalid("phase count", float64(n), "must be 1 or 3")
	}
	return p, nil
}

func (p Phase) Valid() bool {
	return p == SinglePhase || p == ThreePhase
}

func (p Phase) String() string {
	if p == ThreePhase {
		return "three-phase"
	}
	return "single-phase"
}

// powerMultiplier is √3 for three-phase line quantities, 1 otherwise.
func (p Phase) powerMultiplier() float64 {
	if p == ThreePhase {
		return math.Sqrt(3)
	}
	return 1
}

// dropMultiplier is √3 for three-phase and 2 for single-phase (go and return conductors).
func (p Phase) dropMultiplier() float64 {
	if p == ThreePhase {
		return math.Sqrt(3)
	}
	return 2
}

// PowerTriangle holds the AC power components.
type PowerTriangle struct {
	ActiveW    float64 // P
	ApparentVA float64 // S
	ReactiveVA float64 // Q (VAr)
}

// ACPower computes P = V·I·pf·k, S = V·I·k and Q = √(S²−P²).
// Q is clamped at zero when rounding leaves S slightly below P.
func ACPower(v, i, pf float64, phases Phase) (PowerTriangle, error) {
	if err := requireNonNegative("voltage", v); err != nil {
		return PowerTriangle{}, err
	}
	if err := requireNonNegative("current", i); err != nil {
		return PowerTriangle{}, err
	}
	if err := requirePowerFactor("power factor", pf); err != nil {
		return PowerTriangle{}, err
	}
	if !phases.Valid() {
		return PowerTriangle{}, invalid("phase count", float64(phases), "must be 1 or 3")
	}

	k := phases.powerMultiplier()
	p := v * i * pf * k
	s := v * i * k

	return PowerTriangle{
		ActiveW:    p,
		ApparentVA: s,
		ReactiveVA: reactive(s, p),
	}, nil
}

func reactive(s, p float64) float64 {
	d := s*s - p*p
	if d <= 0 {
		return 0
	}
	return math.Sqrt(d)
}
