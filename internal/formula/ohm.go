package formula

// OhmInput holds the known quantities. Nil means unknown.
type OhmInput struct {
	V *float64 // volts
	R *float64 // ohms
	I *float64 // amperes
}

// OhmResult holds the solved quantities. Nil means unresolved.
type OhmResult struct {
	V *float64
	R *float64
	I *float64
	P *float64 // watts
}

type ohmPair int

const (
	pairNone ohmPair = iota
	pairVR
	pairVI
	pairRI
)

// pair picks the first complete pair in V-R, V-I, R-I order.
func (in OhmInput) pair() ohmPair {
	switch {
	case in.V != nil && in.R != nil:
		return pairVR
	case in.V != nil && in.I != nil:
		return pairVI
	case in.R != nil && in.I != nil:
		return pairRI
	}
	return pairNone
}

// SolveOhmsLaw derives the missing quantity and power from any two of V, R, I.
//
// When all three are given the V-R pair wins and I is recomputed as V/R.
// With fewer than two inputs the supplied values are echoed back and the
// rest stay nil.
func SolveOhmsLaw(in OhmInput) (OhmResult, error) {
	for _, q := range []struct {
		field string
		v     *float64
	}{{"voltage", in.V}, {"resistance", in.R}, {"current", in.I}} {
		if q.v == nil {
			continue
		}
		if err := requireFinite(q.field, *q.v); err != nil {
			return OhmResult{}, err
		}
	}
	if in.R != nil {
		if err := requireNonNegative("resistance", *in.R); err != nil {
			return OhmResult{}, err
		}
	}

	res := OhmResult{V: in.V, R: in.R, I: in.I}

	switch in.pair() {
	case pairVR:
		if *in.R == 0 {
			return OhmResult{}, invalid("resistance", 0, "cannot derive current from zero resistance")
		}
		i := *in.V / *in.R
		p := *in.V * i
		res.I, res.P = &i, &p
	case pairVI:
		if *in.I == 0 {
			return OhmResult{}, invalid("current", 0, "cannot derive resistance from zero current")
		}
		r := *in.V / *in.I
		p := *in.V * *in.I
		res.R, res.P = &r, &p
	case pairRI:
		v := *in.R * *in.I
		p := v * *in.I
		res.V, res.P = &v, &p
	}

	if res.P == nil && res.V != nil && res.I != nil {
		p := *res.V * *res.I
		res.P = &p
	}

	return res, nil
}

// Float returns a pointer to v, for building OhmInput literals.
func Float(v float64) *float64 {
	return &v
}
