// Package sizing selects the smallest standard conductor that keeps a
// circuit within its voltage-drop and ampacity limits.
package sizing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/nbr"
)

// Status classifies a candidate row.
type Status int

const (
	StatusOK Status = iota
	StatusOverload
	StatusHighDrop
)

func (s Status) String() string {
	switch s {
	case StatusOverload:
		return "overload"
	case StatusHighDrop:
		return "high drop"
	}
	return "OK"
}

// Row is the evaluation of one candidate section.
type Row struct {
	SectionMM2       float64
	AmpacityA        float64
	DropV            float64
	DropPct          float64
	AmpacityExceeded bool
	Compliant        bool
}

// Status reports why a row is or is not compliant. Overload takes
// precedence over a high drop.
func (r Row) Status() Status {
	switch {
	case r.Compliant:
		return StatusOK
	case r.AmpacityExceeded:
		return StatusOverload
	}
	return StatusHighDrop
}

// Result holds the full comparison table and the recommendation, if any.
type Result struct {
	Circuit     formula.CircuitSpec
	Rows        []Row // ascending cross-section
	Recommended *Row  // nil when no candidate complies
}

// SizeStandard runs Size against the standard NBR 5410 table.
func SizeStandard(c formula.CircuitSpec) (*Result, error) {
	return Size(c, nbr.Conductors())
}

// Size evaluates every candidate and recommends the first compliant one.
//
// A candidate is compliant when its drop is at most 4% of the nominal
// voltage and the circuit current does not exceed its ampacity. Because
// the table is ascending, the first compliant row is the smallest adequate
// conductor. When none complies Recommended is nil and Rows is still
// fully populated.
func Size(c formula.CircuitSpec, table []nbr.Conductor) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.NominalVoltageV <= 0 {
		return nil, &formula.InputError{Field: "nominal voltage", Value: c.NominalVoltageV, Reason: "must be positive"}
	}
	if err := validateTable(table); err != nil {
		return nil, err
	}

	result := &Result{
		Circuit: c,
		Rows:    make([]Row, 0, len(table)),
	}

	for _, cand := range table {
		drop, err := formula.VoltageDrop(c, cand.SectionMM2)
		if err != nil {
			return nil, fmt.Errorf("section %g mm²: %w", cand.SectionMM2, err)
		}
		pct, err := formula.VoltageDropPercent(drop, c.NominalVoltageV)
		if err != nil {
			return nil, err
		}

		exceeded := c.CurrentA > cand.AmpacityA
		result.Rows = append(result.Rows, Row{
			SectionMM2:       cand.SectionMM2,
			AmpacityA:        cand.AmpacityA,
			DropV:            drop,
			DropPct:          pct,
			AmpacityExceeded: exceeded,
			Compliant:        pct <= nbr.MaxVoltageDropPct && !exceeded,
		})
	}

	for i := range result.Rows {
		if result.Rows[i].Compliant {
			rec := result.Rows[i]
			result.Recommended = &rec
			break
		}
	}

	return result, nil
}

func validateTable(table []nbr.Conductor) error {
	if len(table) == 0 {
		return fmt.Errorf("%w: empty conductor table", formula.ErrInvalidInput)
	}
	for i, c := range table {
		if !nbr.IsStandardSection(c.SectionMM2) {
			return &formula.InputError{Field: "cross-section", Value: c.SectionMM2, Reason: "not a standard section"}
		}
		if c.AmpacityA <= 0 {
			return &formula.InputError{Field: "ampacity", Value: c.AmpacityA, Reason: "must be positive"}
		}
		if i > 0 && c.SectionMM2 <= table[i-1].SectionMM2 {
			return fmt.Errorf("%w: conductor table must be in ascending cross-section order (%g after %g)",
				formula.ErrInvalidInput, c.SectionMM2, table[i-1].SectionMM2)
		}
	}
	return nil
}

// Best returns the row with the lowest voltage drop.
func (r *Result) Best() Row {
	return r.Rows[floats.MinIdx(r.drops())]
}

// Worst returns the row with the highest voltage drop.
func (r *Result) Worst() Row {
	return r.Rows[floats.MaxIdx(r.drops())]
}

// CompliantCount is the number of rows meeting both limits.
func (r *Result) CompliantCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Compliant {
			n++
		}
	}
	return n
}

func (r *Result) drops() []float64 {
	d := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		d[i] = row.DropPct
	}
	return d
}
