// Package conduit sizes a conduit for a mixed bundle of cables.
package conduit

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/formula"
)

// Entry is a number of identical cables of one standard section.
type Entry struct {
	SectionMM2 float64 `yaml:"section" json:"section"`
	Count      int     `yaml:"count" json:"count"`
}

// Result of a conduit fill calculation
type Result struct {
	CableCount            int     // total cables drawn in
	TotalConductorAreaMM2 float64 // sum of cable outer areas
	FillLimitPct          float64 // occupancy limit applied (%)
	RequiredAreaMM2       float64 // minimum internal conduit area
	RequiredDiameterMM    float64 // minimum internal conduit diameter
}

// Fill aggregates the entries into a single required internal diameter.
// The fill limit depends on the total number of cables, not on any single
// entry, so the result is independent of entry order.
func Fill(entries []Entry) (*Result, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no cables given", formula.ErrInvalidInput)
	}

	var totalArea float64
	var count int
	for i, e := range entries {
		if e.Count <= 0 {
			return nil, fmt.Errorf("entry %d: %w", i+1,
				&formula.InputError{Field: "cable count", Value: e.Count, Reason: "must be positive"})
		}
		area, err := formula.CableArea(e.SectionMM2)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		totalArea += area * float64(e.Count)
		count += e.Count
	}

	limit, err := formula.FillLimit(count)
	if err != nil {
		return nil, err
	}

	required := totalArea / limit

	return &Result{
		CableCount:            count,
		TotalConductorAreaMM2: totalArea,
		FillLimitPct:          limit * 100,
		RequiredAreaMM2:       required,
		RequiredDiameterMM:    formula.DiameterForArea(required),
	}, nil
}
