package formula

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/nbr"
)

// CableArea is the cross-sectional area (mm²) occupied by one insulated
// cable of a standard section, from its outer diameter.
func CableArea(sectionMM2 float64) (float64, error) {
	d, ok := nbr.CableDiameter(sectionMM2)
	if !ok {
		return 0, invalid("cross-section", sectionMM2, "not a standard section")
	}
	return math.Pi * math.Pow(d/2, 2), nil
}

// FillLimit is the maximum conduit occupancy ratio for the total number of
// cables drawn in: 53% for one, 31% for two, 40% for three or more.
func FillLimit(cableCount int) (float64, error) {
	switch {
	case cableCount <= 0:
		return 0, invalid("cable count", float64(cableCount), "must be positive")
	case cableCount == 1:
		return nbr.FillLimitOneCable, nil
	case cableCount == 2:
		return nbr.FillLimitTwoCables, nil
	}
	return nbr.FillLimitThreeOrMore, nil
}

// DiameterForArea back-solves d from area = π·(d/2)².
func DiameterForArea(area float64) float64 {
	return math.Sqrt(4 * area / math.Pi)
}
