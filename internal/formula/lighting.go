package formula

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/nbr"
)

// Lighting is the result of a lumen-method estimate.
type Lighting struct {
	AreaM2      float64
	TotalLumens float64
	LampCount   int
}

// LightingLoad applies the lumen method with fixed utilization (0.5) and
// depreciation (0.8) factors.
func LightingLoad(lengthM, widthM, lux, lumensPerLamp float64) (Lighting, error) {
	if err := requireNonNegative("room length", lengthM); err != nil {
		return Lighting{}, err
	}
	if err := requireNonNegative("room width", widthM); err != nil {
		return Lighting{}, err
	}
	if err := requireNonNegative("illuminance", lux); err != nil {
		return Lighting{}, err
	}
	if err := requirePositive("lumens per lamp", lumensPerLamp); err != nil {
		return Lighting{}, err
	}

	area := lengthM * widthM
	total := area * lux / (nbr.UtilizationFactor * nbr.DepreciationFactor)

	return Lighting{
		AreaM2:      area,
		TotalLumens: total,
		LampCount:   int(math.Ceil(total / lumensPerLamp)),
	}, nil
}
