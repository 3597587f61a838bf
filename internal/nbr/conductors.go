package nbr

import "slices"

// Conductor is one row of the standard cross-section table.
type Conductor struct {
	SectionMM2 float64 // nominal cross-section (mm²)
	AmpacityA  float64 // current-carrying capacity (A)
}

// NBR 5410 Table 36 - PVC, 2 loaded conductors, reference method B1.
// Sorted by ascending cross-section.
var conductors = [...]Conductor{
	{1.5, 17.5},
	{2.5, 24},
	{4, 32},
	{6, 41},
	{10, 57},
	{16, 76},
	{25, 101},
	{35, 125},
	{50, 151},
	{70, 192},
	{95, 232},
	{120, 269},
	{150, 309},
	{185, 353},
	{240, 415},
}

// Approximate outer diameter (mm) of 750V PVC single-core cables.
var cableDiameters = map[float64]float64{
	1.5: 3.0,
	2.5: 3.6,
	4:   4.2,
	6:   4.8,
	10:  6.2,
	16:  7.4,
	25:  9.2,
	35:  10.5,
	50:  12.5,
	70:  14.5,
	95:  17.0,
	120: 18.8,
	150: 21.0,
	185: 23.5,
	240: 27.0,
}

// Design limits
const (
	// MaxVoltageDropPct is the allowed drop from origin to load (%)
	MaxVoltageDropPct = 4.0

	// Conduit fill limits by total cable count (NBR 5410 6.2.11.1.6)
	FillLimitOneCable    = 0.53
	FillLimitTwoCables   = 0.31
	FillLimitThreeOrMore = 0.40

	// Lighting: average utilization and maintenance (depreciation) factors
	UtilizationFactor  = 0.5
	DepreciationFactor = 0.8
)

// Conductors returns a copy of the standard table in ascending order.
func Conductors() []Conductor {
	return slices.Clone(conductors[:])
}

// Sections returns the standard cross-sections in ascending order.
func Sections() []float64 {
	out := make([]float64, len(conductors))
	for i, c := range conductors {
		out[i] = c.SectionMM2
	}
	return out
}

// IsStandardSection reports whether section belongs to the standard set.
func IsStandardSection(section float64) bool {
	_, ok := Ampacity(section)
	return ok
}

// Ampacity looks up the current capacity of a standard section.
func Ampacity(section float64) (float64, bool) {
	for _, c := range conductors {
		if c.SectionMM2 == section {
			return c.AmpacityA, true
		}
	}
	return 0, false
}

// CableDiameter looks up the outer diameter of a standard section.
func CableDiameter(section float64) (float64, bool) {
	d, ok := cableDiameters[section]
	return d, ok
}
