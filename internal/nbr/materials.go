package nbr

import (
	"fmt"
	"strings"
)

// Material identifies the conductor metal.
type Material string

const (
	Copper   Material = "copper"
	Aluminum Material = "aluminum"
)

// Conductor material constants

const (
	// Resistivity at 20°C (Ω·mm²/m)
	RhoCopper   = 0.0172
	RhoAluminum = 0.0282

	// Temperature coefficient of resistance (1/°C)
	AlphaCopper   = 0.00393
	AlphaAluminum = 0.00403

	// Reference temperature for the resistivity values above (°C)
	ReferenceTemp = 20.0
)

// Operating temperatures offered for insulation classes (°C)
const (
	TempAmbient = 20.0 // bare reference
	TempPVC     = 70.0 // PVC insulation
	TempXLPE    = 90.0 // XLPE/EPR insulation
)

// ParseMaterial accepts the English and Portuguese names used on site.
func ParseMaterial(s string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copper", "cu", "cobre":
		return Copper, nil
	case "aluminum", "aluminium", "al", "aluminio", "alumínio":
		return Aluminum, nil
	}
	return "", fmt.Errorf("unknown conductor material %q (expected copper or aluminum)", s)
}

// Valid reports whether m is one of the supported materials.
func (m Material) Valid() bool {
	return m == Copper || m == Aluminum
}

// Resistivity returns the 20°C resistivity in Ω·mm²/m
func (m Material) Resistivity() float64 {
	if m == Aluminum {
		return RhoAluminum
	}
	return RhoCopper
}

// TempCoefficient returns α for the temperature correction of resistivity
func (m Material) TempCoefficient() float64 {
	if m == Aluminum {
		return AlphaAluminum
	}
	return AlphaCopper
}

func (m Material) String() string {
	return string(m)
}
