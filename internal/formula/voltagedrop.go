package formula

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/nbr"
)

// CircuitSpec fully describes a run for voltage-drop purposes.
type CircuitSpec struct {
	LengthM           float64 // one-way length (m)
	CurrentA          float64 // design current (A)
	NominalVoltageV   float64 // supply voltage (V)
	Phases            Phase
	PowerFactor       float64 // cos φ
	ReactanceOhmPerKm float64 // conductor reactance (Ω/km)
	OperatingTempC    float64 // conductor temperature (°C)
	Material          nbr.Material
}

// Validate rejects values the drop formula cannot use.
func (c CircuitSpec) Validate() error {
	if err := requireNonNegative("length", c.LengthM); err != nil {
		return err
	}
	if err := requireNonNegative("current", c.CurrentA); err != nil {
		return err
	}
	if err := requireNonNegative("nominal voltage", c.NominalVoltageV); err != nil {
		return err
	}
	if !c.Phases.Valid() {
		return invalid("phase count", float64(c.Phases), "must be 1 or 3")
	}
	if err := requirePowerFactor("power factor", c.PowerFactor); err != nil {
		return err
	}
	if err := requireNonNegative("reactance", c.ReactanceOhmPerKm); err != nil {
		return err
	}
	if !c.Material.Valid() {
		return &InputError{Field: "material", Value: c.Material, Reason: "must be copper or aluminum"}
	}
	return requireOperatingTemp(c.Material, c.OperatingTempC)
}

// requireOperatingTemp rejects temperatures at which the corrected
// resistivity ρ20·(1 + α·(T − 20)) is no longer positive.
func requireOperatingTemp(m nbr.Material, tempC float64) error {
	if err := requireFinite("operating temperature", tempC); err != nil {
		return err
	}
	if 1+m.TempCoefficient()*(tempC-nbr.ReferenceTemp) <= 0 {
		return invalid("operating temperature", tempC, "below the resistivity model's range for "+string(m))
	}
	return nil
}

// ResistivityAt corrects the 20°C resistivity to the given temperature:
// ρT = ρ20·(1 + α·(T − 20)).
func ResistivityAt(m nbr.Material, tempC float64) float64 {
	return m.Resistivity() * (1 + m.TempCoefficient()*(tempC-nbr.ReferenceTemp))
}

// VoltageDrop returns ΔV = k·I·L·(r·cosφ + x·sinφ) in volts, with r and x
// per metre of conductor and k = 2 (single-phase) or √3 (three-phase).
func VoltageDrop(c CircuitSpec, sectionMM2 float64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := requirePositive("cross-section", sectionMM2); err != nil {
		return 0, err
	}

	r := ResistivityAt(c.Material, c.OperatingTempC) / sectionMM2 // Ω/m
	x := c.ReactanceOhmPerKm / 1000                              // Ω/m

	cosPhi := c.PowerFactor
	sinPhi := math.Sqrt(1 - cosPhi*cosPhi)

	return c.Phases.dropMultiplier() * c.CurrentA * c.LengthM * (r*cosPhi + x*sinPhi), nil
}

// VoltageDropPercent expresses a drop relative to the nominal voltage.
func VoltageDropPercent(dropV, nominalV float64) (float64, error) {
	if err := requirePositive("nominal voltage", nominalV); err != nil {
		return 0, err
	}
	return dropV / nominalV * 100, nil
}
