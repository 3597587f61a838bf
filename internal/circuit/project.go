// Package circuit loads project files describing the circuits and conduit
// runs of an installation.
package circuit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gocable/internal/conduit"
	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/nbr"
)

// Project is the root of a project file. JSON files load as well since
// JSON is valid YAML.
type Project struct {
	Name     string       `yaml:"name"`
	Defaults Defaults     `yaml:"defaults"`
	Circuits []Circuit    `yaml:"circuits"`
	Conduits []ConduitRun `yaml:"conduits"`
}

// Defaults apply to every circuit that does not override them.
type Defaults struct {
	Voltage     float64 `yaml:"voltage"`
	Phases      int     `yaml:"phases"`
	PowerFactor float64 `yaml:"power_factor"`
	Reactance   float64 `yaml:"reactance"`   // Ω/km
	Temperature float64 `yaml:"temperature"` // °C
	Material    string  `yaml:"material"`
}

// Circuit is one run to be sized. Zero-valued pointers fall back to Defaults.
type Circuit struct {
	Name        string   `yaml:"name"`
	Current     float64  `yaml:"current"` // A
	Length      float64  `yaml:"length"`  // m
	Voltage     *float64 `yaml:"voltage,omitempty"`
	Phases      *int     `yaml:"phases,omitempty"`
	PowerFactor *float64 `yaml:"power_factor,omitempty"`
	Reactance   *float64 `yaml:"reactance,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	Material    *string  `yaml:"material,omitempty"`
}

// ConduitRun is a conduit carrying a bundle of cables.
type ConduitRun struct {
	Name   string          `yaml:"name"`
	Cables []conduit.Entry `yaml:"cables"`
}

// NamedSpec pairs a circuit name with its resolved specification.
type NamedSpec struct {
	Name string
	Spec formula.CircuitSpec
}

// DefaultSettings mirror the values a new circuit starts with on site:
// 220 V single-phase copper, pf 0.92, 0.1 Ω/km, PVC at 70°C.
func DefaultSettings() Defaults {
	return Defaults{
		Voltage:     220,
		Phases:      1,
		PowerFactor: 0.92,
		Reactance:   0.1,
		Temperature: nbr.TempPVC,
		Material:    string(nbr.Copper),
	}
}

// LoadFromFile reads and validates a project file.
func LoadFromFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a project document and fills unset defaults.
func Parse(data []byte) (*Project, error) {
	p := &Project{Defaults: DefaultSettings()}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the document shape. Numeric limits are enforced later by
// the formula package when each circuit is resolved.
func (p *Project) Validate() error {
	if len(p.Circuits) == 0 && len(p.Conduits) == 0 {
		return errors.New("project must define at least one circuit or conduit")
	}
	for i, c := range p.Circuits {
		if c.Name == "" {
			return fmt.Errorf("circuit %d: name is required", i+1)
		}
	}
	for i, run := range p.Conduits {
		if run.Name == "" {
			return fmt.Errorf("conduit %d: name is required", i+1)
		}
		if len(run.Cables) == 0 {
			return fmt.Errorf("conduit %q: at least one cable entry is required", run.Name)
		}
	}
	return nil
}

// Specs resolves every circuit against the project defaults.
func (p *Project) Specs() ([]NamedSpec, error) {
	out := make([]NamedSpec, 0, len(p.Circuits))
	for _, c := range p.Circuits {
		spec, err := c.Resolve(p.Defaults)
		if err != nil {
			return nil, fmt.Errorf("circuit %q: %w", c.Name, err)
		}
		out = append(out, NamedSpec{Name: c.Name, Spec: spec})
	}
	return out, nil
}

// Resolve merges the circuit's overrides onto d and validates the result.
func (c Circuit) Resolve(d Defaults) (formula.CircuitSpec, error) {
	voltage := pick(c.Voltage, d.Voltage)
	pf := pick(c.PowerFactor, d.PowerFactor)
	reactance := pick(c.Reactance, d.Reactance)
	temp := pick(c.Temperature, d.Temperature)

	phaseCount := d.Phases
	if c.Phases != nil {
		phaseCount = *c.Phases
	}
	phases, err := formula.ParsePhase(phaseCount)
	if err != nil {
		return formula.CircuitSpec{}, err
	}

	materialName := d.Material
	if c.Material != nil {
		materialName = *c.Material
	}
	material, err := nbr.ParseMaterial(materialName)
	if err != nil {
		return formula.CircuitSpec{}, err
	}

	spec := formula.CircuitSpec{
		LengthM:           c.Length,
		CurrentA:          c.Current,
		NominalVoltageV:   voltage,
		Phases:            phases,
		PowerFactor:       pf,
		ReactanceOhmPerKm: reactance,
		OperatingTempC:    temp,
		Material:          material,
	}
	if err := spec.Validate(); err != nil {
		return formula.CircuitSpec{}, err
	}
	return spec, nil
}

func pick(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
