package sizing

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gocable/internal/formula"
	"github.com/alexiusacademia/gocable/internal/nbr"
)

func goldenCircuit() formula.CircuitSpec {
	return formula.CircuitSpec{
		LengthM:           30,
		CurrentA:          20,
		NominalVoltageV:   220,
		Phases:            formula.SinglePhase,
		PowerFactor:       0.92,
		ReactanceOhmPerKm: 0.1,
		OperatingTempC:    70,
		Material:          nbr.Copper,
	}
}

func TestSizeGolden(t *testing.T) {
	res, err := SizeStandard(goldenCircuit())
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Rows) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(res.Rows))
	}
	if res.Recommended == nil {
		t.Fatal("expected a recommendation")
	}
	// 2.5 mm² carries 20 A but drops ≈ 4.15%; 4 mm² drops ≈ 2.60%.
	if res.Recommended.SectionMM2 != 4 {
		t.Errorf("recommended %v mm², want 4", res.Recommended.SectionMM2)
	}
	if res.Rows[1].Status() != StatusHighDrop {
		t.Errorf("2.5 mm² status = %v, want high drop", res.Rows[1].Status())
	}
	if res.Rows[0].Status() != StatusOverload {
		t.Errorf("1.5 mm² status = %v, want overload", res.Rows[0].Status())
	}

	drop, _ := formula.VoltageDrop(goldenCircuit(), 2.5)
	if res.Rows[1].DropV != drop {
		t.Errorf("table drop %v differs from formula %v", res.Rows[1].DropV, drop)
	}
}

func TestRecommendationIsMinimalCompliant(t *testing.T) {
	currents := []float64{1, 10, 18, 24, 30, 55, 100, 150, 260, 400}
	lengths := []float64{5, 30, 80, 150}

	for _, i := range currents {
		for _, l := range lengths {
			c := goldenCircuit()
			c.CurrentA = i
			c.LengthM = l

			res, err := SizeStandard(c)
			if err != nil {
				t.Fatal(err)
			}

			first := -1
			for idx, row := range res.Rows {
				want := row.DropPct <= 4 && i <= row.AmpacityA
				if row.Compliant != want {
					t.Errorf("I=%v L=%v %v mm²: compliant=%v, want %v", i, l, row.SectionMM2, row.Compliant, want)
				}
				if want && first < 0 {
					first = idx
				}
			}

			switch {
			case first < 0 && res.Recommended != nil:
				t.Errorf("I=%v L=%v: unexpected recommendation %v", i, l, res.Recommended.SectionMM2)
			case first >= 0 && res.Recommended == nil:
				t.Errorf("I=%v L=%v: missing recommendation", i, l)
			case first >= 0 && res.Recommended.SectionMM2 != res.Rows[first].SectionMM2:
				t.Errorf("I=%v L=%v: recommended %v, smallest compliant %v",
					i, l, res.Recommended.SectionMM2, res.Rows[first].SectionMM2)
			}
		}
	}
}

func TestNoRecommendationAboveLargestAmpacity(t *testing.T) {
	c := goldenCircuit()
	c.CurrentA = 500
	c.LengthM = 1

	res, err := SizeStandard(c)
	if err != nil {
		t.Fatal(err)
	}
	if res.Recommended != nil {
		t.Errorf("expected no recommendation, got %v mm²", res.Recommended.SectionMM2)
	}
	if len(res.Rows) != 15 {
		t.Errorf("table must stay populated, got %d rows", len(res.Rows))
	}
	for _, row := range res.Rows {
		if !row.AmpacityExceeded || row.Status() != StatusOverload {
			t.Errorf("%v mm² should be overloaded", row.SectionMM2)
		}
	}
	if res.CompliantCount() != 0 {
		t.Errorf("CompliantCount = %d", res.CompliantCount())
	}
	if res.Best().SectionMM2 != 240 || res.Worst().SectionMM2 != 1.5 {
		t.Errorf("best %v, worst %v", res.Best().SectionMM2, res.Worst().SectionMM2)
	}
}

func TestNoRecommendationForLongRun(t *testing.T) {
	c := goldenCircuit()
	c.CurrentA = 10
	c.LengthM = 10000

	res, err := SizeStandard(c)
	if err != nil {
		t.Fatal(err)
	}
	if res.Recommended != nil {
		t.Errorf("expected no recommendation for a 10 km single-phase run")
	}
	if res.Rows[len(res.Rows)-1].Status() != StatusHighDrop {
		t.Errorf("largest section status = %v", res.Rows[len(res.Rows)-1].Status())
	}
}

func TestDropAtLimitIsCompliant(t *testing.T) {
	c := goldenCircuit()
	c.PowerFactor = 1
	c.ReactanceOhmPerKm = 0
	c.OperatingTempC = 20
	c.CurrentA = 10
	c.LengthM = 1

	// Solve the length that gives exactly 4% on 10 mm², rounding down.
	perMetre, _ := formula.VoltageDrop(c, 10)
	c.LengthM = 8.8 / perMetre * 0.999999

	res, err := SizeStandard(c)
	if err != nil {
		t.Fatal(err)
	}
	if res.Recommended == nil || res.Recommended.SectionMM2 != 10 {
		t.Fatalf("expected 10 mm², got %+v", res.Recommended)
	}
}

func TestSizeCustomTable(t *testing.T) {
	table := []nbr.Conductor{
		{SectionMM2: 6, AmpacityA: 41},
		{SectionMM2: 16, AmpacityA: 76},
	}
	res, err := Size(goldenCircuit(), table)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 2 || res.Recommended.SectionMM2 != 6 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestSizeRejects(t *testing.T) {
	tables := map[string][]nbr.Conductor{
		"empty":        nil,
		"non-standard": {{SectionMM2: 3, AmpacityA: 28}},
		"descending":   {{SectionMM2: 4, AmpacityA: 32}, {SectionMM2: 2.5, AmpacityA: 24}},
		"zero amps":    {{SectionMM2: 4, AmpacityA: 0}},
	}
	for name, table := range tables {
		if _, err := Size(goldenCircuit(), table); !errors.Is(err, formula.ErrInvalidInput) {
			t.Errorf("%s: error = %v", name, err)
		}
	}

	c := goldenCircuit()
	c.NominalVoltageV = 0
	if _, err := SizeStandard(c); !errors.Is(err, formula.ErrInvalidInput) {
		t.Errorf("zero voltage: error = %v", err)
	}

	c = goldenCircuit()
	c.PowerFactor = 1.5
	if _, err := SizeStandard(c); !errors.Is(err, formula.ErrInvalidInput) {
		t.Errorf("bad power factor: error = %v", err)
	}
}

func TestSizeRejectsNonFinite(t *testing.T) {
	mutations := map[string]func(*formula.CircuitSpec){
		"NaN pf":          func(c *formula.CircuitSpec) { c.PowerFactor = math.NaN() },
		"infinite length": func(c *formula.CircuitSpec) { c.LengthM = math.Inf(1) },
		"NaN voltage":     func(c *formula.CircuitSpec) { c.NominalVoltageV = math.NaN() },
		"-300 °C":         func(c *formula.CircuitSpec) { c.OperatingTempC = -300 },
	}
	for name, mutate := range mutations {
		c := goldenCircuit()
		mutate(&c)
		res, err := SizeStandard(c)
		if !errors.Is(err, formula.ErrInvalidInput) {
			t.Errorf("%s: error = %v", name, err)
		}
		if res != nil {
			t.Errorf("%s: expected no result, got %d rows", name, len(res.Rows))
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusOK.String() != "OK" || StatusOverload.String() != "overload" || StatusHighDrop.String() != "high drop" {
		t.Error("unexpected status labels")
	}
}
