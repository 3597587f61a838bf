package formula

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gocable/internal/nbr"
)

func TestCableArea(t *testing.T) {
	a, err := CableArea(2.5)
	if err != nil {
		t.Fatal(err)
	}
	if !near(a, math.Pi*1.8*1.8, 1e-12) {
		t.Errorf("area of 2.5 mm² cable = %v", a)
	}
	if _, err := CableArea(3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("non-standard section: error = %v", err)
	}
}

func TestFillLimit(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{1, 0.53},
		{2, 0.31},
		{3, 0.40},
		{12, 0.40},
	}
	for _, tt := range tests {
		got, err := FillLimit(tt.count)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("FillLimit(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
	if _, err := FillLimit(0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FillLimit(0) error = %v", err)
	}
}

func TestDiameterForArea(t *testing.T) {
	for _, d := range []float64{1, 16, 25, 40} {
		area := math.Pi * d * d / 4
		if got := DiameterForArea(area); !near(got, d, 1e-9) {
			t.Errorf("DiameterForArea(%v) = %v, want %v", area, got, d)
		}
	}
}

func TestShortCircuitCurrent(t *testing.T) {
	got, err := ShortCircuitCurrent(220, 50, 10, nbr.Copper)
	if err != nil {
		t.Fatal(err)
	}
	want := 220 / (0.0172 * 50 / 10)
	if !near(got, want, 1e-9) {
		t.Errorf("Icc = %v, want %v", got, want)
	}

	al, _ := ShortCircuitCurrent(220, 50, 10, nbr.Aluminum)
	if al >= got {
		t.Errorf("aluminum Icc %v should be below copper %v", al, got)
	}

	for _, tc := range []struct{ v, l, s float64 }{
		{220, 0, 10},
		{220, 50, 0},
		{-1, 50, 10},
	} {
		if _, err := ShortCircuitCurrent(tc.v, tc.l, tc.s, nbr.Copper); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ShortCircuitCurrent(%+v) error = %v", tc, err)
		}
	}
}

func TestLightingLoad(t *testing.T) {
	got, err := LightingLoad(5, 4, 500, 3000)
	if err != nil {
		t.Fatal(err)
	}
	if got.AreaM2 != 20 {
		t.Errorf("area = %v", got.AreaM2)
	}
	if !near(got.TotalLumens, 25000, 1e-9) {
		t.Errorf("total lumens = %v, want 25000", got.TotalLumens)
	}
	if got.LampCount != 9 {
		t.Errorf("lamps = %d, want 9", got.LampCount)
	}

	partial, _ := LightingLoad(3, 3, 200, 1000)
	if partial.LampCount != 5 {
		t.Errorf("4.5 lamps should round up to 5, got %d", partial.LampCount)
	}

	if _, err := LightingLoad(5, 4, 500, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero lumens per lamp: error = %v", err)
	}
}

func TestPFCReactivePower(t *testing.T) {
	got, err := PFCReactivePower(10000, 0.8, 0.92)
	if err != nil {
		t.Fatal(err)
	}
	want := 10000 * (0.75 - math.Tan(math.Acos(0.92)))
	if !near(got, want, 1e-9) {
		t.Errorf("Qc = %v, want %v", got, want)
	}

	none, _ := PFCReactivePower(5000, 0.95, 0.95)
	if !near(none, 0, 1e-9) {
		t.Errorf("equal factors should need no compensation, got %v", none)
	}
}

func TestPFCRoundTrip(t *testing.T) {
	tests := []struct{ p, fp1, fp2 float64 }{
		{10000, 0.8, 0.92},
		{2500, 0.7, 0.95},
		{75000, 0.85, 1},
		{1200, 0.6, 0.9},
	}
	for _, tt := range tests {
		qc, err := PFCReactivePower(tt.p, tt.fp1, tt.fp2)
		if err != nil {
			t.Fatal(err)
		}
		qLoad := tt.p * math.Tan(math.Acos(tt.fp1))
		got := PowerFactorAfter(tt.p, qLoad-qc)
		if !near(got, tt.fp2, 1e-9) {
			t.Errorf("P=%v %v→%v: recovered pf %v", tt.p, tt.fp1, tt.fp2, got)
		}
	}
}

func TestPFCRejects(t *testing.T) {
	for _, tc := range []struct{ p, fp1, fp2 float64 }{
		{1000, 0, 0.9},
		{1000, 0.8, 1.1},
		{-1, 0.8, 0.9},
		{math.NaN(), 0.8, 0.9},
		{math.Inf(1), 0.8, 0.9},
		{1000, math.NaN(), 0.9},
	} {
		if _, err := PFCReactivePower(tc.p, tc.fp1, tc.fp2); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("PFCReactivePower(%+v) error = %v", tc, err)
		}
	}
}

func TestParsePhase(t *testing.T) {
	if p, err := ParsePhase(3); err != nil || p != ThreePhase {
		t.Errorf("ParsePhase(3) = %v, %v", p, err)
	}
	if _, err := ParsePhase(2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParsePhase(2) error = %v", err)
	}
}

func TestNonFiniteArgumentsRejected(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	if _, err := ShortCircuitCurrent(nan, 10, 2.5, nbr.Copper); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short-circuit NaN voltage: error = %v", err)
	}
	if _, err := ShortCircuitCurrent(220, inf, 2.5, nbr.Copper); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short-circuit infinite length: error = %v", err)
	}
	if _, err := LightingLoad(inf, 4, 300, 2000); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("lighting infinite length: error = %v", err)
	}
	if _, err := LightingLoad(5, 4, nan, 2000); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("lighting NaN lux: error = %v", err)
	}
	if _, err := ACPower(220, nan, 0.9, SinglePhase); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AC power NaN current: error = %v", err)
	}
}
