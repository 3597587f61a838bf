// Package convert holds the unit conversions used in the field.
package convert

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownKind  = errors.New("unknown conversion")
	ErrInvalidValue = errors.New("invalid value")
)

// Power conversion factors
const (
	KWToHP = 1.34102
	KWToCV = 1.35962
	HPToKW = 0.7457
	CVToKW = 0.7355
)

func KWToHorsepower(kw float64) float64 { return kw * KWToHP }
func HorsepowerToKW(hp float64) float64 { return hp * HPToKW }
func KWToCavalo(kw float64) float64     { return kw * KWToCV }
func CavaloToKW(cv float64) float64     { return cv * CVToKW }

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }
func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// AWGDiameterMM is the bare conductor diameter of an AWG gauge.
// 36 AWG is 0.127 mm and the diameter grows 92 times every 39 gauges.
func AWGDiameterMM(awg float64) float64 {
	return 0.127 * math.Pow(92, (36-awg)/39)
}

// AWGToMM2 converts an AWG gauge to its cross-section in mm².
func AWGToMM2(awg float64) float64 {
	d := AWGDiameterMM(awg)
	return math.Pi / 4 * d * d
}

// MM2ToAWG is the inverse of AWGToMM2. mm2 must be positive.
func MM2ToAWG(mm2 float64) float64 {
	d := math.Sqrt(4 * mm2 / math.Pi)
	return 36 - 39*math.Log(d/0.127)/math.Log(92)
}

// Kind names a conversion pair.
type Kind string

const (
	KWHP  Kind = "kw-hp"
	KWCV  Kind = "kw-cv"
	AWGMM Kind = "awg-mm2"
	Temp  Kind = "temp"
)

// Conversion is a forward result plus the reverse reading of the same value.
type Conversion struct {
	From    string
	To      string
	Result  float64 // value converted From → To
	Reverse float64 // value read as To, converted back to From
}

// Convert applies the named conversion in both directions. For awg-mm2 the
// value is also read as a cross-section, so it must be positive.
func Convert(kind Kind, v float64) (Conversion, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Conversion{}, fmt.Errorf("%w %v: must be a finite number", ErrInvalidValue, v)
	}

	switch kind {
	case KWHP:
		return Conversion{"kW", "HP", KWToHorsepower(v), HorsepowerToKW(v)}, nil
	case KWCV:
		return Conversion{"kW", "CV", KWToCavalo(v), CavaloToKW(v)}, nil
	case AWGMM:
		if v <= 0 {
			return Conversion{}, fmt.Errorf("%w %v: a cross-section must be positive", ErrInvalidValue, v)
		}
		return Conversion{"AWG", "mm²", AWGToMM2(v), MM2ToAWG(v)}, nil
	case Temp:
		return Conversion{"°C", "°F", CelsiusToFahrenheit(v), FahrenheitToCelsius(v)}, nil
	}
	return Conversion{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// Kinds lists the supported conversions.
func Kinds() []Kind {
	return []Kind{KWHP, KWCV, AWGMM, Temp}
}
