package formula

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every input rejection in this package.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which argument was rejected and why.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field string, value float64, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}

// requireFinite rejects NaN and ±Inf, which every other check lets through.
func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, v, "must be a finite number")
	}
	return nil
}

func requireNonNegative(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return invalid(field, v, "must not be negative")
	}
	return nil
}

func requirePositive(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return invalid(field, v, "must be positive")
	}
	return nil
}

// requirePowerFactor enforces 0 < pf <= 1.
func requirePowerFactor(field string, pf float64) error {
	if math.IsNaN(pf) || pf <= 0 || pf > 1 {
		return invalid(field, pf, "power factor must be in (0, 1]")
	}
	return nil
}
