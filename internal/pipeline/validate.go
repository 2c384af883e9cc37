package pipeline

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/breakeven/internal/model"

	"github.com/shopspring/decimal"
)

// ErrOutOfBounds is returned when an input lies outside its control range.
var ErrOutOfBounds = errors.New("value out of bounds")

// Validate checks every input against its control bounds. The calculator
// itself never validates; this is for entry points that bypass the panel.
func Validate(in model.Inputs, b model.Bounds) error {
	var errs []error
	for _, p := range b {
		v := in.Get(p.Key)
		if v.LessThan(p.Min) || v.GreaterThan(p.Max) {
			errs = append(errs, fmt.Errorf("%s = %s, want %s..%s: %w",
				p.Key, v.String(), p.Min.String(), p.Max.String(), ErrOutOfBounds))
		}
	}
	return errors.Join(errs...)
}

// Clamp snaps every input into its control range.
func Clamp(in model.Inputs, b model.Bounds) model.Inputs {
	for _, p := range b {
		in = in.With(p.Key, ClampValue(in.Get(p.Key), p))
	}
	return in
}

// ClampValue snaps a single value into p's range.
func ClampValue(v decimal.Decimal, p model.Param) decimal.Decimal {
	if v.LessThan(p.Min) {
		return p.Min
	}
	if v.GreaterThan(p.Max) {
		return p.Max
	}
	return v
}

// StepValue moves v by n steps of p (negative n steps down), clamped.
func StepValue(v decimal.Decimal, p model.Param, n int) decimal.Decimal {
	return ClampValue(v.Add(p.Step.Mul(decimal.NewFromInt(int64(n)))), p)
}
