package canvas2d

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors. Every error returned by this package wraps one of them.
var (
	// ErrType reports an argument of the wrong kind: a nil object, a
	// non-finite number, or a missing required member.
	ErrType = errors.New("canvas2d: invalid type")
	// ErrRange reports a number outside its valid domain.
	ErrRange = errors.New("canvas2d: value out of range")
	// ErrNotImplemented is returned by base types whose draw hook was not
	// overridden.
	ErrNotImplemented = errors.New("canvas2d: not implemented")
	// ErrZeroLength is returned when dividing by zero or normalizing a
	// zero-length vector.
	ErrZeroLength = errors.New("canvas2d: zero length")
	// ErrUnsupportedContext is returned when drawing to a renderer whose
	// context type has no draw routine.
	ErrUnsupportedContext = errors.New("canvas2d: unsupported context type")
)

// TypeError names a field and the type it must have.
type TypeError struct {
	Field string
	Want  string
}

func (e *TypeError) Error() string {
	return e.Field + " must be of type " + e.Want
}

// Is reports whether target is ErrType.
func (e *TypeError) Is(target error) bool { return target == ErrType }

// RangeError names a numeric field, its valid range and the rejected value.
// A positive-only field has Min 0, Max +Inf and Positive set.
type RangeError struct {
	Field    string
	Min, Max float64
	Positive bool
	Value    float64
}

func (e *RangeError) Error() string {
	if e.Positive {
		return fmt.Sprintf("%s must be a positive number, got %s", e.Field, formatNumber(e.Value))
	}
	return fmt.Sprintf("%s must be in range [%s, %s], got %s",
		e.Field, formatNumber(e.Min), formatNumber(e.Max), formatNumber(e.Value))
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkFinite returns a TypeError when v is NaN or infinite.
func checkFinite(field string, v float64) error {
	if !finite(v) {
		return &TypeError{Field: field, Want: "finite number"}
	}
	return nil
}

// checkRange validates v against the closed interval [lo, hi].
func checkRange(field string, v, lo, hi float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return &RangeError{Field: field, Min: lo, Max: hi, Value: v}
	}
	return nil
}

// checkPositive validates that v is finite and strictly greater than zero.
func checkPositive(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &RangeError{Field: field, Max: math.Inf(1), Positive: true, Value: v}
	}
	return nil
}

const maxFloat = math.MaxFloat64
