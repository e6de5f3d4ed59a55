package canvas2d

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestTypeError(t *testing.T) {
	err := fmt.Errorf("wrap: %w", &TypeError{Field: "geometry", Want: "Geometry"})
	if !errors.Is(err, ErrType) {
		t.Error("expected ErrType")
	}
	if errors.Is(err, ErrRange) {
		t.Error("unexpected ErrRange")
	}
	var te *TypeError
	if !errors.As(err, &te) || te.Field != "geometry" {
		t.Errorf("As = %v", te)
	}
	if got := te.Error(); got != "geometry must be of type Geometry" {
		t.Errorf("Error = %q", got)
	}
}

func TestRangeErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{checkRange("intensity", 1.5, 0, 1), "intensity must be in range [0, 1], got 1.5"},
		{checkPositive("radius", 0), "radius must be a positive number, got 0"},
		{checkPositive("lineWidth", -2.5), "lineWidth must be a positive number, got -2.5"},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, ErrRange) {
			t.Errorf("%v: want ErrRange", tt.err)
		}
		if tt.err.Error() != tt.want {
			t.Errorf("Error = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestCheckFinite(t *testing.T) {
	if err := checkFinite("x", 1); err != nil {
		t.Errorf("finite: %v", err)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := checkRange("x", v, 0, 1); !errors.Is(err, ErrType) {
			t.Errorf("checkRange(%v) = %v, want ErrType", v, err)
		}
		if err := checkPositive("x", v); !errors.Is(err, ErrType) {
			t.Errorf("checkPositive(%v) = %v, want ErrType", v, err)
		}
	}
}
