package canvas2d

import (
	"errors"
	"math"
	"testing"
)

func TestRgbaColorString(t *testing.T) {
	c, err := NewRgbaColor(255, 128, 0, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ColorString(); got != "rgba(255, 128, 0, 0.5)" {
		t.Errorf("ColorString = %q", got)
	}
	if err := c.SetG(10.25); err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != "rgba(255, 10.25, 0, 0.5)" {
		t.Errorf("String = %q", got)
	}
}

func TestRgbaColorRange(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		msg        string
	}{
		{"r high", 300, 0, 0, 1, "r must be in range [0, 255], got 300"},
		{"g negative", 0, -1, 0, 1, "g must be in range [0, 255], got -1"},
		{"b high", 0, 0, 256, 1, "b must be in range [0, 255], got 256"},
		{"a high", 0, 0, 0, 1.5, "a must be in range [0, 1], got 1.5"},
	}
	for _, tt := range tests {
		_, err := NewRgbaColor(tt.r, tt.g, tt.b, tt.a)
		if !errors.Is(err, ErrRange) {
			t.Errorf("%s: err = %v, want ErrRange", tt.name, err)
			continue
		}
		if err.Error() != tt.msg {
			t.Errorf("%s: message = %q, want %q", tt.name, err.Error(), tt.msg)
		}
	}
	if _, err := NewRgbaColor(math.NaN(), 0, 0, 1); !errors.Is(err, ErrType) {
		t.Errorf("NaN: err = %v, want ErrType", err)
	}
}

func TestRgbaColorSetRollsBack(t *testing.T) {
	c := MustRgbaColor(10, 20, 30, 1)
	if err := c.Set(40, 50, 60, 2); !errors.Is(err, ErrRange) {
		t.Fatalf("err = %v, want ErrRange", err)
	}
	if c.R() != 10 || c.G() != 20 || c.B() != 30 || c.A() != 1 {
		t.Errorf("components changed: %v %v %v %v", c.R(), c.G(), c.B(), c.A())
	}
	if got := c.ColorString(); got != "rgba(10, 20, 30, 1)" {
		t.Errorf("ColorString = %q", got)
	}
}

func TestRgbaColorSingleSetterKeepsValue(t *testing.T) {
	c := MustRgbaColor(1, 2, 3, 1)
	if err := c.SetA(-0.1); err == nil {
		t.Fatal("expected error")
	}
	if c.A() != 1 || c.ColorString() != "rgba(1, 2, 3, 1)" {
		t.Errorf("color changed to %q", c.ColorString())
	}
}

func TestRgbaColorClone(t *testing.T) {
	c := MustRgbaColor(1, 2, 3, 1)
	cl := c.Clone()
	_ = c.SetR(100)
	if cl.R() != 1 || cl.ColorString() != "rgba(1, 2, 3, 1)" {
		t.Errorf("clone changed: %q", cl.ColorString())
	}
}

func TestHslaColorString(t *testing.T) {
	c, err := NewHslaColor(120, 50, 25, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ColorString(); got != "hsla(120, 50%, 25%, 1)" {
		t.Errorf("ColorString = %q", got)
	}
	if err := c.Set(360, 100, 0, 0); err != nil {
		t.Fatal(err)
	}
	if got := c.ColorString(); got != "hsla(360, 100%, 0%, 0)" {
		t.Errorf("ColorString = %q", got)
	}
}

func TestHslaColorRange(t *testing.T) {
	c := MustHslaColor(10, 20, 30, 0.5)
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"h", c.SetH(361), "h must be in range [0, 360], got 361"},
		{"s", c.SetS(101), "s must be in range [0, 100], got 101"},
		{"l", c.SetL(-5), "l must be in range [0, 100], got -5"},
		{"a", c.SetA(2), "a must be in range [0, 1], got 2"},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, ErrRange) {
			t.Errorf("%s: err = %v, want ErrRange", tc.name, tc.err)
			continue
		}
		if tc.err.Error() != tc.msg {
			t.Errorf("%s: message = %q, want %q", tc.name, tc.err.Error(), tc.msg)
		}
	}
	if got := c.ColorString(); got != "hsla(10, 20%, 30%, 0.5)" {
		t.Errorf("ColorString = %q", got)
	}
}

func TestHslaColorSetRollsBack(t *testing.T) {
	c := MustHslaColor(10, 20, 30, 0.5)
	if err := c.Set(50, 60, 70, math.Inf(1)); !errors.Is(err, ErrType) {
		t.Fatalf("err = %v, want ErrType", err)
	}
	if c.H() != 10 || c.S() != 20 || c.L() != 30 || c.A() != 0.5 {
		t.Errorf("components changed: %v %v %v %v", c.H(), c.S(), c.L(), c.A())
	}
}

func TestCSSColor(t *testing.T) {
	var c Color = CSSColor("#ff0000")
	if c.ColorString() != "#ff0000" {
		t.Errorf("ColorString = %q", c.ColorString())
	}
}
