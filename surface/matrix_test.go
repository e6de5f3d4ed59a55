package surface

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertPoint(t *testing.T, name string, x, y, wantX, wantY float64) {
	t.Helper()
	if math.Abs(x-wantX) > epsilon || math.Abs(y-wantY) > epsilon {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, x, y, wantX, wantY)
	}
}

func TestMatrixIdentity(t *testing.T) {
	x, y := Identity.TransformPoint(3, 4)
	assertPoint(t, "identity", x, y, 3, 4)
	if !Identity.IsIdentity() {
		t.Error("Identity.IsIdentity() = false")
	}
}

func TestMatrixComposition(t *testing.T) {
	// translate then scale: points are scaled first, then moved.
	m := Identity.TranslateSelf(10, 20).ScaleSelf(2, 3)
	x, y := m.TransformPoint(1, 1)
	assertPoint(t, "translate*scale", x, y, 12, 23)

	m = Identity.ScaleSelf(2, 3).TranslateSelf(10, 20)
	x, y = m.TransformPoint(1, 1)
	assertPoint(t, "scale*translate", x, y, 22, 63)
}

func TestMatrixRotate(t *testing.T) {
	m := Identity.RotateSelf(math.Pi / 2)
	x, y := m.TransformPoint(1, 0)
	assertPoint(t, "rotate", x, y, 0, 1)
}

func TestMatrixInvert(t *testing.T) {
	m := Identity.TranslateSelf(5, -3).RotateSelf(0.7).ScaleSelf(2, 0.5)
	inv := m.Invert()
	x, y := m.TransformPoint(7, 11)
	x, y = inv.TransformPoint(x, y)
	assertPoint(t, "round trip", x, y, 7, 11)

	p := m.Multiply(inv)
	for _, v := range []struct {
		name      string
		got, want float64
	}{
		{"A", p.A, 1}, {"B", p.B, 0}, {"C", p.C, 0}, {"D", p.D, 1}, {"E", p.E, 0}, {"F", p.F, 0},
	} {
		if math.Abs(v.got-v.want) > epsilon {
			t.Errorf("m*inv %s = %v, want %v", v.name, v.got, v.want)
		}
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Identity.ScaleSelf(0, 1)
	if !m.Invert().IsIdentity() {
		t.Errorf("singular inverse = %+v, want identity", m.Invert())
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity, 1},
		{"uniform", Identity.ScaleSelf(2, 2), 2},
		{"rotated", Identity.RotateSelf(1).ScaleSelf(3, 3), 3},
		{"non-uniform", Identity.ScaleSelf(2, 8), 4},
	}
	for _, tt := range tests {
		if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > epsilon {
			t.Errorf("%s: ScaleFactor = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseRepetition(t *testing.T) {
	tests := []struct {
		in     string
		want   Repetition
		ok     bool
		tx, ty bool
	}{
		{"", Repeat, true, true, true},
		{"repeat", Repeat, true, true, true},
		{"repeat-x", RepeatX, true, true, false},
		{"repeat-y", RepeatY, true, false, true},
		{"no-repeat", NoRepeat, true, false, false},
		{"tile", "", false, false, false},
	}
	for _, tt := range tests {
		got, err := ParseRepetition(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("%q: err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
		if tt.ok && (got.TilesX() != tt.tx || got.TilesY() != tt.ty) {
			t.Errorf("%q: tiles = %v,%v", tt.in, got.TilesX(), got.TilesY())
		}
	}
}

func TestStyleKind(t *testing.T) {
	if StyleKind(CSSColor("red")) != "color" {
		t.Error("CSSColor kind")
	}
	if StyleKind(GradientBase{}) != "gradient" || StyleKind(PatternBase{}) != "pattern" {
		t.Error("base kinds")
	}
	if StyleKind(nil) != "" {
		t.Error("nil kind")
	}
}
