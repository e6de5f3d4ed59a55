package canvas2d

import (
	"errors"
	"math"
	"testing"

	"github.com/phanxgames/canvas2d/surface"
)

func fillStroke(t *testing.T) *BasicMaterial {
	t.Helper()
	m, err := NewBasicMaterial(BasicMaterialOptions{
		FillStyle:   CSSColor("red"),
		StrokeStyle: CSSColor("blue"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func fillOnly(t *testing.T) *BasicMaterial {
	t.Helper()
	m, err := NewBasicMaterial(BasicMaterialOptions{FillStyle: CSSColor("red")})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func strokeOnly(t *testing.T) *BasicMaterial {
	t.Helper()
	m, err := NewBasicMaterial(BasicMaterialOptions{StrokeStyle: CSSColor("blue")})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func transformAt(x, y, sx, sy, rot float64) *Transform {
	tr := NewTransform()
	_ = tr.SetPosition(MustVector2(x, y))
	_ = tr.SetScale(MustVector2(sx, sy))
	_ = tr.SetRotation(rot)
	return tr
}

func assertCalls(t *testing.T, r *recorder, want []string) {
	t.Helper()
	if !equalCalls(r.calls, want) {
		t.Errorf("calls:\n got %v\nwant %v", r.calls, want)
	}
}

func TestRectGeometryDraw(t *testing.T) {
	g, err := NewRectGeometry(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	r := newRecorder(100, 100)
	if err := g.DrawContext2D(r, transformAt(10, 20, 2, 1, 0), fillStroke(t)); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, r, []string{
		"save()",
		"translate(20,25)",
		"rotate(0)",
		"fillRect(-10,-5,20,10)",
		"strokeRect(-10,-5,20,10)",
		"restore()",
	})
}

func TestRectGeometryStrokeOnly(t *testing.T) {
	g, _ := NewRectGeometry(4, 2)
	r := newRecorder(10, 10)
	if err := g.DrawContext2D(r, NewTransform(), strokeOnly(t)); err != nil {
		t.Fatal(err)
	}
	for _, op := range r.ops() {
		if op == "fillRect" {
			t.Error("unexpected fillRect")
		}
	}
}

func TestRectGeometryRestoresOnError(t *testing.T) {
	g, _ := NewRectGeometry(4, 2)
	r := newRecorder(10, 10)
	r.failOn = "fillRect"
	if err := g.DrawContext2D(r, NewTransform(), fillStroke(t)); err == nil {
		t.Fatal("expected error")
	}
	ops := r.ops()
	if ops[len(ops)-1] != "restore" {
		t.Errorf("last op = %s, want restore", ops[len(ops)-1])
	}
}

func TestRectGeometryInvalid(t *testing.T) {
	if _, err := NewRectGeometry(math.NaN(), 1); !errors.Is(err, ErrType) {
		t.Errorf("err = %v, want ErrType", err)
	}
}

func TestCircleGeometryDraw(t *testing.T) {
	g, err := NewCircleGeometry(5)
	if err != nil {
		t.Fatal(err)
	}
	r := newRecorder(10, 10)
	if err := g.DrawContext2D(r, transformAt(1, 2, 2, 4, 1), fillStroke(t)); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, r, []string{
		"beginPath()",
		"arc(1,2,15,0," + formatNumber(2*math.Pi) + ",false)",
		"fill()",
		"stroke()",
	})
}

func TestCircleGeometryRadius(t *testing.T) {
	if _, err := NewCircleGeometry(-1); !errors.Is(err, ErrRange) {
		t.Errorf("err = %v, want ErrRange", err)
	}
	g, _ := NewCircleGeometry(0)
	if err := g.SetRadius(math.Inf(1)); !errors.Is(err, ErrType) {
		t.Errorf("err = %v, want ErrType", err)
	}
}

func TestLineGeometryDraw(t *testing.T) {
	g, err := NewLineGeometry([][4]float64{{0, 0, 1, 1}, {2, 0, 2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	r := newRecorder(10, 10)
	if err := g.DrawContext2D(r, transformAt(5, 5, 2, 3, 0), strokeOnly(t)); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, r, []string{
		"save()",
		"translate(5,5)",
		"rotate(0)",
		"beginPath()",
		"moveTo(0,0)",
		"lineTo(2,3)",
		"moveTo(4,0)",
		"lineTo(4,6)",
		"stroke()",
		"restore()",
	})
}

func TestLineGeometryNeedsStroke(t *testing.T) {
	g, _ := NewLineGeometry(nil)
	err := g.CheckMaterialConflicts(fillOnly(t))
	if !errors.Is(err, ErrType) {
		t.Fatalf("err = %v, want ErrType", err)
	}
	if err.Error() != "strokeStyle must be of type Color" {
		t.Errorf("message = %q", err.Error())
	}
	if _, err := NewMesh(g, fillOnly(t)); !errors.Is(err, ErrType) {
		t.Errorf("NewMesh err = %v, want ErrType", err)
	}
}

func TestLineGeometryPointsCopied(t *testing.T) {
	pts := [][4]float64{{0, 0, 1, 1}}
	g, _ := NewLineGeometry(pts)
	pts[0][0] = 99
	if g.Points()[0][0] != 0 {
		t.Error("geometry shares caller slice")
	}
	if err := g.SetPoints([][4]float64{{0, math.NaN(), 0, 0}}); !errors.Is(err, ErrType) {
		t.Errorf("err = %v, want ErrType", err)
	}
}

func TestPolygonGeometryDraw(t *testing.T) {
	g, err := NewPolygonGeometry([][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	if err != nil {
		t.Fatal(err)
	}
	cx, cy := g.Centroid()
	assertNear(t, "cx", cx, 2)
	assertNear(t, "cy", cy, 2)

	r := newRecorder(10, 10)
	if err := g.DrawContext2D(r, transformAt(10, 10, 1, 1, 0), fillOnly(t)); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, r, []string{
		"save()",
		"translate(12,12)",
		"rotate(0)",
		"translate(-2,-2)",
		"beginPath()",
		"moveTo(0,0)",
		"lineTo(4,0)",
		"lineTo(4,4)",
		"lineTo(0,4)",
		"closePath()",
		"fill()",
		"restore()",
	})
}

func TestPolygonGeometryRotatesAboutCentroid(t *testing.T) {
	g, _ := NewPolygonGeometry([][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	r := newRecorder(10, 10)
	m := r.GetTransform()
	_ = g.DrawContext2D(&pathProbe{recorder: r, at: &m}, transformAt(0, 0, 1, 1, math.Pi), fillOnly(t))

	x, y := m.TransformPoint(2, 2)
	assertNear(t, "centroid x", x, 2)
	assertNear(t, "centroid y", y, 2)
	x, y = m.TransformPoint(0, 0)
	assertNear(t, "corner x", x, 4)
	assertNear(t, "corner y", y, 4)
}

// pathProbe records the transform in effect when a path starts.
type pathProbe struct {
	*recorder
	at *surface.Matrix
}

func (p *pathProbe) BeginPath() {
	*p.at = p.GetTransform()
	p.recorder.BeginPath()
}

func TestPolygonGeometryTooFewPoints(t *testing.T) {
	_, err := NewPolygonGeometry([][2]float64{{0, 0}, {1, 1}})
	if !errors.Is(err, ErrType) {
		t.Fatalf("err = %v, want ErrType", err)
	}
	if err.Error() != "points must be of type list of at least 3 [x, y] points" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestTextGeometryDraw(t *testing.T) {
	g, err := NewTextGeometry("hi", TextOptions{
		Font:      "20px serif",
		TextAlign: "center",
		MaxWidth:  100,
	})
	if err != nil {
		t.Fatal(err)
	}
	r := newRecorder(10, 10)
	if err := g.DrawContext2D(r, transformAt(3, 4, 1, 1, 0), fillStroke(t)); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, r, []string{
		"setFont(20px serif)",
		"setTextAlign(center)",
		"save()",
		"translate(3,4)",
		"rotate(0)",
		"fillText(hi,0,0,100)",
		"strokeText(hi,0,0,100)",
		"restore()",
	})

	// Settings already in place are not written again.
	r.calls = nil
	if err := g.DrawContext2D(r, transformAt(3, 4, 1, 1, 0), fillOnly(t)); err != nil {
		t.Fatal(err)
	}
	for _, op := range r.ops() {
		if op == "setFont" || op == "setTextAlign" {
			t.Errorf("unexpected %s", op)
		}
	}
}

func TestTextGeometryNoMaxWidth(t *testing.T) {
	g, _ := NewTextGeometry("a", TextOptions{})
	r := newRecorder(10, 10)
	if err := g.DrawContext2D(r, NewTransform(), fillOnly(t)); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, r, []string{
		"save()",
		"translate(0,0)",
		"rotate(0)",
		"fillText(a,0,0)",
		"restore()",
	})
}

func TestTextGeometryOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts TextOptions
		want error
	}{
		{"align", TextOptions{TextAlign: "middle"}, ErrType},
		{"baseline", TextOptions{TextBaseline: "center"}, ErrType},
		{"direction", TextOptions{Direction: "up"}, ErrType},
		{"maxWidth", TextOptions{MaxWidth: -1}, ErrRange},
	}
	for _, tt := range tests {
		if _, err := NewTextGeometry("x", tt.opts); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestBaseGeometryNotImplemented(t *testing.T) {
	var g BaseGeometry
	if err := g.DrawContext2D(newRecorder(1, 1), NewTransform(), fillOnly(t)); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("err = %v, want ErrNotImplemented", err)
	}
	if err := g.CheckMaterialConflicts(nil); err != nil {
		t.Errorf("CheckMaterialConflicts = %v", err)
	}
}

func TestGeometryDrawArgs(t *testing.T) {
	g, _ := NewRectGeometry(1, 1)
	var nilRec *recorder
	if err := g.DrawContext2D(nilRec, NewTransform(), fillOnly(t)); !errors.Is(err, ErrType) {
		t.Errorf("nil ctx: %v", err)
	}
	if err := g.DrawContext2D(newRecorder(1, 1), nil, fillOnly(t)); !errors.Is(err, ErrType) {
		t.Errorf("nil transform: %v", err)
	}
	if err := g.DrawContext2D(newRecorder(1, 1), NewTransform(), nil); !errors.Is(err, ErrType) {
		t.Errorf("nil material: %v", err)
	}
}
