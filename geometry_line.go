package canvas2d

import (
	"fmt"

	"github.com/phanxgames/canvas2d/surface"
)

// LineGeometry is a set of independent segments, each [x1, y1, x2, y2] in
// local coordinates. It is stroked only and needs a stroke style.
type LineGeometry struct {
	BaseGeometry
	points [][4]float64
}

// NewLineGeometry returns a geometry drawing the given segments.
func NewLineGeometry(points [][4]float64) (*LineGeometry, error) {
	g := &LineGeometry{}
	if err := g.SetPoints(points); err != nil {
		return nil, err
	}
	return g, nil
}

// Points returns a copy of the segments.
func (g *LineGeometry) Points() [][4]float64 {
	out := make([][4]float64, len(g.points))
	copy(out, g.points)
	return out
}

// SetPoints replaces the segments.
func (g *LineGeometry) SetPoints(points [][4]float64) error {
	for i, p := range points {
		for j, v := range p {
			if err := checkFinite(fmt.Sprintf("points[%d][%d]", i, j), v); err != nil {
				return err
			}
		}
	}
	g.points = make([][4]float64, len(points))
	copy(g.points, points)
	return nil
}

// CheckMaterialConflicts rejects materials without a stroke style.
func (g *LineGeometry) CheckMaterialConflicts(m Material) error {
	if isNil(m) {
		return &TypeError{Field: "material", Want: "Material"}
	}
	if m.StrokeStyle() == nil {
		return &TypeError{Field: "strokeStyle", Want: "Color"}
	}
	return nil
}

// DrawContext2D implements Geometry.
func (g *LineGeometry) DrawContext2D(ctx surface.Context2D, t *Transform, m Material) error {
	if err := checkDrawArgs(ctx, t, m); err != nil {
		return err
	}
	if err := g.CheckMaterialConflicts(m); err != nil {
		return err
	}
	sx, sy := t.scale.x, t.scale.y

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(t.position.x, t.position.y)
	ctx.Rotate(t.rotation)
	ctx.BeginPath()
	for _, p := range g.points {
		ctx.MoveTo(p[0]*sx, p[1]*sy)
		ctx.LineTo(p[2]*sx, p[3]*sy)
	}
	return ctx.Stroke()
}
