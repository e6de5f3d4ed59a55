package canvas2d

import (
	"fmt"

	"github.com/phanxgames/canvas2d/surface"
)

// PolygonGeometry is a closed polygon through three or more points in
// local coordinates. Rotation turns it about its centroid.
type PolygonGeometry struct {
	BaseGeometry
	points               [][2]float64
	centroidX, centroidY float64
}

// NewPolygonGeometry returns a polygon through points.
func NewPolygonGeometry(points [][2]float64) (*PolygonGeometry, error) {
	g := &PolygonGeometry{}
	if err := g.SetPoints(points); err != nil {
		return nil, err
	}
	return g, nil
}

// Points returns a copy of the vertices.
func (g *PolygonGeometry) Points() [][2]float64 {
	out := make([][2]float64, len(g.points))
	copy(out, g.points)
	return out
}

// SetPoints replaces the vertices and recomputes the centroid.
func (g *PolygonGeometry) SetPoints(points [][2]float64) error {
	if len(points) < 3 {
		return &TypeError{Field: "points", Want: "list of at least 3 [x, y] points"}
	}
	var sumX, sumY float64
	for i, p := range points {
		if err := checkFinite(fmt.Sprintf("points[%d][0]", i), p[0]); err != nil {
			return err
		}
		if err := checkFinite(fmt.Sprintf("points[%d][1]", i), p[1]); err != nil {
			return err
		}
		sumX += p[0]
		sumY += p[1]
	}
	g.points = make([][2]float64, len(points))
	copy(g.points, points)
	n := float64(len(points))
	g.centroidX, g.centroidY = sumX/n, sumY/n
	return nil
}

// Centroid returns the vertex mean in local coordinates.
func (g *PolygonGeometry) Centroid() (x, y float64) {
	return g.centroidX, g.centroidY
}

// DrawContext2D implements Geometry.
func (g *PolygonGeometry) DrawContext2D(ctx surface.Context2D, t *Transform, m Material) error {
	if err := checkDrawArgs(ctx, t, m); err != nil {
		return err
	}
	sx, sy := t.scale.x, t.scale.y
	cx, cy := g.centroidX*sx, g.centroidY*sy

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(t.position.x+cx, t.position.y+cy)
	ctx.Rotate(t.rotation)
	ctx.Translate(-cx, -cy)
	ctx.BeginPath()
	for i, p := range g.points {
		if i == 0 {
			ctx.MoveTo(p[0]*sx, p[1]*sy)
			continue
		}
		ctx.LineTo(p[0]*sx, p[1]*sy)
	}
	ctx.ClosePath()
	return paintPath(ctx, m)
}
