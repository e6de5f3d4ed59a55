package canvas2d

import (
	"math"

	"github.com/phanxgames/canvas2d/surface"
)

// CircleGeometry is a circle centered on the transform position. A
// non-uniform scale uses the mean of both axes.
type CircleGeometry struct {
	BaseGeometry
	radius float64
}

// NewCircleGeometry returns a circle of the given radius.
func NewCircleGeometry(radius float64) (*CircleGeometry, error) {
	g := &CircleGeometry{}
	if err := g.SetRadius(radius); err != nil {
		return nil, err
	}
	return g, nil
}

// Radius returns the unscaled radius.
func (g *CircleGeometry) Radius() float64 { return g.radius }

// SetRadius assigns the unscaled radius.
func (g *CircleGeometry) SetRadius(r float64) error {
	if err := checkRange("radius", r, 0, maxFloat); err != nil {
		return err
	}
	g.radius = r
	return nil
}

// DrawContext2D implements Geometry.
func (g *CircleGeometry) DrawContext2D(ctx surface.Context2D, t *Transform, m Material) error {
	if err := checkDrawArgs(ctx, t, m); err != nil {
		return err
	}
	r := g.radius * (t.scale.x + t.scale.y) / 2
	ctx.BeginPath()
	ctx.Arc(t.position.x, t.position.y, r, 0, 2*math.Pi, false)
	return paintPath(ctx, m)
}
