package canvas2d

import "github.com/phanxgames/canvas2d/surface"

// RectGeometry is an axis-aligned rectangle whose top-left corner sits at
// the transform position. Rotation turns it about its own center.
type RectGeometry struct {
	BaseGeometry
	width, height float64
}

// NewRectGeometry returns a width by height rectangle.
func NewRectGeometry(width, height float64) (*RectGeometry, error) {
	g := &RectGeometry{}
	if err := g.SetWidth(width); err != nil {
		return nil, err
	}
	if err := g.SetHeight(height); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the unscaled width.
func (g *RectGeometry) Width() float64 { return g.width }

// SetWidth assigns the unscaled width.
func (g *RectGeometry) SetWidth(w float64) error {
	if err := checkFinite("width", w); err != nil {
		return err
	}
	g.width = w
	return nil
}

// Height returns the unscaled height.
func (g *RectGeometry) Height() float64 { return g.height }

// SetHeight assigns the unscaled height.
func (g *RectGeometry) SetHeight(h float64) error {
	if err := checkFinite("height", h); err != nil {
		return err
	}
	g.height = h
	return nil
}

// DrawContext2D implements Geometry.
func (g *RectGeometry) DrawContext2D(ctx surface.Context2D, t *Transform, m Material) error {
	if err := checkDrawArgs(ctx, t, m); err != nil {
		return err
	}
	w := g.width * t.scale.x
	h := g.height * t.scale.y

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(t.position.x+w/2, t.position.y+h/2)
	ctx.Rotate(t.rotation)
	if fills(m) {
		if err := ctx.FillRect(-w/2, -h/2, w, h); err != nil {
			return err
		}
	}
	if strokes(m) {
		if err := ctx.StrokeRect(-w/2, -h/2, w, h); err != nil {
			return err
		}
	}
	return nil
}
