package canvas2d

import "github.com/phanxgames/canvas2d/surface"

// PointLight2D draws a radial glow centered on its position, fading from
// Color at the center to ColorStop at Radius.
type PointLight2D struct {
	Object2D
	radius    float64
	intensity float64
	color     Color
	colorStop Color
}

// PointLightOptions configures a PointLight2D. Nil colors default to opaque
// white fading to transparent white.
type PointLightOptions struct {
	Radius    float64
	Intensity float64
	Color     Color
	ColorStop Color
}

// NewPointLight2D returns a light built from opts.
func NewPointLight2D(opts PointLightOptions) (*PointLight2D, error) {
	l := &PointLight2D{}
	l.init(ZIndexPointLight2D)
	if err := l.SetRadius(opts.Radius); err != nil {
		return nil, err
	}
	if err := l.SetIntensity(opts.Intensity); err != nil {
		return nil, err
	}
	c := opts.Color
	if isNil(c) {
		c = MustRgbaColor(255, 255, 255, 1)
	}
	stop := opts.ColorStop
	if isNil(stop) {
		stop = MustRgbaColor(255, 255, 255, 0)
	}
	l.color, l.colorStop = c, stop
	return l, nil
}

// Radius returns the glow radius.
func (l *PointLight2D) Radius() float64 { return l.radius }

// SetRadius assigns the glow radius.
func (l *PointLight2D) SetRadius(r float64) error {
	if err := checkPositive("radius", r); err != nil {
		return err
	}
	l.radius = r
	return nil
}

// Intensity returns the opacity multiplier.
func (l *PointLight2D) Intensity() float64 { return l.intensity }

// SetIntensity assigns the opacity multiplier.
func (l *PointLight2D) SetIntensity(i float64) error {
	if err := checkRange("intensity", i, 0, 1); err != nil {
		return err
	}
	l.intensity = i
	return nil
}

// Color returns the center color.
func (l *PointLight2D) Color() Color { return l.color }

// SetColor assigns the center color.
func (l *PointLight2D) SetColor(c Color) error {
	if isNil(c) {
		return &TypeError{Field: "color", Want: "Color"}
	}
	l.color = c
	return nil
}

// ColorStop returns the edge color.
func (l *PointLight2D) ColorStop() Color { return l.colorStop }

// SetColorStop assigns the edge color.
func (l *PointLight2D) SetColorStop(c Color) error {
	if isNil(c) {
		return &TypeError{Field: "colorStop", Want: "Color"}
	}
	l.colorStop = c
	return nil
}

// Draw dispatches on the target's context type.
func (l *PointLight2D) Draw(r RenderTarget) error {
	return dispatchDraw(r, l.DrawContext2D)
}

// DrawContext2D fills the light's bounding square with a radial gradient.
func (l *PointLight2D) DrawContext2D(ctx surface.Context2D) error {
	if isNil(ctx) {
		return &TypeError{Field: "ctx", Want: "Context2D"}
	}
	x, y, r := l.transform.position.x, l.transform.position.y, l.radius

	g := ctx.CreateRadialGradient(x, y, 0, x, y, r)
	if err := g.AddColorStop(0, l.color.ColorString()); err != nil {
		return err
	}
	if err := g.AddColorStop(1, l.colorStop.ColorString()); err != nil {
		return err
	}

	ctx.Save()
	defer ctx.Restore()
	ctx.SetGlobalAlpha(l.intensity)
	if err := ctx.SetFillStyle(g); err != nil {
		return err
	}
	return ctx.FillRect(x-r, y-r, 2*r, 2*r)
}

// Bounds returns the square the light covers, in world coordinates.
func (l *PointLight2D) Bounds() (x, y, w, h float64) {
	p := l.transform.position
	return p.x - l.radius, p.y - l.radius, 2 * l.radius, 2 * l.radius
}
