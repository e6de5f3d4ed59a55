package ggsurface

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/canvas2d/surface"
)

// state is the part of the drawing state covered by Save and Restore
// besides the transform, which gg keeps itself.
type state struct {
	fill, stroke surface.Style
	lineWidth    float64
	font         string
	fontSpec     fontSpec
	textAlign    string
	textBaseline string
	direction    string
	globalAlpha  float64
}

func defaultState() state {
	return state{
		fill:         surface.CSSColor("#000"),
		stroke:       surface.CSSColor("#000"),
		lineWidth:    1,
		font:         DefaultFont,
		fontSpec:     fontSpec{size: 10},
		textAlign:    surface.AlignStart,
		textBaseline: surface.BaselineAlphabetic,
		direction:    surface.DirectionInherit,
		globalAlpha:  1,
	}
}

// Canvas is a surface.Context2D drawing into a gg raster context.
// It is not safe for concurrent use.
type Canvas struct {
	gc    *gg.Context
	state state
	stack []state

	// hasPoint tracks whether the current path has a current point, which
	// decides whether Arc starts with a move or a line.
	hasPoint bool
}

var _ surface.Context2D = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	ggOpts []gg.ContextOption
}

// WithContextOptions passes options through to gg.NewContext, for example
// a custom renderer.
func WithContextOptions(opts ...gg.ContextOption) Option {
	return func(o *options) {
		o.ggOpts = append(o.ggOpts, opts...)
	}
}

// New returns a transparent canvas of the given pixel size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggsurface: invalid size %dx%d", width, height)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		gc:    gg.NewContext(width, height, o.ggOpts...),
		state: defaultState(),
	}, nil
}

// GG returns the underlying gg context.
func (c *Canvas) GG() *gg.Context { return c.gc }

// Close releases the gg context.
func (c *Canvas) Close() error { return c.gc.Close() }

// Width returns the surface width in pixels.
func (c *Canvas) Width() int { return c.gc.Width() }

// Height returns the surface height in pixels.
func (c *Canvas) Height() int { return c.gc.Height() }

// Resize reallocates the surface, clears it and resets the drawing state.
func (c *Canvas) Resize(width, height int) error {
	if err := c.gc.Resize(width, height); err != nil {
		return fmt.Errorf("ggsurface: %w", err)
	}
	for range c.stack {
		c.gc.Pop()
	}
	c.stack = nil
	c.state = defaultState()
	c.gc.Identity()
	c.gc.ClearPath()
	c.hasPoint = false
	c.gc.Clear()
	return nil
}

// Save pushes the drawing state.
func (c *Canvas) Save() {
	c.gc.Push()
	c.stack = append(c.stack, c.state)
}

// Restore pops the drawing state. Without a matching Save it does nothing.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.gc.Pop()
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) { c.gc.Translate(x, y) }
func (c *Canvas) Rotate(angle float64)   { c.gc.Rotate(angle) }
func (c *Canvas) Scale(x, y float64)     { c.gc.Scale(x, y) }

// SetTransform replaces the current transform.
func (c *Canvas) SetTransform(m surface.Matrix) { c.gc.SetTransform(toGG(m)) }

// GetTransform returns the current transform.
func (c *Canvas) GetTransform() surface.Matrix { return fromGG(c.gc.GetTransform()) }

// ClearRect makes the pixels inside the transformed rectangle transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	ctm := c.gc.GetTransform()
	pm := c.gc.ResizeTarget()
	pw, ph := pm.Width(), pm.Height()

	x0, y0, x1, y1 := deviceBounds(ctm, x, y, w, h)
	if x0 <= 0 && y0 <= 0 && x1 >= float64(pw) && y1 >= float64(ph) && isAxisAligned(ctm) {
		c.gc.Clear()
		return
	}

	inv := ctm.Invert()
	minX, maxX := math.Min(x, x+w), math.Max(x, x+w)
	minY, maxY := math.Min(y, y+h), math.Max(y, y+h)
	for py := max(int(math.Floor(y0)), 0); py < min(int(math.Ceil(y1)), ph); py++ {
		for px := max(int(math.Floor(x0)), 0); px < min(int(math.Ceil(x1)), pw); px++ {
			u := inv.TransformPoint(gg.Pt(float64(px)+0.5, float64(py)+0.5))
			if u.X >= minX && u.X < maxX && u.Y >= minY && u.Y < maxY {
				pm.SetPixel(px, py, gg.Transparent)
			}
		}
	}
}

// deviceBounds returns the device-space bounding box of a user rectangle.
func deviceBounds(m gg.Matrix, x, y, w, h float64) (x0, y0, x1, y1 float64) {
	pts := [4]gg.Point{
		m.TransformPoint(gg.Pt(x, y)),
		m.TransformPoint(gg.Pt(x+w, y)),
		m.TransformPoint(gg.Pt(x+w, y+h)),
		m.TransformPoint(gg.Pt(x, y+h)),
	}
	x0, y0 = pts[0].X, pts[0].Y
	x1, y1 = x0, y0
	for _, p := range pts[1:] {
		x0, y0 = math.Min(x0, p.X), math.Min(y0, p.Y)
		x1, y1 = math.Max(x1, p.X), math.Max(y1, p.Y)
	}
	return x0, y0, x1, y1
}

func isAxisAligned(m gg.Matrix) bool {
	return m.B == 0 && m.D == 0
}

func (c *Canvas) rectPath(x, y, w, h float64) {
	c.gc.ClearPath()
	c.gc.MoveTo(x, y)
	c.gc.LineTo(x+w, y)
	c.gc.LineTo(x+w, y+h)
	c.gc.LineTo(x, y+h)
	c.gc.ClosePath()
}

// FillRect fills a rectangle with the fill style.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	c.rectPath(x, y, w, h)
	err := c.fill()
	c.gc.ClearPath()
	c.hasPoint = false
	return err
}

// StrokeRect outlines a rectangle with the stroke style.
func (c *Canvas) StrokeRect(x, y, w, h float64) error {
	c.rectPath(x, y, w, h)
	err := c.stroke()
	c.gc.ClearPath()
	c.hasPoint = false
	return err
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.gc.ClearPath()
	c.hasPoint = false
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.gc.MoveTo(x, y)
	c.hasPoint = true
}

// LineTo adds a line segment. Without a current point it acts as MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasPoint {
		c.MoveTo(x, y)
		return
	}
	c.gc.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if c.hasPoint {
		c.gc.ClosePath()
	}
}

// Arc adds a circular arc centered at (x, y), approximated with cubic
// Béziers so that it follows the full transform.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64, ccw bool) {
	if radius < 0 || math.IsNaN(radius) {
		return
	}
	sweep := arcSweep(startAngle, endAngle, ccw)
	sx, sy := x+radius*math.Cos(startAngle), y+radius*math.Sin(startAngle)
	if c.hasPoint {
		c.gc.LineTo(sx, sy)
	} else {
		c.MoveTo(sx, sy)
	}
	if sweep == 0 || radius == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a0 := startAngle
	for i := 0; i < n; i++ {
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		c.gc.CubicTo(
			x+radius*(cos0-k*sin0), y+radius*(sin0+k*cos0),
			x+radius*(cos1+k*sin1), y+radius*(sin1-k*cos1),
			x+radius*cos1, y+radius*sin1,
		)
		a0 = a1
	}
}

// arcSweep returns the signed sweep of an arc with canvas semantics: a
// sweep of a full turn or more draws a full circle.
func arcSweep(start, end float64, ccw bool) float64 {
	const tau = 2 * math.Pi
	if !ccw {
		if end-start >= tau {
			return tau
		}
		s := math.Mod(end-start, tau)
		if s < 0 {
			s += tau
		}
		return s
	}
	if start-end >= tau {
		return -tau
	}
	s := math.Mod(start-end, tau)
	if s < 0 {
		s += tau
	}
	return -s
}

// Fill fills the current path with the fill style. The path is kept.
func (c *Canvas) Fill() error { return c.fill() }

// Stroke strokes the current path with the stroke style. The path is kept.
func (c *Canvas) Stroke() error { return c.stroke() }

func (c *Canvas) fill() error {
	b, err := brushFor(c.state.fill, c.gc.GetTransform(), c.state.globalAlpha)
	if err != nil {
		return err
	}
	c.gc.SetFillBrush(b)
	return c.gc.FillPreserve()
}

func (c *Canvas) stroke() error {
	ctm := c.gc.GetTransform()
	b, err := brushFor(c.state.stroke, ctm, c.state.globalAlpha)
	if err != nil {
		return err
	}
	c.gc.SetStrokeBrush(b)
	c.gc.SetLineWidth(c.state.lineWidth * fromGG(ctm).ScaleFactor())
	return c.gc.StrokePreserve()
}

// FillStyle returns the fill style.
func (c *Canvas) FillStyle() surface.Style { return c.state.fill }

// SetFillStyle sets the fill style. An unparsable color is rejected and
// the previous style kept.
func (c *Canvas) SetFillStyle(s surface.Style) error {
	if err := validateStyle(s); err != nil {
		return err
	}
	c.state.fill = s
	return nil
}

// StrokeStyle returns the stroke style.
func (c *Canvas) StrokeStyle() surface.Style { return c.state.stroke }

// SetStrokeStyle sets the stroke style.
func (c *Canvas) SetStrokeStyle(s surface.Style) error {
	if err := validateStyle(s); err != nil {
		return err
	}
	c.state.stroke = s
	return nil
}

func validateStyle(s surface.Style) error {
	switch st := s.(type) {
	case surface.CSSColor:
		_, err := parseColor(string(st))
		return err
	case *radialGradient, *imagePattern:
		return nil
	case nil:
		return fmt.Errorf("ggsurface: nil style")
	}
	return fmt.Errorf("ggsurface: style %T was not created by this canvas", s)
}

// LineWidth returns the stroke width in user units.
func (c *Canvas) LineWidth() float64 { return c.state.lineWidth }

// SetLineWidth sets the stroke width. Non-positive values are ignored.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		c.state.lineWidth = w
	}
}

// GlobalAlpha returns the opacity applied to everything drawn.
func (c *Canvas) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetGlobalAlpha sets the opacity. Values outside [0, 1] are ignored.
func (c *Canvas) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		c.state.globalAlpha = a
	}
}

// CreateRadialGradient returns a gradient between two circles.
func (c *Canvas) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) surface.Gradient {
	return &radialGradient{x0: x0, y0: y0, r0: r0, x1: x1, y1: y1, r1: r1}
}

// CreatePattern returns a tiling pattern for img, or nil while img is
// loading. img must expose its pixels through surface.ImageSource.
func (c *Canvas) CreatePattern(img surface.Image, rep surface.Repetition) (surface.Pattern, error) {
	if img == nil {
		return nil, fmt.Errorf("ggsurface: nil image")
	}
	if !img.Complete() {
		return nil, nil
	}
	src, ok := img.(surface.ImageSource)
	if !ok || src.Pixels() == nil {
		return nil, fmt.Errorf("ggsurface: image %T has no pixels", img)
	}
	rep, err := surface.ParseRepetition(string(rep))
	if err != nil {
		return nil, err
	}
	return newImagePattern(src.Pixels(), rep), nil
}

// Pixel returns the straight-alpha color at (x, y).
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	p := c.gc.ResizeTarget().GetPixel(x, y)
	return color.NRGBA{
		R: uint8(math.Round(p.R * 255)),
		G: uint8(math.Round(p.G * 255)),
		B: uint8(math.Round(p.B * 255)),
		A: uint8(math.Round(p.A * 255)),
	}
}

// Image returns a copy of the surface pixels.
func (c *Canvas) Image() image.Image { return c.gc.Image() }
