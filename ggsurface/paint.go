package ggsurface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/canvas2d/surface"
)

// radialGradient is a two-circle radial gradient in user space.
type radialGradient struct {
	surface.GradientBase
	x0, y0, r0 float64
	x1, y1, r1 float64
	stops      []gg.ColorStop
}

// AddColorStop implements surface.Gradient.
func (g *radialGradient) AddColorStop(offset float64, css string) error {
	if math.IsNaN(offset) || offset < 0 || offset > 1 {
		return fmt.Errorf("ggsurface: color stop offset %v outside [0, 1]", offset)
	}
	c, err := parseColor(css)
	if err != nil {
		return err
	}
	g.stops = append(g.stops, gg.ColorStop{Offset: offset, Color: c})
	return nil
}

// brush returns a gg brush sampling the gradient in user space.
func (g *radialGradient) brush() *gg.RadialGradientBrush {
	b := gg.NewRadialGradientBrush(g.x1, g.y1, g.r0, g.r1)
	if g.x0 != g.x1 || g.y0 != g.y1 {
		b.SetFocus(g.x0, g.y0)
	}
	for _, s := range g.stops {
		b.AddColorStop(s.Offset, s.Color)
	}
	return b
}

// imagePattern tiles an image. Its transform maps pattern space into user
// space.
type imagePattern struct {
	surface.PatternBase
	pix       *image.NRGBA
	rep       surface.Repetition
	transform surface.Matrix
}

// SetTransform implements surface.Pattern.
func (p *imagePattern) SetTransform(m surface.Matrix) {
	p.transform = m
}

func newImagePattern(src image.Image, rep surface.Repetition) *imagePattern {
	b := src.Bounds()
	pix := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pix, pix.Bounds(), src, b.Min, draw.Src)
	return &imagePattern{pix: pix, rep: rep, transform: surface.Identity}
}

// colorAt samples the pattern at a point in pattern space.
func (p *imagePattern) colorAt(x, y float64) gg.RGBA {
	w, h := p.pix.Rect.Dx(), p.pix.Rect.Dy()
	if w == 0 || h == 0 {
		return gg.Transparent
	}
	px, py := math.Floor(x), math.Floor(y)
	if p.rep.TilesX() {
		px = math.Mod(px, float64(w))
		if px < 0 {
			px += float64(w)
		}
	} else if px < 0 || px >= float64(w) {
		return gg.Transparent
	}
	if p.rep.TilesY() {
		py = math.Mod(py, float64(h))
		if py < 0 {
			py += float64(h)
		}
	} else if py < 0 || py >= float64(h) {
		return gg.Transparent
	}
	c := p.pix.NRGBAAt(int(px), int(py))
	return nrgbaToGG(c)
}

func nrgbaToGG(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// brushFor builds the gg brush painting style s under the device matrix
// ctm with the given global alpha.
func brushFor(s surface.Style, ctm gg.Matrix, alpha float64) (gg.Brush, error) {
	switch st := s.(type) {
	case surface.CSSColor:
		c, err := parseColor(string(st))
		if err != nil {
			return nil, err
		}
		c.A *= alpha
		return gg.Solid(c), nil
	case *radialGradient:
		inv := ctm.Invert()
		grad := st.brush()
		return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
			u := inv.TransformPoint(gg.Pt(x, y))
			c := grad.ColorAt(u.X, u.Y)
			c.A *= alpha
			return c
		}), nil
	case *imagePattern:
		toPattern := ctm.Multiply(toGG(st.transform)).Invert()
		return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
			u := toPattern.TransformPoint(gg.Pt(x, y))
			c := st.colorAt(u.X, u.Y)
			c.A *= alpha
			return c
		}), nil
	}
	return nil, fmt.Errorf("ggsurface: unsupported style %T", s)
}

// solidFor returns a single color for s, used where gg needs a solid
// paint such as text. Gradients and patterns are sampled at (x, y) in
// device space.
func solidFor(s surface.Style, ctm gg.Matrix, alpha float64, x, y float64) (gg.RGBA, error) {
	b, err := brushFor(s, ctm, alpha)
	if err != nil {
		return gg.RGBA{}, err
	}
	return b.ColorAt(x, y), nil
}

// toGG converts a DOMMatrix-layout matrix to gg's layout.
func toGG(m surface.Matrix) gg.Matrix {
	return gg.Matrix{A: m.A, B: m.C, C: m.E, D: m.B, E: m.D, F: m.F}
}

// fromGG converts a gg matrix to DOMMatrix layout.
func fromGG(m gg.Matrix) surface.Matrix {
	return surface.Matrix{A: m.A, B: m.D, C: m.B, D: m.E, E: m.C, F: m.F}
}
