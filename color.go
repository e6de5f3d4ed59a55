package canvas2d

import (
	"strings"

	"github.com/phanxgames/canvas2d/surface"
)

// Color is anything that renders to a CSS color string.
type Color interface {
	ColorString() string
}

// CSSColor is a raw CSS color string used directly as a Color.
type CSSColor string

// ColorString implements Color.
func (c CSSColor) ColorString() string { return string(c) }

func (c CSSColor) String() string { return string(c) }

// style converts c to the paint value a context accepts.
func style(c Color) surface.Style {
	return surface.CSSColor(c.ColorString())
}

// RgbaColor is a color in red, green, blue and alpha components. r, g and b
// are in [0, 255] and a is in [0, 1]. The color string is cached and kept
// in step with the components.
type RgbaColor struct {
	r, g, b, a float64
	str        string
	batching   bool
}

// NewRgbaColor validates the components and returns the color.
func NewRgbaColor(r, g, b, a float64) (*RgbaColor, error) {
	c := &RgbaColor{a: 1}
	if err := c.Set(r, g, b, a); err != nil {
		return nil, err
	}
	return c, nil
}

// MustRgbaColor is like NewRgbaColor but panics on invalid input.
func MustRgbaColor(r, g, b, a float64) *RgbaColor {
	c, err := NewRgbaColor(r, g, b, a)
	if err != nil {
		panic("canvas2d: " + err.Error())
	}
	return c
}

func (c *RgbaColor) R() float64 { return c.r }
func (c *RgbaColor) G() float64 { return c.g }
func (c *RgbaColor) B() float64 { return c.b }
func (c *RgbaColor) A() float64 { return c.a }

// SetR assigns the red component.
func (c *RgbaColor) SetR(v float64) error {
	if err := checkRange("r", v, 0, 255); err != nil {
		return err
	}
	c.r = v
	c.changed()
	return nil
}

// SetG assigns the green component.
func (c *RgbaColor) SetG(v float64) error {
	if err := checkRange("g", v, 0, 255); err != nil {
		return err
	}
	c.g = v
	c.changed()
	return nil
}

// SetB assigns the blue component.
func (c *RgbaColor) SetB(v float64) error {
	if err := checkRange("b", v, 0, 255); err != nil {
		return err
	}
	c.b = v
	c.changed()
	return nil
}

// SetA assigns the alpha component.
func (c *RgbaColor) SetA(v float64) error {
	if err := checkRange("a", v, 0, 1); err != nil {
		return err
	}
	c.a = v
	c.changed()
	return nil
}

// Set assigns all four components and rebuilds the color string once. On
// error the color is left exactly as it was.
func (c *RgbaColor) Set(r, g, b, a float64) error {
	pr, pg, pb, pa := c.r, c.g, c.b, c.a
	batch := beginBatch(&c.batching, func() {
		c.r, c.g, c.b, c.a = pr, pg, pb, pa
	}, c.updateString)
	defer batch.end()

	if err := c.SetR(r); err != nil {
		return err
	}
	if err := c.SetG(g); err != nil {
		return err
	}
	if err := c.SetB(b); err != nil {
		return err
	}
	if err := c.SetA(a); err != nil {
		return err
	}
	return batch.commit()
}

func (c *RgbaColor) changed() {
	if !c.batching {
		c.updateString()
	}
}

func (c *RgbaColor) updateString() {
	var sb strings.Builder
	sb.WriteString("rgba(")
	sb.WriteString(formatNumber(c.r))
	sb.WriteString(", ")
	sb.WriteString(formatNumber(c.g))
	sb.WriteString(", ")
	sb.WriteString(formatNumber(c.b))
	sb.WriteString(", ")
	sb.WriteString(formatNumber(c.a))
	sb.WriteByte(')')
	c.str = sb.String()
}

// ColorString implements Color.
func (c *RgbaColor) ColorString() string { return c.str }

func (c *RgbaColor) String() string { return c.str }

// Clone returns an independent copy.
func (c *RgbaColor) Clone() *RgbaColor {
	return &RgbaColor{r: c.r, g: c.g, b: c.b, a: c.a, str: c.str}
}

// HslaColor is a color in hue, saturation, lightness and alpha. h is in
// [0, 360], s and l are percentages in [0, 100] and a is in [0, 1].
type HslaColor struct {
	h, s, l, a float64
	str        string
	batching   bool
}

// NewHslaColor validates the components and returns the color.
func NewHslaColor(h, s, l, a float64) (*HslaColor, error) {
	c := &HslaColor{a: 1}
	if err := c.Set(h, s, l, a); err != nil {
		return nil, err
	}
	return c, nil
}

// MustHslaColor is like NewHslaColor but panics on invalid input.
func MustHslaColor(h, s, l, a float64) *HslaColor {
	c, err := NewHslaColor(h, s, l, a)
	if err != nil {
		panic("canvas2d: " + err.Error())
	}
	return c
}

func (c *HslaColor) H() float64 { return c.h }
func (c *HslaColor) S() float64 { return c.s }
func (c *HslaColor) L() float64 { return c.l }
func (c *HslaColor) A() float64 { return c.a }

// SetH assigns the hue in degrees.
func (c *HslaColor) SetH(v float64) error {
	if err := checkRange("h", v, 0, 360); err != nil {
		return err
	}
	c.h = v
	c.changed()
	return nil
}

// SetS assigns the saturation percentage.
func (c *HslaColor) SetS(v float64) error {
	if err := checkRange("s", v, 0, 100); err != nil {
		return err
	}
	c.s = v
	c.changed()
	return nil
}

// SetL assigns the lightness percentage.
func (c *HslaColor) SetL(v float64) error {
	if err := checkRange("l", v, 0, 100); err != nil {
		return err
	}
	c.l = v
	c.changed()
	return nil
}

// SetA assigns the alpha component.
func (c *HslaColor) SetA(v float64) error {
	if err := checkRange("a", v, 0, 1); err != nil {
		return err
	}
	c.a = v
	c.changed()
	return nil
}

// Set assigns all four components and rebuilds the color string once. On
// error the color is left exactly as it was.
func (c *HslaColor) Set(h, s, l, a float64) error {
	ph, ps, pl, pa := c.h, c.s, c.l, c.a
	batch := beginBatch(&c.batching, func() {
		c.h, c.s, c.l, c.a = ph, ps, pl, pa
	}, c.updateString)
	defer batch.end()

	if err := c.SetH(h); err != nil {
		return err
	}
	if err := c.SetS(s); err != nil {
		return err
	}
	if err := c.SetL(l); err != nil {
		return err
	}
	if err := c.SetA(a); err != nil {
		return err
	}
	return batch.commit()
}

func (c *HslaColor) changed() {
	if !c.batching {
		c.updateString()
	}
}

func (c *HslaColor) updateString() {
	var sb strings.Builder
	sb.WriteString("hsla(")
	sb.WriteString(formatNumber(c.h))
	sb.WriteString(", ")
	sb.WriteString(formatNumber(c.s))
	sb.WriteString("%, ")
	sb.WriteString(formatNumber(c.l))
	sb.WriteString("%, ")
	sb.WriteString(formatNumber(c.a))
	sb.WriteByte(')')
	c.str = sb.String()
}

// ColorString implements Color.
func (c *HslaColor) ColorString() string { return c.str }

func (c *HslaColor) String() string { return c.str }

// Clone returns an independent copy.
func (c *HslaColor) Clone() *HslaColor {
	return &HslaColor{h: c.h, s: c.s, l: c.l, a: c.a, str: c.str}
}
