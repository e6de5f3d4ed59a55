package ggsurface

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/phanxgames/canvas2d/surface"
)

// Font returns the CSS font shorthand.
func (c *Canvas) Font() string { return c.state.font }

// SetFont sets the font from a CSS shorthand such as "bold 16px monospace".
// Unparsable values are ignored.
func (c *Canvas) SetFont(font string) {
	spec, err := parseFont(font)
	if err != nil {
		return
	}
	c.state.font = font
	c.state.fontSpec = spec
}

// TextAlign returns the horizontal text anchor.
func (c *Canvas) TextAlign() string { return c.state.textAlign }

// SetTextAlign sets the horizontal text anchor. Unknown values are ignored.
func (c *Canvas) SetTextAlign(align string) {
	switch align {
	case surface.AlignStart, surface.AlignEnd, surface.AlignLeft, surface.AlignRight, surface.AlignCenter:
		c.state.textAlign = align
	}
}

// TextBaseline returns the vertical text anchor.
func (c *Canvas) TextBaseline() string { return c.state.textBaseline }

// SetTextBaseline sets the vertical text anchor. Unknown values are
// ignored.
func (c *Canvas) SetTextBaseline(baseline string) {
	switch baseline {
	case surface.BaselineTop, surface.BaselineHanging, surface.BaselineMiddle,
		surface.BaselineAlphabetic, surface.BaselineIdeographic, surface.BaselineBottom:
		c.state.textBaseline = baseline
	}
}

// Direction returns the text direction.
func (c *Canvas) Direction() string { return c.state.direction }

// SetDirection sets the text direction. Unknown values are ignored.
func (c *Canvas) SetDirection(dir string) {
	switch dir {
	case surface.DirectionLTR, surface.DirectionRTL, surface.DirectionInherit:
		c.state.direction = dir
	}
}

// MeasureText returns the advance width of s in user units.
func (c *Canvas) MeasureText(s string) (float64, error) {
	src, err := fontSource(c.state.fontSpec)
	if err != nil {
		return 0, err
	}
	return src.Face(c.state.fontSpec.size).Advance(s), nil
}

// FillText draws s with the fill style, anchored at (x, y) according to
// the text align and baseline. A maxWidth shrinks the font so the text
// fits.
func (c *Canvas) FillText(s string, x, y float64, maxWidth ...float64) error {
	return c.drawText(s, x, y, c.state.fill, maxWidth)
}

// StrokeText draws s in the stroke style.
func (c *Canvas) StrokeText(s string, x, y float64, maxWidth ...float64) error {
	return c.drawText(s, x, y, c.state.stroke, maxWidth)
}

func (c *Canvas) drawText(s string, x, y float64, st surface.Style, maxWidth []float64) error {
	if s == "" {
		return nil
	}
	src, err := fontSource(c.state.fontSpec)
	if err != nil {
		return err
	}
	ctm := c.gc.GetTransform()
	scale := fromGG(ctm).ScaleFactor()
	if scale == 0 {
		return nil
	}

	size := c.state.fontSpec.size
	face := src.Face(size * scale)
	width := face.Advance(s)
	if len(maxWidth) > 0 && maxWidth[0] >= 0 {
		limit := maxWidth[0] * scale
		if limit == 0 {
			return nil
		}
		if width > limit {
			face = src.Face(size * scale * limit / width)
			width = face.Advance(s)
		}
	}

	anchor := ctm.TransformPoint(gg.Pt(x, y))
	dx := anchor.X + c.alignOffset(width)
	dy := anchor.Y + baselineOffset(face.Metrics(), c.state.textBaseline)

	col, err := solidFor(st, ctm, c.state.globalAlpha, anchor.X, anchor.Y)
	if err != nil {
		return err
	}

	c.gc.Push()
	defer c.gc.Pop()
	c.gc.Identity()
	c.gc.SetFillBrush(gg.Solid(col))
	c.gc.SetFont(face)
	c.gc.DrawString(s, dx, dy)
	return nil
}

// alignOffset returns the horizontal shift for the current alignment.
func (c *Canvas) alignOffset(width float64) float64 {
	rtl := c.state.direction == surface.DirectionRTL
	switch c.state.textAlign {
	case surface.AlignCenter:
		return -width / 2
	case surface.AlignRight:
		return -width
	case surface.AlignEnd:
		if !rtl {
			return -width
		}
	case surface.AlignStart:
		if rtl {
			return -width
		}
	}
	return 0
}

// baselineOffset returns the vertical shift from the requested baseline
// to the alphabetic baseline gg draws on.
func baselineOffset(m text.Metrics, baseline string) float64 {
	switch baseline {
	case surface.BaselineTop, surface.BaselineHanging:
		return m.Ascent
	case surface.BaselineMiddle:
		return (m.Ascent - m.Descent) / 2
	case surface.BaselineBottom, surface.BaselineIdeographic:
		return -m.Descent
	}
	return 0
}
