package canvas2d

import (
	"reflect"

	"github.com/phanxgames/canvas2d/surface"
)

// Material is the paint applied to a context before a geometry draws.
type Material interface {
	FillStyle() Color
	StrokeStyle() Color
	LineWidth() float64
	Texture() *Texture2D
	ApplyToContext2D(ctx surface.Context2D) error
}

// transparent is used when a textured material has no fill color and its
// texture has not finished loading.
const transparent = surface.CSSColor("rgba(0, 0, 0, 0)")

// BasicMaterialOptions configures a BasicMaterial. At least one of
// FillStyle and StrokeStyle is required. A zero LineWidth means 1.
type BasicMaterialOptions struct {
	FillStyle   Color
	StrokeStyle Color
	LineWidth   float64
	Texture     *Texture2D
}

// BasicMaterial fills and strokes with plain colors, optionally filling
// with a texture pattern instead of the fill color.
type BasicMaterial struct {
	fillStyle   Color
	strokeStyle Color
	lineWidth   float64
	texture     *Texture2D
	batching    bool
}

// NewBasicMaterial returns a material built from opts.
func NewBasicMaterial(opts BasicMaterialOptions) (*BasicMaterial, error) {
	m := &BasicMaterial{lineWidth: 1}
	if err := m.Set(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// FillStyle returns the fill color, or nil.
func (m *BasicMaterial) FillStyle() Color { return m.fillStyle }

// StrokeStyle returns the stroke color, or nil.
func (m *BasicMaterial) StrokeStyle() Color { return m.strokeStyle }

// LineWidth returns the stroke width.
func (m *BasicMaterial) LineWidth() float64 { return m.lineWidth }

// Texture returns the fill texture, or nil.
func (m *BasicMaterial) Texture() *Texture2D { return m.texture }

// SetFillStyle assigns the fill color. nil clears it, which fails when
// there is no stroke color either.
func (m *BasicMaterial) SetFillStyle(c Color) error {
	if isNil(c) {
		c = nil
	}
	if c == nil && !m.batching && m.strokeStyle == nil {
		return errNoStyle
	}
	m.fillStyle = c
	return nil
}

// SetStrokeStyle assigns the stroke color. nil clears it, which fails when
// there is no fill color either.
func (m *BasicMaterial) SetStrokeStyle(c Color) error {
	if isNil(c) {
		c = nil
	}
	if c == nil && !m.batching && m.fillStyle == nil {
		return errNoStyle
	}
	m.strokeStyle = c
	return nil
}

// SetLineWidth assigns the stroke width.
func (m *BasicMaterial) SetLineWidth(w float64) error {
	if err := checkPositive("lineWidth", w); err != nil {
		return err
	}
	m.lineWidth = w
	return nil
}

// SetTexture assigns the fill texture. nil removes it.
func (m *BasicMaterial) SetTexture(t *Texture2D) error {
	m.texture = t
	return nil
}

// Set replaces every field at once. The fill-or-stroke rule is checked
// against the final values only. On error nothing changes.
func (m *BasicMaterial) Set(opts BasicMaterialOptions) error {
	prev := *m
	batch := beginBatch(&m.batching, func() {
		m.fillStyle, m.strokeStyle = prev.fillStyle, prev.strokeStyle
		m.lineWidth, m.texture = prev.lineWidth, prev.texture
	}, nil)
	defer batch.end()

	if err := m.SetFillStyle(opts.FillStyle); err != nil {
		return err
	}
	if err := m.SetStrokeStyle(opts.StrokeStyle); err != nil {
		return err
	}
	lw := opts.LineWidth
	if lw == 0 {
		lw = 1
	}
	if err := m.SetLineWidth(lw); err != nil {
		return err
	}
	if err := m.SetTexture(opts.Texture); err != nil {
		return err
	}
	if m.fillStyle == nil && m.strokeStyle == nil {
		return errNoStyle
	}
	return batch.commit()
}

// ApplyToContext2D sets the context's fill style, stroke style and line
// width. A loaded texture takes precedence over the fill color.
func (m *BasicMaterial) ApplyToContext2D(ctx surface.Context2D) error {
	if ctx == nil {
		return &TypeError{Field: "ctx", Want: "Context2D"}
	}
	if m.texture != nil {
		pattern, err := m.texture.CreatePattern(ctx)
		if err != nil {
			return err
		}
		switch {
		case pattern != nil:
			err = ctx.SetFillStyle(pattern)
		case m.fillStyle != nil:
			err = ctx.SetFillStyle(style(m.fillStyle))
		default:
			err = ctx.SetFillStyle(transparent)
		}
		if err != nil {
			return err
		}
	} else if m.fillStyle != nil {
		if err := ctx.SetFillStyle(style(m.fillStyle)); err != nil {
			return err
		}
	}
	if m.strokeStyle != nil {
		if err := ctx.SetStrokeStyle(style(m.strokeStyle)); err != nil {
			return err
		}
	}
	if m.lineWidth > 0 {
		ctx.SetLineWidth(m.lineWidth)
	}
	return nil
}

var errNoStyle = &TypeError{Field: "fillStyle or strokeStyle", Want: "Color"}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// fills reports whether geometry drawn with m should be filled.
func fills(m Material) bool {
	return m.FillStyle() != nil || m.Texture() != nil
}

// strokes reports whether geometry drawn with m should be stroked.
func strokes(m Material) bool {
	return m.StrokeStyle() != nil
}
