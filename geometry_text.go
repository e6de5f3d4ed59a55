package canvas2d

import "github.com/phanxgames/canvas2d/surface"

// TextOptions controls text layout. Empty strings leave the context's
// current value alone. A zero MaxWidth means unconstrained.
type TextOptions struct {
	Font         string
	TextAlign    string
	TextBaseline string
	Direction    string
	MaxWidth     float64
}

// TextGeometry draws a single line of text anchored at the transform
// position.
type TextGeometry struct {
	BaseGeometry
	text    string
	options TextOptions
}

// NewTextGeometry returns a geometry drawing text.
func NewTextGeometry(text string, opts TextOptions) (*TextGeometry, error) {
	g := &TextGeometry{text: text}
	if err := g.SetOptions(opts); err != nil {
		return nil, err
	}
	return g, nil
}

// Text returns the string drawn.
func (g *TextGeometry) Text() string { return g.text }

// SetText replaces the string drawn.
func (g *TextGeometry) SetText(s string) { g.text = s }

// Options returns the layout options.
func (g *TextGeometry) Options() TextOptions { return g.options }

// SetOptions replaces the layout options.
func (g *TextGeometry) SetOptions(opts TextOptions) error {
	switch opts.TextAlign {
	case "", surface.AlignStart, surface.AlignEnd, surface.AlignLeft, surface.AlignRight, surface.AlignCenter:
	default:
		return &TypeError{Field: "textAlign", Want: "start, end, left, right or center"}
	}
	switch opts.TextBaseline {
	case "", surface.BaselineTop, surface.BaselineHanging, surface.BaselineMiddle,
		surface.BaselineAlphabetic, surface.BaselineIdeographic, surface.BaselineBottom:
	default:
		return &TypeError{Field: "textBaseline", Want: "top, hanging, middle, alphabetic, ideographic or bottom"}
	}
	switch opts.Direction {
	case "", surface.DirectionLTR, surface.DirectionRTL, surface.DirectionInherit:
	default:
		return &TypeError{Field: "direction", Want: "ltr, rtl or inherit"}
	}
	if err := checkRange("maxWidth", opts.MaxWidth, 0, maxFloat); err != nil {
		return err
	}
	g.options = opts
	return nil
}

// DrawContext2D implements Geometry. Text settings are written to the
// context only when they differ from its current values.
func (g *TextGeometry) DrawContext2D(ctx surface.Context2D, t *Transform, m Material) error {
	if err := checkDrawArgs(ctx, t, m); err != nil {
		return err
	}
	o := g.options
	if o.Font != "" && ctx.Font() != o.Font {
		ctx.SetFont(o.Font)
	}
	if o.TextAlign != "" && ctx.TextAlign() != o.TextAlign {
		ctx.SetTextAlign(o.TextAlign)
	}
	if o.TextBaseline != "" && ctx.TextBaseline() != o.TextBaseline {
		ctx.SetTextBaseline(o.TextBaseline)
	}
	if o.Direction != "" && ctx.Direction() != o.Direction {
		ctx.SetDirection(o.Direction)
	}

	var maxWidth []float64
	if o.MaxWidth > 0 {
		maxWidth = []float64{o.MaxWidth}
	}

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(t.position.x, t.position.y)
	ctx.Rotate(t.rotation)
	if fills(m) {
		if err := ctx.FillText(g.text, 0, 0, maxWidth...); err != nil {
			return err
		}
	}
	if strokes(m) {
		if err := ctx.StrokeText(g.text, 0, 0, maxWidth...); err != nil {
			return err
		}
	}
	return nil
}
