package canvas2d

import (
	"fmt"
	"strings"

	"github.com/phanxgames/canvas2d/surface"
)

// recorder is a surface.Context2D that logs every drawing call as a
// string such as "fillRect(-5,-5,10,10)" and tracks state like a canvas.
type recorder struct {
	calls []string
	w, h  int
	st    recState
	stack []recState

	patternsMade int
	failOn       string
}

type recState struct {
	fill, stroke surface.Style
	lineWidth    float64
	font         string
	align        string
	baseline     string
	dir          string
	alpha        float64
	m            surface.Matrix
}

var _ surface.Context2D = (*recorder)(nil)

func newRecorder(w, h int) *recorder {
	r := &recorder{w: w, h: h}
	r.reset()
	return r
}

func (r *recorder) reset() {
	r.st = recState{
		fill:      surface.CSSColor("#000"),
		stroke:    surface.CSSColor("#000"),
		lineWidth: 1,
		font:      "10px sans-serif",
		align:     surface.AlignStart,
		baseline:  surface.BaselineAlphabetic,
		dir:       surface.DirectionInherit,
		alpha:     1,
		m:         surface.Identity,
	}
	r.stack = nil
}

func (r *recorder) rec(name string, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case float64:
			if v == 0 {
				v = 0 // drop the sign of -0
			}
			parts[i] = formatNumber(v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	r.calls = append(r.calls, name+"("+strings.Join(parts, ",")+")")
}

func (r *recorder) fail(name string) error {
	if r.failOn == name {
		return fmt.Errorf("%s failed", name)
	}
	return nil
}

// ops returns the recorded call names without arguments.
func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c[:strings.IndexByte(c, '(')]
	}
	return out
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func (r *recorder) Resize(w, h int) error {
	r.rec("resize", w, h)
	r.w, r.h = w, h
	r.reset()
	return nil
}

func (r *recorder) Save() {
	r.rec("save")
	r.stack = append(r.stack, r.st)
}

func (r *recorder) Restore() {
	r.rec("restore")
	if n := len(r.stack); n > 0 {
		r.st = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *recorder) Translate(x, y float64) {
	r.rec("translate", x, y)
	r.st.m = r.st.m.TranslateSelf(x, y)
}

func (r *recorder) Rotate(a float64) {
	r.rec("rotate", a)
	r.st.m = r.st.m.RotateSelf(a)
}

func (r *recorder) Scale(x, y float64) {
	r.rec("scale", x, y)
	r.st.m = r.st.m.ScaleSelf(x, y)
}

func (r *recorder) SetTransform(m surface.Matrix) {
	r.rec("setTransform")
	r.st.m = m
}

func (r *recorder) GetTransform() surface.Matrix { return r.st.m }

func (r *recorder) ClearRect(x, y, w, h float64) { r.rec("clearRect", x, y, w, h) }

func (r *recorder) FillRect(x, y, w, h float64) error {
	r.rec("fillRect", x, y, w, h)
	return r.fail("fillRect")
}

func (r *recorder) StrokeRect(x, y, w, h float64) error {
	r.rec("strokeRect", x, y, w, h)
	return r.fail("strokeRect")
}

func (r *recorder) BeginPath()          { r.rec("beginPath") }
func (r *recorder) MoveTo(x, y float64) { r.rec("moveTo", x, y) }
func (r *recorder) LineTo(x, y float64) { r.rec("lineTo", x, y) }
func (r *recorder) ClosePath()          { r.rec("closePath") }

func (r *recorder) Arc(x, y, radius, start, end float64, ccw bool) {
	r.rec("arc", x, y, radius, start, end, ccw)
}

func (r *recorder) Fill() error {
	r.rec("fill")
	return r.fail("fill")
}

func (r *recorder) Stroke() error {
	r.rec("stroke")
	return r.fail("stroke")
}

func (r *recorder) FillText(text string, x, y float64, maxWidth ...float64) error {
	args := []any{text, x, y}
	for _, w := range maxWidth {
		args = append(args, w)
	}
	r.rec("fillText", args...)
	return r.fail("fillText")
}

func (r *recorder) StrokeText(text string, x, y float64, maxWidth ...float64) error {
	args := []any{text, x, y}
	for _, w := range maxWidth {
		args = append(args, w)
	}
	r.rec("strokeText", args...)
	return r.fail("strokeText")
}

func (r *recorder) FillStyle() surface.Style { return r.st.fill }

func (r *recorder) SetFillStyle(s surface.Style) error {
	r.rec("setFillStyle", styleName(s))
	r.st.fill = s
	return nil
}

func (r *recorder) StrokeStyle() surface.Style { return r.st.stroke }

func (r *recorder) SetStrokeStyle(s surface.Style) error {
	r.rec("setStrokeStyle", styleName(s))
	r.st.stroke = s
	return nil
}

func (r *recorder) LineWidth() float64 { return r.st.lineWidth }

func (r *recorder) SetLineWidth(w float64) {
	r.rec("setLineWidth", w)
	r.st.lineWidth = w
}

func (r *recorder) Font() string { return r.st.font }

func (r *recorder) SetFont(f string) {
	r.rec("setFont", f)
	r.st.font = f
}

func (r *recorder) TextAlign() string { return r.st.align }

func (r *recorder) SetTextAlign(a string) {
	r.rec("setTextAlign", a)
	r.st.align = a
}

func (r *recorder) TextBaseline() string { return r.st.baseline }

func (r *recorder) SetTextBaseline(b string) {
	r.rec("setTextBaseline", b)
	r.st.baseline = b
}

func (r *recorder) Direction() string { return r.st.dir }

func (r *recorder) SetDirection(d string) {
	r.rec("setDirection", d)
	r.st.dir = d
}

func (r *recorder) GlobalAlpha() float64 { return r.st.alpha }

func (r *recorder) SetGlobalAlpha(a float64) {
	r.rec("setGlobalAlpha", a)
	r.st.alpha = a
}

func (r *recorder) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) surface.Gradient {
	r.rec("createRadialGradient", x0, y0, r0, x1, y1, r1)
	return &fakeGradient{}
}

func (r *recorder) CreatePattern(img surface.Image, rep surface.Repetition) (surface.Pattern, error) {
	if !img.Complete() {
		return nil, nil
	}
	r.patternsMade++
	r.rec("createPattern", string(rep))
	return &fakePattern{rep: rep}, nil
}

func styleName(s surface.Style) string {
	switch v := s.(type) {
	case surface.CSSColor:
		return string(v)
	case *fakeGradient:
		return "gradient"
	case *fakePattern:
		return "pattern"
	}
	return "?"
}

type fakeGradient struct {
	surface.GradientBase
	stops []string
}

func (g *fakeGradient) AddColorStop(offset float64, color string) error {
	if offset < 0 || offset > 1 {
		return fmt.Errorf("offset %v out of range", offset)
	}
	g.stops = append(g.stops, formatNumber(offset)+" "+color)
	return nil
}

type fakePattern struct {
	surface.PatternBase
	rep        surface.Repetition
	transforms []surface.Matrix
}

func (p *fakePattern) SetTransform(m surface.Matrix) {
	p.transforms = append(p.transforms, m)
}

// fakeImage is a surface.Image whose completion the test controls.
type fakeImage struct {
	complete bool
	w, h     int
}

func (i *fakeImage) Complete() bool     { return i.complete }
func (i *fakeImage) NaturalWidth() int  { return i.w }
func (i *fakeImage) NaturalHeight() int { return i.h }

// target is a RenderTarget for direct Draw calls.
type target struct {
	kind string
	ctx  surface.Context2D
}

func (t target) ContextType() string          { return t.kind }
func (t target) Context2D() surface.Context2D { return t.ctx }

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
