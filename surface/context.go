package surface

// Text layout values accepted by Context2D.
const (
	AlignStart  = "start"
	AlignEnd    = "end"
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"

	BaselineTop         = "top"
	BaselineHanging     = "hanging"
	BaselineMiddle      = "middle"
	BaselineAlphabetic  = "alphabetic"
	BaselineIdeographic = "ideographic"
	BaselineBottom      = "bottom"

	DirectionLTR     = "ltr"
	DirectionRTL     = "rtl"
	DirectionInherit = "inherit"
)

// Context2D is an immediate-mode 2D drawing context with canvas semantics.
// Save and Restore cover the transform, styles, line width, text settings
// and global alpha. Path coordinates are transformed when they are added.
type Context2D interface {
	Width() int
	Height() int
	// Resize reallocates the backing surface. State is reset to defaults
	// and the surface is cleared.
	Resize(width, height int) error

	Save()
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)
	SetTransform(m Matrix)
	GetTransform() Matrix

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64) error
	StrokeRect(x, y, w, h float64) error

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)
	Fill() error
	Stroke() error

	FillText(text string, x, y float64, maxWidth ...float64) error
	StrokeText(text string, x, y float64, maxWidth ...float64) error

	FillStyle() Style
	SetFillStyle(s Style) error
	StrokeStyle() Style
	SetStrokeStyle(s Style) error
	LineWidth() float64
	SetLineWidth(w float64)
	Font() string
	SetFont(font string)
	TextAlign() string
	SetTextAlign(align string)
	TextBaseline() string
	SetTextBaseline(baseline string)
	Direction() string
	SetDirection(dir string)
	GlobalAlpha() float64
	SetGlobalAlpha(a float64)

	CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient
	// CreatePattern returns a nil Pattern and no error while img is not
	// complete.
	CreatePattern(img Image, rep Repetition) (Pattern, error)
}
