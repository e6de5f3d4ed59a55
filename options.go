package canvas2d

import "github.com/phanxgames/canvas2d/surface"

// Defaults used when neither an option nor a Display supplies a value.
const (
	DefaultWidth            = 300
	DefaultHeight           = 150
	DefaultDevicePixelRatio = 1
	DefaultBackground       = CSSColor("#000")
)

// RendererOptions holds a renderer's logical size, device pixel ratio and
// background. Changing the size or ratio recalculates the renderer's
// backing surface immediately; SetSize does so once for both dimensions.
type RendererOptions struct {
	width, height         float64
	devicePixelRatio      float64
	background            Color
	halfWidth, halfHeight float64

	batching bool
	onResize func() error
}

// NewRendererOptions returns options with the defaults.
func NewRendererOptions() *RendererOptions {
	o := &RendererOptions{
		width:            DefaultWidth,
		height:           DefaultHeight,
		devicePixelRatio: DefaultDevicePixelRatio,
		background:       DefaultBackground,
	}
	o.updateHalf()
	return o
}

// Width returns the logical width.
func (o *RendererOptions) Width() float64 { return o.width }

// Height returns the logical height.
func (o *RendererOptions) Height() float64 { return o.height }

// HalfWidth returns Width/2.
func (o *RendererOptions) HalfWidth() float64 { return o.halfWidth }

// HalfHeight returns Height/2.
func (o *RendererOptions) HalfHeight() float64 { return o.halfHeight }

// DevicePixelRatio returns the physical pixels per logical unit.
func (o *RendererOptions) DevicePixelRatio() float64 { return o.devicePixelRatio }

// Background returns the background color.
func (o *RendererOptions) Background() Color { return o.background }

// SetWidth assigns the logical width.
func (o *RendererOptions) SetWidth(w float64) error {
	if err := checkPositive("width", w); err != nil {
		return err
	}
	prev := o.width
	o.width = w
	o.updateHalf()
	if err := o.changed(); err != nil {
		o.width = prev
		o.updateHalf()
		return err
	}
	return nil
}

// SetHeight assigns the logical height.
func (o *RendererOptions) SetHeight(h float64) error {
	if err := checkPositive("height", h); err != nil {
		return err
	}
	prev := o.height
	o.height = h
	o.updateHalf()
	if err := o.changed(); err != nil {
		o.height = prev
		o.updateHalf()
		return err
	}
	return nil
}

// SetDevicePixelRatio assigns the physical pixels per logical unit.
func (o *RendererOptions) SetDevicePixelRatio(dpr float64) error {
	if err := checkPositive("devicePixelRatio", dpr); err != nil {
		return err
	}
	prev := o.devicePixelRatio
	o.devicePixelRatio = dpr
	if err := o.changed(); err != nil {
		o.devicePixelRatio = prev
		return err
	}
	return nil
}

// SetSize assigns both dimensions and resizes once. On error, including a
// failed resize, the previous size is kept.
func (o *RendererOptions) SetSize(w, h float64) error {
	pw, ph := o.width, o.height
	batch := beginBatch(&o.batching, func() {
		o.width, o.height = pw, ph
	}, o.updateHalf)
	defer batch.end()

	if err := o.SetWidth(w); err != nil {
		return err
	}
	if err := o.SetHeight(h); err != nil {
		return err
	}
	if err := batch.commit(); err != nil {
		return err
	}
	if err := o.changed(); err != nil {
		o.width, o.height = pw, ph
		o.updateHalf()
		return err
	}
	return nil
}

// SetBackground assigns the background color.
func (o *RendererOptions) SetBackground(c Color) error {
	if isNil(c) {
		return &TypeError{Field: "background", Want: "Color"}
	}
	o.background = c
	return nil
}

func (o *RendererOptions) updateHalf() {
	o.halfWidth = o.width / 2
	o.halfHeight = o.height / 2
}

func (o *RendererOptions) changed() error {
	if o.batching || o.onResize == nil {
		return nil
	}
	return o.onResize()
}

// RendererOption configures a renderer at construction.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	width, height float64
	dpr           float64
	background    Color
	display       surface.Display
	scheduler     surface.FrameScheduler
	debug         bool
}

// WithSize sets the logical size. It overrides the display size.
func WithSize(width, height float64) RendererOption {
	return func(c *rendererConfig) {
		c.width, c.height = width, height
	}
}

// WithDevicePixelRatio sets the device pixel ratio. It overrides the
// display ratio.
func WithDevicePixelRatio(dpr float64) RendererOption {
	return func(c *rendererConfig) {
		c.dpr = dpr
	}
}

// WithBackground sets the background color.
func WithBackground(bg Color) RendererOption {
	return func(c *rendererConfig) {
		c.background = bg
	}
}

// WithDisplay supplies default size and ratio from a host display.
func WithDisplay(d surface.Display) RendererOption {
	return func(c *rendererConfig) {
		c.display = d
	}
}

// WithScheduler sets the frame scheduler used by RequestAnimationFrame.
func WithScheduler(s surface.FrameScheduler) RendererOption {
	return func(c *rendererConfig) {
		c.scheduler = s
	}
}

// WithDebug enables per-frame statistics logging.
func WithDebug(debug bool) RendererOption {
	return func(c *rendererConfig) {
		c.debug = debug
	}
}

// buildOptions resolves the configuration into validated options.
func (c *rendererConfig) buildOptions() (*RendererOptions, error) {
	o := NewRendererOptions()
	w, h, dpr := c.width, c.height, c.dpr
	if c.display != nil {
		dw, dh := c.display.Size()
		if w == 0 && h == 0 {
			w, h = dw, dh
		}
		if dpr == 0 {
			dpr = c.display.DevicePixelRatio()
		}
	}
	if w != 0 || h != 0 {
		if err := o.SetSize(w, h); err != nil {
			return nil, err
		}
	}
	if dpr != 0 {
		if err := o.SetDevicePixelRatio(dpr); err != nil {
			return nil, err
		}
	}
	if c.background != nil {
		if err := o.SetBackground(c.background); err != nil {
			return nil, err
		}
	}
	return o, nil
}
