package canvas2d

import (
	"log/slog"
	"math"
	"time"

	"github.com/phanxgames/canvas2d/surface"
)

// rendererHooks is implemented by each concrete renderer.
type rendererHooks interface {
	contextType() string
	initContext() error
	recalculateDevicePixelRatio() error
	render() error
}

// Frame describes one animation-loop tick.
type Frame struct {
	// Time is the host timestamp of the refresh.
	Time time.Duration
	// Delta is the time since the previous tick of the same loop, zero on
	// the first.
	Delta time.Duration
	// Index counts ticks of the current loop from zero.
	Index uint64
}

// FrameHooks are the optional callbacks of RequestAnimationFrame.
type FrameHooks struct {
	BeforeRender func(Frame)
	AfterRender  func(Frame)
	// OnError receives a render error. The loop has already stopped.
	OnError func(error)
}

// Renderer holds what every renderer shares: options, scene, camera and the
// animation loop. Its drawing steps come from the embedding renderer; a
// bare Renderer returns ErrNotImplemented for them.
type Renderer struct {
	hooks     rendererHooks
	options   *RendererOptions
	scene     *Scene
	camera    *Camera2D
	scheduler surface.FrameScheduler
	debug     bool

	contextInitialized bool

	frameHandle surface.FrameHandle
	hasFrame    bool
	loopGen     uint64
}

// Options returns the renderer options.
func (r *Renderer) Options() *RendererOptions { return r.options }

// Scene returns the scene drawn each frame.
func (r *Renderer) Scene() *Scene { return r.scene }

// SetScene swaps the scene.
func (r *Renderer) SetScene(s *Scene) error {
	if s == nil {
		return &TypeError{Field: "scene", Want: "Scene"}
	}
	r.scene = s
	return nil
}

// Camera returns the camera.
func (r *Renderer) Camera() *Camera2D { return r.camera }

// SetCamera swaps the camera.
func (r *Renderer) SetCamera(c *Camera2D) error {
	if c == nil {
		return &TypeError{Field: "camera", Want: "Camera2D"}
	}
	r.camera = c
	return nil
}

// Scheduler returns the frame scheduler, or nil.
func (r *Renderer) Scheduler() surface.FrameScheduler { return r.scheduler }

// SetScheduler replaces the frame scheduler. A running loop is cancelled.
func (r *Renderer) SetScheduler(s surface.FrameScheduler) {
	r.CancelAnimationFrame()
	r.scheduler = s
}

// ContextInitialized reports whether the drawing context is set up.
func (r *Renderer) ContextInitialized() bool { return r.contextInitialized }

// ContextType names the kind of drawing context, "2d" for Renderer2D.
func (r *Renderer) ContextType() string {
	if r.hooks == nil {
		return ""
	}
	return r.hooks.contextType()
}

// initialize runs the context setup hook exactly once.
func (r *Renderer) initialize() error {
	if r.contextInitialized {
		return nil
	}
	if r.hooks == nil {
		return ErrNotImplemented
	}
	if err := r.hooks.initContext(); err != nil {
		return err
	}
	r.contextInitialized = true
	Logger().Debug("renderer context initialized", slog.String("type", r.hooks.contextType()))
	return nil
}

// RecalculateDevicePixelRatio resizes the backing surface to the logical
// size times the device pixel ratio.
func (r *Renderer) RecalculateDevicePixelRatio() error {
	if r.hooks == nil {
		return ErrNotImplemented
	}
	return r.hooks.recalculateDevicePixelRatio()
}

// Render draws one frame.
func (r *Renderer) Render() error {
	if r.hooks == nil {
		return ErrNotImplemented
	}
	return r.hooks.render()
}

// RequestAnimationFrame starts a loop that, once per display refresh,
// calls BeforeRender, renders, calls AfterRender and schedules the next
// tick. A loop already running is cancelled first. A render error stops
// the loop and is passed to OnError.
func (r *Renderer) RequestAnimationFrame(hooks FrameHooks) error {
	if isNil(r.scheduler) {
		return &TypeError{Field: "scheduler", Want: "FrameScheduler"}
	}
	r.CancelAnimationFrame()
	r.loopGen++
	gen := r.loopGen

	var (
		index uint64
		last  time.Duration
	)
	var tick surface.FrameCallback
	tick = func(now time.Duration) {
		if r.loopGen != gen {
			return
		}
		r.hasFrame = false
		r.frameHandle = 0

		f := Frame{Time: now, Index: index}
		if index > 0 {
			f.Delta = now - last
		}
		last = now
		index++

		if hooks.BeforeRender != nil {
			hooks.BeforeRender(f)
		}
		if err := r.Render(); err != nil {
			r.loopGen++
			Logger().Debug("animation loop stopped", slog.Any("err", err))
			if hooks.OnError != nil {
				hooks.OnError(err)
			}
			return
		}
		if hooks.AfterRender != nil {
			hooks.AfterRender(f)
		}
		if r.loopGen != gen {
			return
		}
		r.frameHandle = r.scheduler.RequestFrame(tick)
		r.hasFrame = true
	}

	r.frameHandle = r.scheduler.RequestFrame(tick)
	r.hasFrame = true
	Logger().Debug("animation loop started")
	return nil
}

// CancelAnimationFrame stops the loop. It is safe to call at any time,
// including from a frame hook, and more than once.
func (r *Renderer) CancelAnimationFrame() {
	r.loopGen++
	if !r.hasFrame {
		return
	}
	if r.scheduler != nil {
		r.scheduler.CancelFrame(r.frameHandle)
	}
	r.frameHandle = 0
	r.hasFrame = false
	Logger().Debug("animation loop cancelled")
}

// FrameHandle returns the pending frame handle, if a tick is scheduled.
func (r *Renderer) FrameHandle() (surface.FrameHandle, bool) {
	return r.frameHandle, r.hasFrame
}

// Animating reports whether a loop tick is scheduled.
func (r *Renderer) Animating() bool { return r.hasFrame }

// Renderer2D renders a Scene through a Camera2D onto a 2D drawing context.
type Renderer2D struct {
	Renderer
	ctx   surface.Context2D
	stats FrameStats
}

// NewRenderer2D builds a renderer drawing onto ctx and initializes the
// context: the backing surface is sized to the logical size times the
// device pixel ratio and pre-scaled so drawing uses logical units.
func NewRenderer2D(ctx surface.Context2D, scene *Scene, camera *Camera2D, opts ...RendererOption) (*Renderer2D, error) {
	if isNil(ctx) {
		return nil, &TypeError{Field: "ctx", Want: "Context2D"}
	}
	if scene == nil {
		return nil, &TypeError{Field: "scene", Want: "Scene"}
	}
	if camera == nil {
		return nil, &TypeError{Field: "camera", Want: "Camera2D"}
	}
	var cfg rendererConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	options, err := cfg.buildOptions()
	if err != nil {
		return nil, err
	}

	r := &Renderer2D{ctx: ctx}
	r.hooks = r
	r.options = options
	r.scene = scene
	r.camera = camera
	r.scheduler = cfg.scheduler
	r.debug = cfg.debug
	if err := r.initialize(); err != nil {
		return nil, err
	}
	options.onResize = r.RecalculateDevicePixelRatio
	return r, nil
}

// Context2D returns the drawing context.
func (r *Renderer2D) Context2D() surface.Context2D { return r.ctx }

// LastFrameStats returns the statistics of the most recent Render.
func (r *Renderer2D) LastFrameStats() FrameStats { return r.stats }

func (r *Renderer2D) contextType() string { return ContextType2D }

func (r *Renderer2D) initContext() error {
	return r.recalculateDevicePixelRatio()
}

func (r *Renderer2D) recalculateDevicePixelRatio() error {
	dpr := r.options.devicePixelRatio
	w := int(math.Round(r.options.width * dpr))
	h := int(math.Round(r.options.height * dpr))
	if err := r.ctx.Resize(max(w, 1), max(h, 1)); err != nil {
		return err
	}
	r.ctx.SetTransform(surface.Identity)
	r.ctx.Scale(dpr, dpr)
	Logger().Debug("device pixel ratio applied",
		slog.Float64("dpr", dpr), slog.Int("width", w), slog.Int("height", h))
	return nil
}

// render clears the surface, fills the background, applies the camera and
// draws every visible child in scene order. The context state is restored
// even when a child fails; the first error stops the frame.
func (r *Renderer2D) render() error {
	start := time.Now()
	stats := FrameStats{}
	defer func() {
		stats.Duration = time.Since(start)
		r.stats = stats
		if r.debug {
			r.logFrameStats(stats)
		}
	}()

	ctx := r.ctx
	w, h := float64(ctx.Width()), float64(ctx.Height())
	ctx.ClearRect(0, 0, w, h)
	if err := ctx.SetFillStyle(style(r.options.background)); err != nil {
		return err
	}
	if err := ctx.FillRect(0, 0, w, h); err != nil {
		return err
	}

	ctx.Save()
	defer ctx.Restore()
	cam := r.camera
	ctx.Scale(cam.zoom, cam.zoom)
	ctx.Rotate(-cam.transform.rotation)
	ctx.Translate(-cam.transform.position.x, -cam.transform.position.y)

	return r.scene.each(func(child Drawable) error {
		if !child.Visible() {
			stats.Skipped++
			return nil
		}
		stats.Drawn++
		return child.Draw(r)
	})
}
