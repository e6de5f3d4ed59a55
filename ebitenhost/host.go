// Package ebitenhost presents a ggsurface.Canvas in an ebiten window and
// drives renderer frame callbacks from the ebiten game loop.
package ebitenhost

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/canvas2d"
	"github.com/phanxgames/canvas2d/ggsurface"
	"github.com/phanxgames/canvas2d/surface"
)

// fpsInterval is how often the FPS overlay is redrawn.
const fpsInterval = 0.5

// RunConfig controls the host window.
type RunConfig struct {
	Title   string
	ShowFPS bool
}

// Host is an ebiten.Game that implements surface.FrameScheduler and
// surface.Display. Pending frame callbacks run once per ebiten Update.
type Host struct {
	surface.FrameQueue

	width, height int
	canvas        *ggsurface.Canvas
	screen        *ebiten.Image
	pix           []byte
	start         time.Time
	started       bool

	showFPS  bool
	fps      *ebiten.Image
	fpsSince float64

	mu      sync.Mutex
	stopped bool
	err     error
}

// New creates a host for a window of the given logical size.
func New(width, height int) *Host {
	return &Host{width: width, height: height}
}

// SetCanvas sets the canvas blitted to the screen each Draw.
func (h *Host) SetCanvas(c *ggsurface.Canvas) { h.canvas = c }

// Canvas returns the presented canvas.
func (h *Host) Canvas() *ggsurface.Canvas { return h.canvas }

// DevicePixelRatio implements surface.Display.
func (h *Host) DevicePixelRatio() float64 {
	if m := ebiten.Monitor(); m != nil {
		if f := m.DeviceScaleFactor(); f > 0 {
			return f
		}
	}
	return 1
}

// Size implements surface.Display.
func (h *Host) Size() (float64, float64) {
	return float64(h.width), float64(h.height)
}

// Stop ends the game loop after the current tick. A nil err exits cleanly.
func (h *Host) Stop(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	h.err = err
	canvas2d.Logger().Debug("ebitenhost: stopping", slog.Any("err", err))
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	h.mu.Lock()
	stopped, err := h.stopped, h.err
	h.mu.Unlock()
	if stopped {
		if err != nil {
			return err
		}
		return ebiten.Termination
	}

	if !h.started {
		h.start = time.Now()
		h.started = true
	}
	h.FrameQueue.Run(time.Since(h.start))

	if h.showFPS {
		h.updateFPS(1 / float64(ebiten.TPS()))
	}
	return nil
}

func (h *Host) updateFPS(dt float64) {
	if h.fps == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0"
		h.fps = ebiten.NewImage(100, 32)
		h.fpsSince = fpsInterval
	}
	h.fpsSince += dt
	if h.fpsSince < fpsInterval {
		return
	}
	h.fpsSince = 0

	h.fps.Clear()
	h.fps.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.fps, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.canvas != nil {
		w, hgt := h.canvas.Width(), h.canvas.Height()
		if h.screen == nil || h.screen.Bounds().Dx() != w || h.screen.Bounds().Dy() != hgt {
			if h.screen != nil {
				h.screen.Deallocate()
			}
			h.screen = ebiten.NewImage(w, hgt)
			canvas2d.Logger().Debug("ebitenhost: screen image allocated",
				slog.Int("width", w), slog.Int("height", hgt))
		}
		h.pix = premultiply(h.pix, h.canvas.GG().ResizeTarget().Data())
		h.screen.WritePixels(h.pix)
		screen.DrawImage(h.screen, nil)
	}
	if h.fps != nil {
		screen.DrawImage(h.fps, nil)
	}
}

// Layout implements ebiten.Game. The screen matches the canvas in device
// pixels so one canvas pixel maps to one screen pixel.
func (h *Host) Layout(_, _ int) (int, int) {
	if h.canvas != nil {
		return h.canvas.Width(), h.canvas.Height()
	}
	return h.width, h.height
}

// RunGame opens the window and blocks until it is closed or Stop is called.
func (h *Host) RunGame(cfg RunConfig) error {
	h.showFPS = cfg.ShowFPS
	ebiten.SetWindowSize(h.width, h.height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(h)
}

// premultiply converts straight-alpha RGBA bytes into the premultiplied
// layout ebiten expects, reusing dst when it is large enough.
func premultiply(dst, src []byte) []byte {
	if cap(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		a := uint16(src[i+3])
		dst[i+0] = uint8((uint16(src[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint16(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint16(src[i+2])*a + 127) / 255)
		dst[i+3] = uint8(a)
	}
	return dst
}
