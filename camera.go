package canvas2d

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/canvas2d/surface"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera2D describes the view: the world point at the surface origin, the
// zoom factor and the rotation. Renderers apply it as
//
//	Scale(zoom) * Rotate(-rotation) * Translate(-position)
//
// so the camera looks from its position rather than moving the scene.
type Camera2D struct {
	zoom      float64
	transform *Transform

	scrollTween *scrollAnim
}

// NewCamera2D returns a camera at the origin with zoom 1.
func NewCamera2D() *Camera2D {
	return &Camera2D{zoom: 1, transform: NewTransform()}
}

// Zoom returns the zoom factor.
func (c *Camera2D) Zoom() float64 { return c.zoom }

// SetZoom assigns the zoom factor.
func (c *Camera2D) SetZoom(z float64) error {
	if err := checkFinite("zoom", z); err != nil {
		return err
	}
	c.zoom = z
	return nil
}

// Transform returns the camera transform.
func (c *Camera2D) Transform() *Transform { return c.transform }

// SetTransform replaces the camera transform.
func (c *Camera2D) SetTransform(t *Transform) error {
	if t == nil {
		return &TypeError{Field: "transform", Want: "Transform"}
	}
	c.transform = t
	return nil
}

// ViewMatrix returns the world-to-surface transform in logical units.
func (c *Camera2D) ViewMatrix() surface.Matrix {
	p := c.transform.position
	return surface.Identity.
		ScaleSelf(c.zoom, c.zoom).
		RotateSelf(-c.transform.rotation).
		TranslateSelf(-p.x, -p.y)
}

// WorldToScreen converts world coordinates to logical surface coordinates.
func (c *Camera2D) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.ViewMatrix().TransformPoint(wx, wy)
}

// ScreenToWorld converts logical surface coordinates to world coordinates.
func (c *Camera2D) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return c.ViewMatrix().Invert().TransformPoint(sx, sy)
}

// ScrollTo animates the camera position to (x, y) over duration seconds.
// The animation advances in Update.
func (c *Camera2D) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) error {
	if err := checkFinite("x", x); err != nil {
		return err
	}
	if err := checkFinite("y", y); err != nil {
		return err
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	p := c.transform.position
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(p.x), float32(x), duration, easeFn),
		tweenY: gween.New(float32(p.y), float32(y), duration, easeFn),
	}
	return nil
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera2D) Scrolling() bool { return c.scrollTween != nil }

// StopScroll abandons a ScrollTo animation where it is.
func (c *Camera2D) StopScroll() { c.scrollTween = nil }

// Update advances a running scroll animation by dt seconds.
func (c *Camera2D) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	p := c.transform.position
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		p.x = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		p.y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}
