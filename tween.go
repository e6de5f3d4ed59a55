package canvas2d

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values of one target simultaneously. Create
// one with TweenPosition, TweenScale, TweenRotation, TweenColor or
// TweenZoom and call Update(dt) each frame, typically from a BeforeRender
// hook. Values are written through the target's validating setters.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(vals [4]float64) error
	Done   bool
}

func newTweenGroup(from, to []float64, duration float32, fn ease.TweenFunc, apply func([4]float64) error) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{count: len(from), apply: apply}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// Update advances all tweens by dt seconds and applies the values. An
// error from the target stops the group.
func (g *TweenGroup) Update(dt float32) error {
	if g.Done {
		return nil
	}
	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if err := g.apply(vals); err != nil {
		g.Done = true
		return err
	}
	return nil
}

// TweenPosition animates t's position to (toX, toY).
func TweenPosition(t *Transform, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	p := t.position
	return newTweenGroup(
		[]float64{p.x, p.y}, []float64{toX, toY}, duration, fn,
		func(v [4]float64) error { return t.position.Set(v[0], v[1]) })
}

// TweenScale animates t's scale to (toSX, toSY).
func TweenScale(t *Transform, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	s := t.scale
	return newTweenGroup(
		[]float64{s.x, s.y}, []float64{toSX, toSY}, duration, fn,
		func(v [4]float64) error { return t.scale.Set(v[0], v[1]) })
}

// TweenRotation animates t's rotation to the given radians.
func TweenRotation(t *Transform, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(
		[]float64{t.rotation}, []float64{to}, duration, fn,
		func(v [4]float64) error { return t.SetRotation(v[0]) })
}

// TweenColor animates all four components of c toward to. Easing curves
// that overshoot are clamped to the valid component ranges.
func TweenColor(c *RgbaColor, to *RgbaColor, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(
		[]float64{c.r, c.g, c.b, c.a}, []float64{to.r, to.g, to.b, to.a}, duration, fn,
		func(v [4]float64) error {
			return c.Set(clamp(v[0], 0, 255), clamp(v[1], 0, 255), clamp(v[2], 0, 255), clamp(v[3], 0, 1))
		})
}

// TweenZoom animates a camera's zoom.
func TweenZoom(cam *Camera2D, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(
		[]float64{cam.zoom}, []float64{to}, duration, fn,
		func(v [4]float64) error { return cam.SetZoom(v[0]) })
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
