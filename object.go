package canvas2d

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/phanxgames/canvas2d/surface"
)

// Default z-indexes recorded by a Scene when a child is added.
const (
	ZIndexObject2D     = 0
	ZIndexMesh         = 1000
	ZIndexPointLight2D = 2000
)

// ContextType2D is the context type of Renderer2D.
const ContextType2D = "2d"

// RenderTarget is what a drawable draws into.
type RenderTarget interface {
	ContextType() string
	Context2D() surface.Context2D
}

// Drawable is a scene entity. Object2D implements it and is meant to be
// embedded; an embedder that draws overrides both Draw and DrawContext2D.
type Drawable interface {
	UUID() string
	Transform() *Transform
	Visible() bool
	ZIndex() int
	Draw(r RenderTarget) error
	DrawContext2D(ctx surface.Context2D) error
}

// Object2D is the base scene entity: identity, transform, visibility, a
// z-index and free-form user data.
type Object2D struct {
	uuid      string
	transform *Transform
	visible   bool
	zIndex    int
	userData  map[string]any
}

// NewObject2D returns a visible object with a fresh identity at the origin.
func NewObject2D() *Object2D {
	o := &Object2D{}
	o.init(ZIndexObject2D)
	return o
}

func (o *Object2D) init(zIndex int) {
	o.uuid = uuid.New().String()
	o.transform = NewTransform()
	o.visible = true
	o.zIndex = zIndex
	o.userData = map[string]any{}
}

// UUID returns the identity assigned at construction.
func (o *Object2D) UUID() string { return o.uuid }

// Transform returns the object's transform.
func (o *Object2D) Transform() *Transform { return o.transform }

// SetTransform replaces the transform.
func (o *Object2D) SetTransform(t *Transform) error {
	if t == nil {
		return &TypeError{Field: "transform", Want: "Transform"}
	}
	o.transform = t
	return nil
}

// Visible reports whether renderers draw the object.
func (o *Object2D) Visible() bool { return o.visible }

// SetVisible shows or hides the object.
func (o *Object2D) SetVisible(v bool) { o.visible = v }

// ZIndex returns the z-index a Scene records when the object is added.
// Reordering an object already in a scene goes through Scene.SetZIndex.
func (o *Object2D) ZIndex() int { return o.zIndex }

// SetZIndex changes the z-index used by later Scene.Add calls.
func (o *Object2D) SetZIndex(z int) { o.zIndex = z }

// UserData returns the user data map. It is never nil.
func (o *Object2D) UserData() map[string]any { return o.userData }

// SetUserData replaces the user data map. nil installs an empty map.
func (o *Object2D) SetUserData(d map[string]any) {
	if d == nil {
		d = map[string]any{}
	}
	o.userData = d
}

// Draw dispatches on the target's context type.
func (o *Object2D) Draw(r RenderTarget) error {
	return dispatchDraw(r, o.DrawContext2D)
}

// DrawContext2D draws nothing.
func (o *Object2D) DrawContext2D(surface.Context2D) error { return nil }

// dispatchDraw routes a draw call to the routine for r's context type.
func dispatchDraw(r RenderTarget, draw2D func(surface.Context2D) error) error {
	if isNil(r) {
		return &TypeError{Field: "renderer", Want: "Renderer"}
	}
	switch ct := r.ContextType(); ct {
	case ContextType2D:
		return draw2D(r.Context2D())
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedContext, ct)
	}
}
