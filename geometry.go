package canvas2d

import "github.com/phanxgames/canvas2d/surface"

// Geometry draws one kind of shape. It holds only its own shape
// parameters; the transform and material arrive at draw time.
type Geometry interface {
	DrawContext2D(ctx surface.Context2D, t *Transform, m Material) error
	// CheckMaterialConflicts rejects materials the geometry cannot draw
	// with. Mesh calls it whenever its geometry or material changes.
	CheckMaterialConflicts(m Material) error
}

// BaseGeometry supplies the default CheckMaterialConflicts. Embed it in
// custom geometries.
type BaseGeometry struct{}

// DrawContext2D returns ErrNotImplemented. Embedders override it.
func (BaseGeometry) DrawContext2D(surface.Context2D, *Transform, Material) error {
	return ErrNotImplemented
}

// CheckMaterialConflicts accepts every material.
func (BaseGeometry) CheckMaterialConflicts(Material) error { return nil }

// checkDrawArgs validates the common draw arguments.
func checkDrawArgs(ctx surface.Context2D, t *Transform, m Material) error {
	if isNil(ctx) {
		return &TypeError{Field: "ctx", Want: "Context2D"}
	}
	if t == nil {
		return &TypeError{Field: "transform", Want: "Transform"}
	}
	if isNil(m) {
		return &TypeError{Field: "material", Want: "Material"}
	}
	return nil
}

// paintPath fills then strokes the current path, each only when the
// material has the matching style.
func paintPath(ctx surface.Context2D, m Material) error {
	if fills(m) {
		if err := ctx.Fill(); err != nil {
			return err
		}
	}
	if strokes(m) {
		if err := ctx.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
