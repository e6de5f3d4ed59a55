package canvas2d

import "github.com/phanxgames/canvas2d/surface"

// Mesh is an Object2D that draws one Geometry with one Material.
type Mesh struct {
	Object2D
	geometry Geometry
	material Material
}

// NewMesh pairs g with m. Both are required and must be compatible.
func NewMesh(g Geometry, m Material) (*Mesh, error) {
	if isNil(g) {
		return nil, &TypeError{Field: "geometry", Want: "Geometry"}
	}
	if isNil(m) {
		return nil, &TypeError{Field: "material", Want: "Material"}
	}
	if err := g.CheckMaterialConflicts(m); err != nil {
		return nil, err
	}
	mesh := &Mesh{geometry: g, material: m}
	mesh.init(ZIndexMesh)
	return mesh, nil
}

// Geometry returns the shape.
func (m *Mesh) Geometry() Geometry { return m.geometry }

// SetGeometry replaces the shape after checking it against the material.
// On error the mesh is unchanged.
func (m *Mesh) SetGeometry(g Geometry) error {
	if isNil(g) {
		return &TypeError{Field: "geometry", Want: "Geometry"}
	}
	if err := g.CheckMaterialConflicts(m.material); err != nil {
		return err
	}
	m.geometry = g
	return nil
}

// Material returns the paint.
func (m *Mesh) Material() Material { return m.material }

// SetMaterial replaces the paint after checking it against the geometry.
// On error the mesh is unchanged.
func (m *Mesh) SetMaterial(mat Material) error {
	if isNil(mat) {
		return &TypeError{Field: "material", Want: "Material"}
	}
	if err := m.geometry.CheckMaterialConflicts(mat); err != nil {
		return err
	}
	m.material = mat
	return nil
}

// Draw dispatches on the target's context type.
func (m *Mesh) Draw(r RenderTarget) error {
	return dispatchDraw(r, m.DrawContext2D)
}

// DrawContext2D applies the material, then draws the geometry with the
// mesh transform.
func (m *Mesh) DrawContext2D(ctx surface.Context2D) error {
	if err := m.material.ApplyToContext2D(ctx); err != nil {
		return err
	}
	return m.geometry.DrawContext2D(ctx, m.transform, m.material)
}
