package canvas2d

// Transform is the position, rotation and scale of a drawable or camera.
// Each holder owns its Transform exclusively.
type Transform struct {
	position *Vector2
	rotation float64
	scale    *Vector2
}

// NewTransform returns a transform at the origin with no rotation and unit
// scale.
func NewTransform() *Transform {
	return &Transform{
		position: &Vector2{},
		scale:    &Vector2{x: 1, y: 1},
	}
}

// Position returns the position vector. Mutating it moves the holder.
func (t *Transform) Position() *Vector2 { return t.position }

// SetPosition replaces the position vector.
func (t *Transform) SetPosition(p *Vector2) error {
	if p == nil {
		return &TypeError{Field: "position", Want: "Vector2"}
	}
	t.position = p
	return nil
}

// Rotation returns the rotation in radians.
func (t *Transform) Rotation() float64 { return t.rotation }

// SetRotation assigns the rotation in radians.
func (t *Transform) SetRotation(r float64) error {
	if err := checkFinite("rotation", r); err != nil {
		return err
	}
	t.rotation = r
	return nil
}

// Scale returns the scale vector.
func (t *Transform) Scale() *Vector2 { return t.scale }

// SetScale replaces the scale vector.
func (t *Transform) SetScale(s *Vector2) error {
	if s == nil {
		return &TypeError{Field: "scale", Want: "Vector2"}
	}
	t.scale = s
	return nil
}

// Clone returns a deep copy.
func (t *Transform) Clone() *Transform {
	return &Transform{
		position: t.position.Clone(),
		rotation: t.rotation,
		scale:    t.scale.Clone(),
	}
}
