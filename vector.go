package canvas2d

import "math"

// Vector2 is a mutable 2D point or direction. Both components are always
// finite: every mutator validates its operands first and leaves the vector
// untouched when it returns an error.
//
// The zero value is the origin.
type Vector2 struct {
	x, y float64
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float64) (*Vector2, error) {
	v := &Vector2{}
	if err := v.Set(x, y); err != nil {
		return nil, err
	}
	return v, nil
}

// MustVector2 is like NewVector2 but panics on a non-finite component.
func MustVector2(x, y float64) *Vector2 {
	v, err := NewVector2(x, y)
	if err != nil {
		panic("canvas2d: " + err.Error())
	}
	return v
}

// X returns the x component.
func (v *Vector2) X() float64 { return v.x }

// Y returns the y component.
func (v *Vector2) Y() float64 { return v.y }

// SetX assigns the x component.
func (v *Vector2) SetX(x float64) error {
	if err := checkFinite("x", x); err != nil {
		return err
	}
	v.x = x
	return nil
}

// SetY assigns the y component.
func (v *Vector2) SetY(y float64) error {
	if err := checkFinite("y", y); err != nil {
		return err
	}
	v.y = y
	return nil
}

// Clone returns an independent copy.
func (v *Vector2) Clone() *Vector2 {
	return &Vector2{x: v.x, y: v.y}
}

// Set assigns both components.
func (v *Vector2) Set(x, y float64) error {
	if err := checkFinite("x", x); err != nil {
		return err
	}
	if err := checkFinite("y", y); err != nil {
		return err
	}
	v.x, v.y = x, y
	return nil
}

// Translate offsets the vector by (dx, dy).
func (v *Vector2) Translate(dx, dy float64) error {
	return v.Set(v.x+dx, v.y+dy)
}

// Copy assigns the components of o.
func (v *Vector2) Copy(o *Vector2) error {
	if o == nil {
		return &TypeError{Field: "v", Want: "Vector2"}
	}
	v.x, v.y = o.x, o.y
	return nil
}

// Add adds o component-wise.
func (v *Vector2) Add(o *Vector2) error {
	if o == nil {
		return &TypeError{Field: "v", Want: "Vector2"}
	}
	return v.Set(v.x+o.x, v.y+o.y)
}

// Subtract subtracts o component-wise.
func (v *Vector2) Subtract(o *Vector2) error {
	if o == nil {
		return &TypeError{Field: "v", Want: "Vector2"}
	}
	return v.Set(v.x-o.x, v.y-o.y)
}

// MultiplyScalar scales both components by s.
func (v *Vector2) MultiplyScalar(s float64) error {
	if err := checkFinite("scalar", s); err != nil {
		return err
	}
	return v.Set(v.x*s, v.y*s)
}

// DivideScalar divides both components by s. Dividing by zero returns
// ErrZeroLength.
func (v *Vector2) DivideScalar(s float64) error {
	if err := checkFinite("scalar", s); err != nil {
		return err
	}
	if s == 0 {
		return ErrZeroLength
	}
	return v.Set(v.x/s, v.y/s)
}

// Normalize scales the vector to unit length. The zero vector returns
// ErrZeroLength.
func (v *Vector2) Normalize() error {
	l := v.Length()
	if l == 0 {
		return ErrZeroLength
	}
	return v.Set(v.x/l, v.y/l)
}

// RotateAround rotates the vector by angle radians about (px, py).
func (v *Vector2) RotateAround(px, py, angle float64) error {
	if err := checkFinite("px", px); err != nil {
		return err
	}
	if err := checkFinite("py", py); err != nil {
		return err
	}
	if err := checkFinite("angle", angle); err != nil {
		return err
	}
	sin, cos := math.Sincos(angle)
	dx, dy := v.x-px, v.y-py
	return v.Set(dx*cos-dy*sin+px, dx*sin+dy*cos+py)
}

// Dot returns the dot product with o.
func (v *Vector2) Dot(o *Vector2) (float64, error) {
	if o == nil {
		return 0, &TypeError{Field: "v", Want: "Vector2"}
	}
	return v.x*o.x + v.y*o.y, nil
}

// VectorTo returns a new vector pointing from v to o.
func (v *Vector2) VectorTo(o *Vector2) (*Vector2, error) {
	if o == nil {
		return nil, &TypeError{Field: "v", Want: "Vector2"}
	}
	return &Vector2{x: o.x - v.x, y: o.y - v.y}, nil
}

// Length returns the Euclidean length.
func (v *Vector2) Length() float64 {
	return math.Hypot(v.x, v.y)
}

// LengthSquared returns the squared length.
func (v *Vector2) LengthSquared() float64 {
	return v.x*v.x + v.y*v.y
}

// IsEqual reports whether o has exactly the same components.
func (v *Vector2) IsEqual(o *Vector2) bool {
	return o != nil && v.x == o.x && v.y == o.y
}
