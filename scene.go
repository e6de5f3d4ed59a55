package canvas2d

// Scene is an ordered collection of drawables. Children are kept sorted by
// the z-index the scene recorded for them, lowest first; equal z-indexes
// keep their relative order. Objects are referenced, not owned, and may
// outlive their removal.
type Scene struct {
	children []Drawable
	zIndex   map[string]int
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{zIndex: map[string]int{}}
}

// Add appends children and records each one's current ZIndex. A child
// already in the scene is left where it is. Nothing is added if any child
// is nil.
func (s *Scene) Add(children ...Drawable) error {
	for _, c := range children {
		if isNil(c) {
			return &TypeError{Field: "child", Want: "Object2D"}
		}
	}
	for _, c := range children {
		if _, ok := s.zIndex[c.UUID()]; ok {
			continue
		}
		s.children = append(s.children, c)
		s.zIndex[c.UUID()] = c.ZIndex()
	}
	s.sortChildren()
	return nil
}

// Remove drops children from the scene. Children not present are ignored.
func (s *Scene) Remove(children ...Drawable) {
	for _, c := range children {
		if isNil(c) {
			continue
		}
		id := c.UUID()
		for i, existing := range s.children {
			if existing.UUID() == id {
				s.children = append(s.children[:i], s.children[i+1:]...)
				delete(s.zIndex, id)
				break
			}
		}
	}
	s.sortChildren()
}

// SetZIndex moves children that are in the scene to zIndex. Children not
// present are ignored and gain no entry.
func (s *Scene) SetZIndex(zIndex int, children ...Drawable) {
	for _, c := range children {
		if isNil(c) {
			continue
		}
		if _, ok := s.zIndex[c.UUID()]; ok {
			s.zIndex[c.UUID()] = zIndex
		}
	}
	s.sortChildren()
}

// ZIndexOf returns the z-index recorded for child.
func (s *Scene) ZIndexOf(child Drawable) (int, bool) {
	if isNil(child) {
		return 0, false
	}
	z, ok := s.zIndex[child.UUID()]
	return z, ok
}

// Contains reports whether child is in the scene.
func (s *Scene) Contains(child Drawable) bool {
	_, ok := s.ZIndexOf(child)
	return ok
}

// Children returns the children in draw order. The slice is a copy.
func (s *Scene) Children() []Drawable {
	out := make([]Drawable, len(s.children))
	copy(out, s.children)
	return out
}

// Len returns the number of children.
func (s *Scene) Len() int { return len(s.children) }

// Clear removes every child.
func (s *Scene) Clear() {
	s.children = nil
	clear(s.zIndex)
}

// each calls fn for every child in draw order, stopping at the first error.
func (s *Scene) each(fn func(Drawable) error) error {
	for _, c := range s.children {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

// sortChildren orders children by recorded z-index with a stable
// insertion sort.
func (s *Scene) sortChildren() {
	for i := 1; i < len(s.children); i++ {
		key := s.children[i]
		kz := s.zIndex[key.UUID()]
		j := i - 1
		for j >= 0 && s.zIndex[s.children[j].UUID()] > kz {
			s.children[j+1] = s.children[j]
			j--
		}
		s.children[j+1] = key
	}
}
