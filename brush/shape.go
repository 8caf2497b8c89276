package brush

// Shape is the base outline of a generated brush.
type Shape int

const (
	// Circle measures distance with the Euclidean norm.
	Circle Shape = iota
	// Square measures distance with the Chebyshev (max) norm.
	Square
	// Diamond measures distance with the Manhattan (sum) norm.
	Diamond
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Diamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined shapes.
func (s Shape) Valid() bool {
	return s >= Circle && s <= Diamond
}

// ParseShape returns the shape with the given name.
func ParseShape(name string) (Shape, bool) {
	for s := Circle; s <= Diamond; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return Circle, false
}
