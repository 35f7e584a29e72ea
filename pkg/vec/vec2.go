package vec

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// NewVec2 constructs a Vec2 from components.
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Magnitude returns the Euclidean norm.
func (v Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// Dot returns the dot product, or ErrVariantMismatch if other is not a Vec2.
func (v Vec2) Dot(other Vector) (float32, error) {
	o, ok := other.(Vec2)
	if !ok {
		return 0, ErrVariantMismatch
	}
	return v.X*o.X + v.Y*o.Y, nil
}

// Cross always returns ErrNotApplicable: the cross product has no 2D analog.
func (v Vec2) Cross(other Vector) (Vector, error) {
	return nil, ErrNotApplicable
}

// Add returns v + other.
func (v Vec2) Add(other Vector) (Vector, error) {
	o, ok := other.(Vec2)
	if !ok {
		return nil, ErrVariantMismatch
	}
	return Vec2{v.X + o.X, v.Y + o.Y}, nil
}

// Sub returns v - other.
func (v Vec2) Sub(other Vector) (Vector, error) {
	o, ok := other.(Vec2)
	if !ok {
		return nil, ErrVariantMismatch
	}
	return Vec2{v.X - o.X, v.Y - o.Y}, nil
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vector {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v / s, or ErrZeroScalar when s is zero.
func (v Vec2) Div(s float32) (Vector, error) {
	if s == 0 {
		return nil, ErrZeroScalar
	}
	return Vec2{v.X / s, v.Y / s}, nil
}

// Equals reports whether both components match within Epsilon. A non-Vec2
// operand is never equal.
func (v Vec2) Equals(other Vector) bool {
	o, ok := other.(Vec2)
	if !ok {
		return false
	}
	return abs(v.X-o.X) <= Epsilon && abs(v.Y-o.Y) <= Epsilon
}

// String returns the vector formatted for diagnostics.
func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
