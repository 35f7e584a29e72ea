package vec

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 constructs a Vec3 from components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Magnitude returns the Euclidean norm.
func (v Vec3) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vec3{}
	}
	return Vec3{v.X / m, v.Y / m, v.Z / m}
}

// Dot returns the dot product, or ErrVariantMismatch if other is not a Vec3.
func (v Vec3) Dot(other Vector) (float32, error) {
	o, ok := other.(Vec3)
	if !ok {
		return 0, ErrVariantMismatch
	}
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z, nil
}

// Cross returns the cross product v x other.
func (v Vec3) Cross(other Vector) (Vector, error) {
	o, ok := other.(Vec3)
	if !ok {
		return nil, ErrVariantMismatch
	}
	return Cross(v, o), nil
}

// Add returns v + other.
func (v Vec3) Add(other Vector) (Vector, error) {
	o, ok := other.(Vec3)
	if !ok {
		return nil, ErrVariantMismatch
	}
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}, nil
}

// Sub returns v - other.
func (v Vec3) Sub(other Vector) (Vector, error) {
	o, ok := other.(Vec3)
	if !ok {
		return nil, ErrVariantMismatch
	}
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}, nil
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vector {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s, or ErrZeroScalar when s is zero.
func (v Vec3) Div(s float32) (Vector, error) {
	if s == 0 {
		return nil, ErrZeroScalar
	}
	return Vec3{v.X / s, v.Y / s, v.Z / s}, nil
}

// Equals reports whether all three components match within Epsilon. A
// non-Vec3 operand is never equal.
func (v Vec3) Equals(other Vector) bool {
	o, ok := other.(Vec3)
	if !ok {
		return false
	}
	return abs(v.X-o.X) <= Epsilon && abs(v.Y-o.Y) <= Epsilon && abs(v.Z-o.Z) <= Epsilon
}

// String returns the vector formatted for diagnostics.
func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", v.X, v.Y, v.Z)
}

// XY returns the XY components as Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}
