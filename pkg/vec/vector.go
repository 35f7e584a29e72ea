// Package vec provides 2D and 3D vector math for geometry code.
//
// Vec2 and Vec3 are plain value types; every operation returns a new value
// and never mutates its operands, so vectors are freely copyable and safe to
// share. The Vector interface covers the operations common to both variants
// and lets callers write dimension-agnostic code such as AngleBetween.
package vec

import "math"

// Epsilon is the tolerance used by componentwise equality.
const Epsilon = 1e-4

// Vector is the capability shared by the 2D and 3D variants.
//
// Binary operations require both operands to be the same variant and return
// ErrVariantMismatch otherwise. Equals never mixes variants either; it simply
// reports false. Equality is componentwise within Epsilon, not a comparison
// of magnitudes: two vectors can share a length while pointing in different
// directions.
type Vector interface {
	// Magnitude returns the Euclidean norm.
	Magnitude() float32

	// Normalize returns a unit vector of the same variant. The zero
	// vector is returned unchanged; it has no direction to preserve.
	Normalize() Vector

	// Dot returns the sum of componentwise products.
	Dot(other Vector) (float32, error)

	// Cross returns the cross product. Only the 3D variant defines one;
	// the 2D variant returns ErrNotApplicable.
	Cross(other Vector) (Vector, error)

	// Add returns the componentwise sum.
	Add(other Vector) (Vector, error)

	// Sub returns the componentwise difference.
	Sub(other Vector) (Vector, error)

	// Scale returns the vector multiplied by a scalar.
	Scale(s float32) Vector

	// Div returns the vector divided by a scalar, or ErrZeroScalar when
	// the divisor is zero. Components are never Inf or NaN.
	Div(s float32) (Vector, error)

	// Equals reports componentwise equality within Epsilon.
	Equals(other Vector) bool

	// String returns a human-readable form for diagnostics.
	String() string
}

var (
	_ Vector = Vec2{}
	_ Vector = Vec3{}
)

// Cross returns the cross product of two 3D vectors. It is the non-member
// form of Vec3.Cross for callers holding concrete values.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// AngleBetween returns the angle between a and b in radians.
//
// It returns ErrDegenerate when either vector has zero magnitude and
// ErrVariantMismatch when the operands are different variants. The cosine
// ratio is clamped to [-1, 1] before acos so floating-point overshoot cannot
// produce a domain error.
func AngleBetween(a, b Vector) (float32, error) {
	dot, err := a.Dot(b)
	if err != nil {
		return 0, err
	}

	magA, magB := a.Magnitude(), b.Magnitude()
	if magA < Epsilon || magB < Epsilon {
		return 0, ErrDegenerate
	}

	cos := dot / (magA * magB)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos))), nil
}

// Distance returns the distance between two points of the same variant.
func Distance(a, b Vector) (float32, error) {
	d, err := a.Sub(b)
	if err != nil {
		return 0, err
	}
	return d.Magnitude(), nil
}

// Lerp linearly interpolates between a and b. t should be in range [0, 1];
// values outside extrapolate.
func Lerp(a, b Vector, t float32) (Vector, error) {
	d, err := b.Sub(a)
	if err != nil {
		return nil, err
	}
	return a.Add(d.Scale(t))
}
