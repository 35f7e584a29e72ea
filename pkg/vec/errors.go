package vec

import "errors"

// Operation errors. Every condition is detectable from the operands alone
// and recoverable by the caller.
var (
	// ErrNotApplicable is returned by Cross on the 2D variant, which has
	// no cross product.
	ErrNotApplicable = errors.New("vec: cross product not applicable to 2D vectors")

	// ErrZeroScalar is returned by Div when the divisor is zero.
	ErrZeroScalar = errors.New("vec: division by zero scalar")

	// ErrVariantMismatch is returned by binary operations whose operands
	// are different variants (2D vs 3D).
	ErrVariantMismatch = errors.New("vec: operands are different vector variants")

	// ErrDegenerate is returned by AngleBetween when an operand with zero
	// magnitude makes the angle undefined.
	ErrDegenerate = errors.New("vec: zero-magnitude vector makes result undefined")
)
