/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: membership.go
Description: Membership function shapes for the Akaylee Fuzzy engine. Implements
triangular and trapezoidal membership as a closed tagged variant with pure evaluation
and discretization onto a universe. Degenerate shoulders (coincident parameters) are
treated as vertical edges with full membership on the flat side.
*/

package fuzzy

// Shape identifies a membership function shape
type Shape int

const (
	// Triangular is a three-point shape rising from a to an apex at b and
	// falling to c
	Triangular Shape = iota

	// Trapezoidal is a four-point shape with a flat top between b and c
	Trapezoidal
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case Triangular:
		return "triangular"
	case Trapezoidal:
		return "trapezoidal"
	default:
		return "unknown"
	}
}

// MembershipFunction maps a universe point to a degree of membership in [0, 1].
// It is a pure value type: evaluation has no side effects and instances are
// immutable after construction.
type MembershipFunction struct {
	shape Shape
	a     float64
	b     float64
	c     float64
	d     float64
}

// NewTriangular creates a triangular membership function with feet at a and c
// and apex at b. Parameters must satisfy a <= b <= c. Coincident parameters
// (a == b or b == c) form a shoulder that evaluates to full membership at the
// flat side instead of dividing by zero.
func NewTriangular(a, b, c float64) (MembershipFunction, error) {
	if !(a <= b && b <= c) {
		return MembershipFunction{}, newConfigError("triangular parameters must satisfy a <= b <= c, got [%g %g %g]", a, b, c)
	}
	return MembershipFunction{shape: Triangular, a: a, b: b, c: b, d: c}, nil
}

// NewTrapezoidal creates a trapezoidal membership function rising from a to b,
// flat between b and c, and falling from c to d. Parameters must satisfy
// a <= b <= c <= d.
func NewTrapezoidal(a, b, c, d float64) (MembershipFunction, error) {
	if !(a <= b && b <= c && c <= d) {
		return MembershipFunction{}, newConfigError("trapezoidal parameters must satisfy a <= b <= c <= d, got [%g %g %g %g]", a, b, c, d)
	}
	return MembershipFunction{shape: Trapezoidal, a: a, b: b, c: c, d: d}, nil
}

// Shape returns the shape tag of the function
func (f MembershipFunction) Shape() Shape {
	return f.shape
}

// Params returns the defining parameters: [a b c] for triangular shapes and
// [a b c d] for trapezoidal ones
func (f MembershipFunction) Params() []float64 {
	if f.shape == Triangular {
		return []float64{f.a, f.b, f.d}
	}
	return []float64{f.a, f.b, f.c, f.d}
}

// Evaluate returns the degree of membership of x, always in [0, 1]
func (f MembershipFunction) Evaluate(x float64) float64 {
	// Both shapes reduce to a trapezoid; a triangle has b == c.
	switch {
	case x < f.a || x > f.d:
		return 0
	case x >= f.b && x <= f.c:
		return 1
	case x < f.b:
		if f.a == f.b {
			return 1
		}
		return clamp01((x - f.a) / (f.b - f.a))
	default:
		if f.c == f.d {
			return 1
		}
		return clamp01((f.d - x) / (f.d - f.c))
	}
}

// Discretize samples the membership function over every point of the universe,
// producing the piecewise curve the inference engine operates on
func (f MembershipFunction) Discretize(u *Universe) []float64 {
	curve := make([]float64, u.Len())
	for i := range curve {
		curve[i] = f.Evaluate(u.At(i))
	}
	return curve
}

// clamp01 limits a degree to [0, 1]
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
