// Package tuple implements the 4-component tuple at the core of the
// geom packages. A tuple holds (X, Y, Z, W); the W component carries
// its classification: W=1 is a point (a position in space), W=0 is a
// vector (a direction with magnitude). Other W values are
// representable but have no geometric meaning; they arise from
// operations like adding two points, and the classification
// predicates are how callers detect them.
//
// Tuples are plain immutable values. Every operation returns a new
// Tuple and never mutates its operands, so tuples are freely copyable
// and safe for concurrent use.
package tuple

import (
	"errors"
	"fmt"
	"math"

	"github.com/geomkit/geom/epsilon"
)

// Tuple is a 4-component tuple of float64s.
type Tuple struct {
	X, Y, Z, W float64
}

// New returns the tuple (x, y, z, w). Most callers want
// Point, Vector or Color instead.
func New(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// Point returns the point (x, y, z), a tuple with W set to 1.
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector returns the vector (x, y, z), a tuple with W set to 0.
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

// IsPoint reports whether t is classified as a point (W within
// tolerance of 1).
func (t Tuple) IsPoint() bool {
	return epsilon.Equal(t.W, 1)
}

// IsVector reports whether t is classified as a vector (W within
// tolerance of 0).
func (t Tuple) IsVector() bool {
	return epsilon.Equal(t.W, 0)
}

// IsUnit reports whether t is a vector of magnitude 1, within
// tolerance.
func (t Tuple) IsUnit() bool {
	return t.IsVector() && epsilon.Equal(t.Magnitude(), 1)
}

// Add returns the component-wise sum of t and u.
//
// The W components add too, so point+vector is a point and
// vector+vector is a vector, while point+point yields W=2,
// a tuple that is neither.
func (t Tuple) Add(u Tuple) Tuple {
	return Tuple{t.X + u.X, t.Y + u.Y, t.Z + u.Z, t.W + u.W}
}

// Sub returns the component-wise difference of t and u.
//
// point−point is the vector from u to t; point−vector is a point;
// vector−point yields W=−1, a tuple that is neither.
func (t Tuple) Sub(u Tuple) Tuple {
	return Tuple{t.X - u.X, t.Y - u.Y, t.Z - u.Z, t.W - u.W}
}

// Neg returns t with every component negated, W included.
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Mul returns t with every component multiplied by s, W included.
func (t Tuple) Mul(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div returns t with every component divided by s. A zero s follows
// the usual floating point rules, producing infinities or NaNs
// rather than an error.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Equal reports whether every component of t is within tolerance of
// the corresponding component of u. It is reflexive and symmetric
// but, like any absolute-tolerance comparison, not transitive.
func (t Tuple) Equal(u Tuple) bool {
	return epsilon.Equal(t.X, u.X) &&
		epsilon.Equal(t.Y, u.Y) &&
		epsilon.Equal(t.Z, u.Z) &&
		epsilon.Equal(t.W, u.W)
}

// Magnitude returns the Euclidean norm of t over all four
// components. It is defined for any tuple, though it is chiefly
// meaningful for vectors, where W contributes nothing.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns the unit vector in the direction of t. The W
// component of the result is always exactly 0, whatever noise the
// input W carried.
//
// It returns a *DomainError if t is not a vector or if its magnitude
// is within tolerance of zero: a zero vector has no direction.
func (t Tuple) Normalize() (Tuple, error) {
	if !t.IsVector() {
		return Tuple{}, &DomainError{Op: "normalize", Err: ErrNotVector}
	}
	m := t.Magnitude()
	if epsilon.Equal(m, 0) {
		return Tuple{}, &DomainError{Op: "normalize", Err: ErrZeroVector}
	}
	return Tuple{t.X / m, t.Y / m, t.Z / m, 0}, nil
}

// Dot returns the dot product of t and u over all four components.
// For unit vectors it is the cosine of the angle between them:
// 1 when parallel, 0 when perpendicular, −1 when opposite.
//
// It returns a *DomainError if t is not a vector. Only the receiver
// is checked; u contributes its W to the product as-is.
func (t Tuple) Dot(u Tuple) (float64, error) {
	if !t.IsVector() {
		return 0, &DomainError{Op: "dot", Err: ErrNotVector}
	}
	return t.X*u.X + t.Y*u.Y + t.Z*u.Z + t.W*u.W, nil
}

// Cross returns the cross product of t and u, a vector perpendicular
// to both with magnitude equal to the area of the parallelogram they
// span. It is anticommutative: t.Cross(u) == u.Cross(t).Neg().
//
// It returns a *DomainError if either operand is not a vector.
func (t Tuple) Cross(u Tuple) (Tuple, error) {
	if !t.IsVector() || !u.IsVector() {
		return Tuple{}, &DomainError{Op: "cross", Err: ErrNotVector}
	}
	return Tuple{
		t.Y*u.Z - t.Z*u.Y,
		t.Z*u.X - t.X*u.Z,
		t.X*u.Y - t.Y*u.X,
		0,
	}, nil
}

// String renders t as point(x, y, z), vector(x, y, z) or
// tuple(x, y, z, w) according to its classification.
func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// ErrNotVector and ErrZeroVector are the causes a DomainError can
// wrap, distinguishable with errors.Is.
var (
	ErrNotVector  = errors.New("operand is not a vector")
	ErrZeroVector = errors.New("zero vector has no direction")
)

// DomainError reports a vector-algebra operation applied to an
// operand outside its domain, such as normalizing a point or a
// zero-magnitude vector.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return "tuple: " + e.Op + ": " + e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
