// Package math provides 3D vectors, 3x3 matrices and rigid transforms
// (isometries) for frame and pose computations.
//
// All types are plain values. Methods with pointer receivers, and the
// reference accessors (Ref, RowRef), write into the receiver's storage;
// sharing one instance between goroutines that mutate it is a data race
// the caller must guard against.
package math

import (
	"fmt"
	"math"
	"strconv"
)

// Epsilon is the absolute tolerance used by Equal.
const Epsilon = 0x1p-52

// Vector3 is a 3D vector of float64 components.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Vector3FromSlice builds a vector from exactly three values.
func Vector3FromSlice(s []float64) (Vector3, error) {
	if len(s) != 3 {
		return Vector3{}, fmt.Errorf("%w: vector needs 3 elements, got %d", ErrInvalidSize, len(s))
	}
	return Vector3{s[0], s[1], s[2]}, nil
}

// ZeroVector returns (0, 0, 0).
func ZeroVector() Vector3 { return Vector3{} }

// UnitX returns (1, 0, 0).
func UnitX() Vector3 { return Vector3{1, 0, 0} }

// UnitY returns (0, 1, 0).
func UnitY() Vector3 { return Vector3{0, 1, 0} }

// UnitZ returns (0, 0, 1).
func UnitZ() Vector3 { return Vector3{0, 0, 1} }

// At returns the component at index i (0=X, 1=Y, 2=Z).
func (v Vector3) At(i int) (float64, error) {
	p, err := v.Ref(i)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

// Ref returns a pointer to the component at index i.
func (v *Vector3) Ref(i int) (*float64, error) {
	switch i {
	case 0:
		return &v.X, nil
	case 1:
		return &v.Y, nil
	case 2:
		return &v.Z, nil
	}
	return nil, fmt.Errorf("%w: vector index %d", ErrIndexOutOfRange, i)
}

// Set assigns the component at index i.
func (v *Vector3) Set(i int, value float64) error {
	p, err := v.Ref(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the componentwise product.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div returns the componentwise quotient.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar returns v / s.
func (v Vector3) DivScalar(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// ScaleVector returns s * v.
func ScaleVector(s float64, v Vector3) Vector3 {
	return v.Scale(s)
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// AddAssign sets v to v + other. The other *Assign methods follow the same pattern.
func (v *Vector3) AddAssign(other Vector3) { *v = v.Add(other) }

func (v *Vector3) SubAssign(other Vector3) { *v = v.Sub(other) }

func (v *Vector3) MulAssign(other Vector3) { *v = v.Mul(other) }

func (v *Vector3) DivAssign(other Vector3) { *v = v.Div(other) }

func (v *Vector3) ScaleAssign(s float64) { *v = v.Scale(s) }

func (v *Vector3) DivScalarAssign(s float64) { *v = v.DivScalar(s) }

// Dot returns the dot product.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Norm returns the Euclidean length.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Equal reports whether every component differs by at most Epsilon.
// The tolerance is absolute, so large-magnitude vectors rarely compare
// equal after arithmetic; use ApproxEqual with an explicit tolerance there.
func (v Vector3) Equal(other Vector3) bool {
	return v.ApproxEqual(other, Epsilon)
}

// ApproxEqual reports whether every component differs by at most tol.
func (v Vector3) ApproxEqual(other Vector3, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol &&
		math.Abs(v.Y-other.Y) <= tol &&
		math.Abs(v.Z-other.Z) <= tol
}

// String renders the vector as (x: <x>, y: <y>, z: <z>).
func (v Vector3) String() string {
	return v.format(defaultPrecision)
}

func (v Vector3) format(prec int) string {
	return "(x: " + formatFloat(v.X, prec) +
		", y: " + formatFloat(v.Y, prec) +
		", z: " + formatFloat(v.Z, prec) + ")"
}

// Significant digits for String output.
const (
	defaultPrecision  = 6
	isometryPrecision = 9
)

func formatFloat(f float64, prec int) string {
	return strconv.FormatFloat(f, 'g', prec, 64)
}
