package math

import (
	"fmt"
	"math"
)

// Isometry is a rigid transform y = Rotation*x + Translation.
//
// The zero value has a zero rotation, not the identity, and therefore
// cannot be inverted. Use IdentityIsometry or FromTranslation for an
// identity rotation. Rotation is not checked for orthonormality.
type Isometry struct {
	Rotation    Matrix3
	Translation Vector3
}

// NewIsometry pairs a translation with a rotation.
func NewIsometry(translation Vector3, rotation Matrix3) Isometry {
	return Isometry{Rotation: rotation, Translation: translation}
}

// IdentityIsometry returns the transform that maps every point to itself.
func IdentityIsometry() Isometry {
	return FromTranslation(ZeroVector())
}

// FromTranslation returns a pure translation by v.
func FromTranslation(v Vector3) Isometry {
	return Isometry{Rotation: IdentityMatrix(), Translation: v}
}

// RotateAround returns a rotation of radians around axis.
// axis does not need to be normalized but must have a finite, non-zero length.
func RotateAround(axis Vector3, radians float64) (Isometry, error) {
	// Scale by the largest component first so Norm neither overflows
	// nor underflows for very long or very short axes.
	m := math.Max(math.Abs(axis.X), math.Max(math.Abs(axis.Y), math.Abs(axis.Z)))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Isometry{}, fmt.Errorf("%w: rotation axis %v is zero or not finite", ErrInvalidArgument, axis)
	}
	u := axis.DivScalar(m)
	return Isometry{Rotation: rodrigues(u.DivScalar(u.Norm()), radians)}, nil
}

// FromEulerAngles returns Rx(roll) ∘ Ry(pitch) ∘ Rz(yaw), in that order.
// All angles are in radians.
func FromEulerAngles(roll, pitch, yaw float64) Isometry {
	rx := Isometry{Rotation: rodrigues(UnitX(), roll)}
	ry := Isometry{Rotation: rodrigues(UnitY(), pitch)}
	rz := Isometry{Rotation: rodrigues(UnitZ(), yaw)}
	return rx.Compose(ry).Compose(rz)
}

// rodrigues builds the rotation matrix for a unit axis u.
func rodrigues(u Vector3, radians float64) Matrix3 {
	c := math.Cos(radians)
	s := math.Sin(radians)
	t := 1 - c

	return NewMatrix3(
		c+u.X*u.X*t, u.X*u.Y*t-u.Z*s, u.X*u.Z*t+u.Y*s,
		u.Y*u.X*t+u.Z*s, c+u.Y*u.Y*t, u.Y*u.Z*t-u.X*s,
		u.Z*u.X*t-u.Y*s, u.Z*u.Y*t+u.X*s, c+u.Z*u.Z*t,
	)
}

// Transform applies the isometry to v.
func (iso Isometry) Transform(v Vector3) Vector3 {
	return iso.Rotation.MulVec(v).Add(iso.Translation)
}

// Inverse returns the isometry that undoes iso.
func (iso Isometry) Inverse() (Isometry, error) {
	inv, err := iso.Rotation.Inverse()
	if err != nil {
		return Isometry{}, fmt.Errorf("inverting isometry rotation: %w", err)
	}
	return Isometry{
		Rotation:    inv,
		Translation: inv.MulVec(iso.Translation).Neg(),
	}, nil
}

// Compose returns iso ∘ other: other is applied first, then iso.
func (iso Isometry) Compose(other Isometry) Isometry {
	return Isometry{
		Rotation:    iso.Rotation.Product(other.Rotation),
		Translation: iso.Rotation.MulVec(other.Translation).Add(iso.Translation),
	}
}

// ComposeAssign sets iso to iso ∘ other.
func (iso *Isometry) ComposeAssign(other Isometry) {
	*iso = iso.Compose(other)
}

// Equal compares rotation and translation with their own Equal methods.
func (iso Isometry) Equal(other Isometry) bool {
	return iso.Rotation.Equal(other.Rotation) && iso.Translation.Equal(other.Translation)
}

// ApproxEqual compares every component with an absolute tolerance.
func (iso Isometry) ApproxEqual(other Isometry, tol float64) bool {
	return iso.Rotation.ApproxEqual(other.Rotation, tol) &&
		iso.Translation.ApproxEqual(other.Translation, tol)
}

// String renders [T: <translation>, R:<rotation>] with 9 significant digits.
func (iso Isometry) String() string {
	return "[T: " + iso.Translation.format(isometryPrecision) +
		", R:" + iso.Rotation.format(isometryPrecision) + "]"
}
