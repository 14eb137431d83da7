package math

import (
	"fmt"
	"math"
)

// NonInvertibleThreshold is the smallest |det| accepted by Inverse.
const NonInvertibleThreshold = 1e-6

// Matrix3 is a 3x3 matrix stored as three row vectors.
//
// Mul and Div style operations between two matrices are elementwise
// (ElementwiseMul, ElementwiseDiv). Use Product for matrix multiplication
// and MulVec for the matrix-vector product.
type Matrix3 struct {
	rows [3]Vector3
}

// NewMatrix3 builds a matrix from nine values in row-major order.
func NewMatrix3(a1, a2, a3, b1, b2, b3, c1, c2, c3 float64) Matrix3 {
	return Matrix3{rows: [3]Vector3{
		{a1, a2, a3},
		{b1, b2, b3},
		{c1, c2, c3},
	}}
}

// Matrix3FromRows builds a matrix from its rows.
func Matrix3FromRows(r0, r1, r2 Vector3) Matrix3 {
	return Matrix3{rows: [3]Vector3{r0, r1, r2}}
}

// IdentityMatrix returns the 3x3 identity.
func IdentityMatrix() Matrix3 {
	return NewMatrix3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// OnesMatrix returns a matrix with every entry set to 1.
func OnesMatrix() Matrix3 {
	return NewMatrix3(
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	)
}

// ZeroMatrix returns the all-zero matrix.
func ZeroMatrix() Matrix3 { return Matrix3{} }

// Row returns a copy of row i.
func (m Matrix3) Row(i int) (Vector3, error) {
	if err := checkIndex("row", i); err != nil {
		return Vector3{}, err
	}
	return m.rows[i], nil
}

// RowRef returns a pointer to row i inside m.
func (m *Matrix3) RowRef(i int) (*Vector3, error) {
	if err := checkIndex("row", i); err != nil {
		return nil, err
	}
	return &m.rows[i], nil
}

// SetRow replaces row i.
func (m *Matrix3) SetRow(i int, row Vector3) error {
	r, err := m.RowRef(i)
	if err != nil {
		return err
	}
	*r = row
	return nil
}

// Col returns column i.
func (m Matrix3) Col(i int) (Vector3, error) {
	if err := checkIndex("column", i); err != nil {
		return Vector3{}, err
	}
	return m.col(i), nil
}

// At returns the entry at (row, col).
func (m Matrix3) At(row, col int) (float64, error) {
	r, err := m.Row(row)
	if err != nil {
		return 0, err
	}
	return r.At(col)
}

func checkIndex(what string, i int) error {
	if i < 0 || i > 2 {
		return fmt.Errorf("%w: matrix %s %d", ErrIndexOutOfRange, what, i)
	}
	return nil
}

// col assumes i is in range.
func (m Matrix3) col(i int) Vector3 {
	switch i {
	case 0:
		return Vector3{m.rows[0].X, m.rows[1].X, m.rows[2].X}
	case 1:
		return Vector3{m.rows[0].Y, m.rows[1].Y, m.rows[2].Y}
	default:
		return Vector3{m.rows[0].Z, m.rows[1].Z, m.rows[2].Z}
	}
}

// rowwise applies f to each pair of corresponding rows.
func (m Matrix3) rowwise(other Matrix3, f func(a, b Vector3) Vector3) Matrix3 {
	return Matrix3{rows: [3]Vector3{
		f(m.rows[0], other.rows[0]),
		f(m.rows[1], other.rows[1]),
		f(m.rows[2], other.rows[2]),
	}}
}

// Add returns m + other.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	return m.rowwise(other, Vector3.Add)
}

// Sub returns m - other.
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	return m.rowwise(other, Vector3.Sub)
}

// ElementwiseMul returns the Hadamard product of m and other.
func (m Matrix3) ElementwiseMul(other Matrix3) Matrix3 {
	return m.rowwise(other, Vector3.Mul)
}

// ElementwiseDiv divides m by other entry by entry.
func (m Matrix3) ElementwiseDiv(other Matrix3) Matrix3 {
	return m.rowwise(other, Vector3.Div)
}

// Scale multiplies every entry by s.
func (m Matrix3) Scale(s float64) Matrix3 {
	return Matrix3{rows: [3]Vector3{
		m.rows[0].Scale(s),
		m.rows[1].Scale(s),
		m.rows[2].Scale(s),
	}}
}

// DivScalar divides every entry by s.
func (m Matrix3) DivScalar(s float64) Matrix3 {
	return Matrix3{rows: [3]Vector3{
		m.rows[0].DivScalar(s),
		m.rows[1].DivScalar(s),
		m.rows[2].DivScalar(s),
	}}
}

// ScaleMatrix returns s * m.
func ScaleMatrix(s float64, m Matrix3) Matrix3 {
	return m.Scale(s)
}

// In-place forms of the operations above.

func (m *Matrix3) AddAssign(other Matrix3) { *m = m.Add(other) }

func (m *Matrix3) SubAssign(other Matrix3) { *m = m.Sub(other) }

func (m *Matrix3) ElementwiseMulAssign(other Matrix3) { *m = m.ElementwiseMul(other) }

func (m *Matrix3) ElementwiseDivAssign(other Matrix3) { *m = m.ElementwiseDiv(other) }

func (m *Matrix3) ScaleAssign(s float64) { *m = m.Scale(s) }

func (m *Matrix3) DivScalarAssign(s float64) { *m = m.DivScalar(s) }

// Product returns the matrix product m * other.
func (m Matrix3) Product(other Matrix3) Matrix3 {
	c0, c1, c2 := other.col(0), other.col(1), other.col(2)
	var result Matrix3
	for i, r := range m.rows {
		result.rows[i] = Vector3{r.Dot(c0), r.Dot(c1), r.Dot(c2)}
	}
	return result
}

// MulVec returns the matrix-vector product m * v.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{m.rows[0].Dot(v), m.rows[1].Dot(v), m.rows[2].Dot(v)}
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3FromRows(m.col(0), m.col(1), m.col(2))
}

// Det returns the determinant, expanded along the first row.
func (m Matrix3) Det() float64 {
	r0, r1, r2 := m.rows[0], m.rows[1], m.rows[2]
	return r0.X*(r1.Y*r2.Z-r1.Z*r2.Y) -
		r0.Y*(r1.X*r2.Z-r1.Z*r2.X) +
		r0.Z*(r1.X*r2.Y-r1.Y*r2.X)
}

// Inverse returns the inverse computed from the adjugate.
// It fails with ErrNonInvertible when |det| < NonInvertibleThreshold.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Det()
	if math.Abs(det) < NonInvertibleThreshold {
		return Matrix3{}, fmt.Errorf("%w: |det| = %g", ErrNonInvertible, math.Abs(det))
	}

	a, b, c := m.rows[0].X, m.rows[0].Y, m.rows[0].Z
	d, e, f := m.rows[1].X, m.rows[1].Y, m.rows[1].Z
	g, h, k := m.rows[2].X, m.rows[2].Y, m.rows[2].Z

	// Transposed cofactor matrix.
	adj := NewMatrix3(
		e*k-f*h, c*h-b*k, b*f-c*e,
		f*g-d*k, a*k-c*g, c*d-a*f,
		d*h-e*g, b*g-a*h, a*e-b*d,
	)
	return adj.DivScalar(det), nil
}

// Equal compares rows with Vector3.Equal.
func (m Matrix3) Equal(other Matrix3) bool {
	return m.rows[0].Equal(other.rows[0]) &&
		m.rows[1].Equal(other.rows[1]) &&
		m.rows[2].Equal(other.rows[2])
}

// ApproxEqual reports whether every entry differs by at most tol.
func (m Matrix3) ApproxEqual(other Matrix3, tol float64) bool {
	return m.rows[0].ApproxEqual(other.rows[0], tol) &&
		m.rows[1].ApproxEqual(other.rows[1], tol) &&
		m.rows[2].ApproxEqual(other.rows[2], tol)
}

// String renders the matrix as [[a, b, c], [d, e, f], [g, h, i]].
func (m Matrix3) String() string {
	return m.format(defaultPrecision)
}

func (m Matrix3) format(prec int) string {
	s := "["
	for i, r := range m.rows {
		if i > 0 {
			s += ", "
		}
		s += "[" + formatFloat(r.X, prec) +
			", " + formatFloat(r.Y, prec) +
			", " + formatFloat(r.Z, prec) + "]"
	}
	return s + "]"
}
