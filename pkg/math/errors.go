package math

import "errors"

// Errors returned by vector, matrix and isometry operations.
var (
	// ErrIndexOutOfRange is returned when a component, row or column index is outside [0, 2].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidSize is returned when a vector is built from a sequence whose length is not 3.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidArgument is returned for degenerate geometric input such as a zero-length axis.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonInvertible is returned when |det| is below NonInvertibleThreshold.
	ErrNonInvertible = errors.New("matrix is non-invertible")
)
