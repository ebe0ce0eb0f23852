package morse

import "errors"

var (
	// ErrNilComplex is returned when a nil base Complex is supplied.
	ErrNilComplex = errors.New("morse: nil complex")

	// ErrNilMatching is returned when a nil Matching is supplied.
	ErrNilMatching = errors.New("morse: nil matching")

	// ErrIndexOutOfBounds is returned when a cell index falls outside the
	// range of the complex it is being queried against.
	ErrIndexOutOfBounds = errors.New("morse: index out of bounds")
)
