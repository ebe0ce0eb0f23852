package complex

import "errors"

// Sentinel errors for package complex.
var (
	// ErrIndexOutOfBounds indicates a cell index outside [0, Size()) was
	// passed to a query.
	ErrIndexOutOfBounds = errors.New("complex: cell index out of bounds")

	// ErrNotCubical indicates a CubicalComplex was required but the given
	// Complex does not implement the cubical capability bundle.
	ErrNotCubical = errors.New("complex: complex is not cubical")

	// ErrBadDimension indicates NewCubicalBuilder was given no axes, or an
	// axis with fewer than one grid point.
	ErrBadDimension = errors.New("complex: dimension out of range")

	// ErrNonDenseCells indicates a builder was asked to add a cell of a
	// dimension that would break the dense, dimension-ordered partition
	// (cells of a given dimension must all be added contiguously,
	// dimensions must be added in non-decreasing order, and no dimension
	// below the new cell's may be left empty).
	ErrNonDenseCells = errors.New("complex: cells must be added in non-decreasing, dense dimension order")

	// ErrUnknownBoundaryCell indicates a boundary reference named a cell
	// index that has not yet been added to the builder.
	ErrUnknownBoundaryCell = errors.New("complex: boundary references an unknown cell")
)
