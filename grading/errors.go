package grading

import "errors"

// ErrNotCubical is returned when ConstructGrading is given a complex that
// does not carry the cubical capability bundle (TopStar is a cubical-only
// operation).
var ErrNotCubical = errors.New("grading: complex is not cubical")
