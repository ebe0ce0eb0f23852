package reduction

import "errors"

// ErrNilComplex is returned when a nil base complex is supplied.
var ErrNilComplex = errors.New("reduction: nil complex")
