// Package reduction drives the Morse reduction to a connection-matrix
// fixed point: repeatedly compute a matching on the current graded
// complex and replace it with the induced Morse complex (package morse),
// stopping when a reduction round leaves the cell count unchanged.
//
// ConnectionMatrix returns the fixed point itself. ConnectionMatrixTower
// returns every intermediate complex in the sequence, the input it reduces
// a persistence algorithm would walk back down. Homology is the common
// case of reducing an ungraded complex all the way to its critical cells.
package reduction
