// Package chain implements Chain, a finite set of cell indices over the
// field with two elements (GF(2)), with symmetric difference as addition.
//
// A Chain is the unit of linear algebra used throughout matching, morse and
// reduction: boundaries, coboundaries, and the flow/coflow accumulators are
// all Chains. There is no ordering on a Chain's elements; Cells returns a
// deterministic sorted snapshot purely for printing and testing.
package chain
