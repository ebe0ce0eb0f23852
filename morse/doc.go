// Package morse builds the reduced (Morse) chain complex induced by an
// acyclic matching: a Complex whose cells are exactly the critical cells of
// a parent complex, with boundary maps derived via the flow operator that
// resolves queen/king cancellations in priority order.
//
// Complex implements complex.Complex, so a reduction can itself be fed back
// through matching.ComputeMatching — this is how package reduction drives
// iteration to a connection-matrix fixed point.
//
// flow projects a chain in the base complex onto the canonical form over
// critical cells plus un-cancelled kings, popping the highest-priority
// queen first (a max-heap) and replacing it with its king's base boundary
// until no queen remains. coflow is the dual: it pops the lowest-priority
// king first and walks coboundaries instead of boundaries.
package morse
