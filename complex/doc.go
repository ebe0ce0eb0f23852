// Package complex defines the Complex, GradedComplex and CubicalComplex
// contracts consumed by matching, morse and reduction, and ships two
// reference implementations — Abstract and Cubical — used to build and test
// concrete complexes without needing a production-grade topology engine.
//
// A Complex partitions its cells [0, Size()) by dimension in a dense,
// dimension-ordered range: every dimension's cells occupy one contiguous
// block, and blocks are ordered by increasing dimension. Boundary and
// Coboundary return Chains; Column and Row are equivalent callback-based
// visitors used by hot paths (flow/coflow) that want to avoid allocating a
// Chain per call.
//
// A GradedComplex layers a grading value: cell -> int on top of a Complex.
// The grading must satisfy the closure property — for every cell x and
// every y in Boundary(x), Value(y) <= Value(x) — which callers (the
// matchers) are responsible for checking; violating it is a logic error,
// not a recoverable condition.
package complex
