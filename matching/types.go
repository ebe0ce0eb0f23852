package matching

// Reindex pairs an old cell index with its new index in the induced Morse
// complex's critical-cell ordering.
type Reindex struct {
	OldCell  int
	NewIndex int
}

// Matching is a partial involution on cells: mate(x) = x marks x critical
// (an ace); otherwise mate(mate(x)) = x and the pair occupies adjacent
// dimensions, with x a queen iff x < mate(x).
type Matching interface {
	// Mate returns the partner of x, or x itself if x is critical.
	Mate(x int) int

	// Priority returns a total order on cells used to sequence flow.
	Priority(x int) int

	// CriticalCells returns begin, where begin[d] is the index (in the new
	// Morse complex) of the first critical cell of dimension d, and
	// reindex, the critical cells in ascending NewIndex order.
	CriticalCells() (begin []int, reindex []Reindex)
}

// IsQueen reports whether x is the lower-indexed member of its pair. A
// critical cell is neither queen nor king.
func IsQueen(m Matching, x int) bool {
	mate := m.Mate(x)
	return mate != x && x < mate
}

// IsKing reports whether x is the higher-indexed member of its pair.
func IsKing(m Matching, x int) bool {
	mate := m.Mate(x)
	return mate != x && x > mate
}

// IsCritical reports whether x is an ace (matched to itself).
func IsCritical(m Matching, x int) bool {
	return m.Mate(x) == x
}

// Options configures matching construction.
//
// Truncate   – if true, cells with grade > MaxGrade are excluded.
// MaxGrade   – the truncation threshold, used only when Truncate is true.
// MatchDim   – caps GenericMatcher at this dimension; -1 means full
//              dimension. Ignored by CubicalMatcher.
// Verbose    – print progress to stdout. No semantic effect.
type Options struct {
	Truncate bool
	MaxGrade int
	MatchDim int
	Verbose  bool
}

// DefaultOptions returns the default matching configuration: untruncated,
// full dimension, silent.
func DefaultOptions() Options {
	return Options{MatchDim: -1}
}

// Option is a functional option for configuring matching construction.
type Option func(*Options)

// WithTruncate excludes cells with grade > maxGrade from matching.
func WithTruncate(maxGrade int) Option {
	return func(o *Options) {
		o.Truncate = true
		o.MaxGrade = maxGrade
	}
}

// WithMatchDim caps GenericMatcher's matching at dimension d.
func WithMatchDim(d int) Option {
	return func(o *Options) {
		o.MatchDim = d
	}
}

// WithVerbose enables progress output to stdout.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}
