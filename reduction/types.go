package reduction

import "github.com/katalvlaran/discretemorse/matching"

// Options configures each round of matching performed while reducing to a
// fixed point. It mirrors matching.Options rather than embedding it, so
// this package's functional options (WithTruncate, WithMatchDim,
// WithVerbose) stay independent of matching's.
type Options struct {
	Truncate bool
	MaxGrade int
	MatchDim int
	Verbose  bool
}

// DefaultOptions returns the default reduction configuration: untruncated,
// full dimension, silent.
func DefaultOptions() Options {
	return Options{MatchDim: -1}
}

// Option is a functional option for configuring a reduction run.
type Option func(*Options)

// WithTruncate excludes cells with grade > maxGrade from every round's
// matching.
func WithTruncate(maxGrade int) Option {
	return func(o *Options) {
		o.Truncate = true
		o.MaxGrade = maxGrade
	}
}

// WithMatchDim caps each round's matching at dimension d (ignored on the
// cubical path, as in package matching).
func WithMatchDim(d int) Option {
	return func(o *Options) {
		o.MatchDim = d
	}
}

// WithVerbose enables progress output to stdout during matching.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// matchingOptions translates o into the equivalent matching.Option list.
func (o Options) matchingOptions() []matching.Option {
	var opts []matching.Option
	if o.Truncate {
		opts = append(opts, matching.WithTruncate(o.MaxGrade))
	}
	if o.MatchDim >= 0 {
		opts = append(opts, matching.WithMatchDim(o.MatchDim))
	}
	if o.Verbose {
		opts = append(opts, matching.WithVerbose())
	}
	return opts
}
