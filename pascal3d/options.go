package pascal3d

import "go.uber.org/zap"

// Option configures Load and LoadFrom.
type Option func(*loadOptions)

type loadOptions struct {
	class     Class
	valSplit  float64
	canonical bool
	seed      *uint64
	logger    *zap.Logger
}

func defaultLoadOptions() *loadOptions {
	return &loadOptions{
		valSplit:  CanonicalValidationSplit,
		canonical: true,
		logger:    zap.NewNop(),
	}
}

// WithClass restricts loading to a single class. The name is not checked
// against Classes; a class missing from the container fails the load.
func WithClass(c Class) Option {
	return func(o *loadOptions) {
		o.class = c
	}
}

// WithValidationSplit sets the fraction of training samples held out for
// validation. It has no effect on a canonical split.
func WithValidationSplit(fraction float64) Option {
	return func(o *loadOptions) {
		o.valSplit = fraction
	}
}

// WithCanonicalSplit toggles the canonical split (fraction 0.2, seed 13).
// It is enabled by default.
func WithCanonicalSplit(canonical bool) Option {
	return func(o *loadOptions) {
		o.canonical = canonical
	}
}

// WithSeed makes a non-canonical split reproducible.
func WithSeed(seed uint64) Option {
	return func(o *loadOptions) {
		o.seed = &seed
	}
}

// WithLogger sets the logger used for load progress.
func WithLogger(l *zap.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
