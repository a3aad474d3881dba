package quadgo

type options struct {
	resolution  float64
	pad         float64
	concurrency int
	logger      *Logger
}

// Option configures Build behavior.
type Option func(*options)

// WithResolution sets the halfwidth threshold below which tree nodes stop
// subdividing and bucket points directly. The default is 2.5.
//
// Smaller values mean deeper trees with tighter pruning; larger values mean
// shallower trees with more per-leaf filtering. The default works well for
// datasets whose interesting query radii are in the single digits.
func WithResolution(resolution float64) Option {
	return func(o *options) {
		o.resolution = resolution
	}
}

// WithPad sets the padding added to the root bounding square so boundary
// points stay inside it under floating-point rounding. The default is 0.001.
func WithPad(pad float64) Option {
	return func(o *options) {
		o.pad = pad
	}
}

// WithConcurrency bounds how many centroids a proximity search queries in
// parallel. Values <= 1 disable parallelism. The default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger for build, search and solve diagnostics.
//
// If nil is passed, NoopLogger() is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
