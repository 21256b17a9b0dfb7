package primego

// DefaultSegmentSize is the chunk length of a single sieve pass. It
// bounds peak memory regardless of how far the search has to go.
const DefaultSegmentSize = 1_000_000

type options struct {
	segmentSize      uint64
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Finder behavior.
type Option func(*options)

// WithSegmentSize configures the chunk length of a single sieve pass.
//
// Results are independent of this value; it only trades the number of
// passes against peak memory. Values below 1 fall back to the default.
func WithSegmentSize(size uint64) Option {
	return func(o *options) {
		if size < 1 {
			size = DefaultSegmentSize
		}
		o.segmentSize = size
	}
}

// WithParallelism configures how many segments Count may sieve
// concurrently. Rank lookups are unaffected: their scan is
// order-dependent and always sequential. Values below 2 disable fan-out.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithLogger configures structured logging. Pass nil to disable.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
