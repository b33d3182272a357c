package cdlist

// Options represents the arena configuration passed to NewList.
//
// The values take effect only for the NewList call that materializes the
// arena, i.e. the first list attached to the pool (or the first after the
// arena has been released). Later calls share the existing arena and their
// Options are ignored.
type Options struct {
	// InitialCapacity is the number of slots the arena starts with.
	InitialCapacity uint32

	// GrowthMultiplier scales the capacity when the free chain is exhausted.
	// New capacity = floor(capacity*GrowthMultiplier) + GrowthAdditive.
	GrowthMultiplier float64

	// GrowthAdditive is the fixed increment added to the scaled capacity on
	// growth.
	GrowthAdditive uint32
}

// DefaultOptions is the arena configuration used when NewList is called
// without option functions.
var DefaultOptions = Options{
	InitialCapacity:  64,
	GrowthMultiplier: 2.0,
	GrowthAdditive:   0,
}

type poolOptions struct {
	logger  *Logger
	metrics MetricsCollector
}

// PoolOption configures a Pool at construction time.
type PoolOption func(*poolOptions)

// WithLogger configures structured logging for arena lifecycle events
// (materialize, grow, release). Pass nil to disable logging.
func WithLogger(logger *Logger) PoolOption {
	return func(o *poolOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for list operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) PoolOption {
	return func(o *poolOptions) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

func applyPoolOptions(optFns []PoolOption) poolOptions {
	o := poolOptions{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
