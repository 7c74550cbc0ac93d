package priority

import (
	"github.com/felix-zaslavskiy/PriorityMatrix/monitoring"
)

const defaultDegree = 16

// options defines the configuration shared by a matrix and its buckets.
type options struct {
	degree int // btree degree for the key index and every bucket

	logger monitoring.Logger
	stats  monitoring.Stats
}

// Option is a function that configures a matrix.
type Option func(*options)

// WithDegree sets the btree degree used for the key index and the buckets.
// Values below 2 keep the default.
func WithDegree(degree int) Option {
	return func(o *options) {
		if degree >= 2 {
			o.degree = degree
		}
	}
}

// WithLogger sets the logger that receives bucket lifecycle events.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStats sets the collector for operation counts and occupancy.
func WithStats(s monitoring.Stats) Option {
	return func(o *options) {
		if s != nil {
			o.stats = s
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		degree: defaultDegree,
		logger: monitoring.NopLogger(),
		stats:  monitoring.NopStats(),
	}
}
