package gfaview

import (
	"golang.org/x/time/rate"

	"github.com/hupe1980/gfaview/task"
)

type options struct {
	logger      *Logger
	poolOptions []task.PoolOption
}

// Option configures the query service constructor.
type Option func(*options)

// WithLogger configures the logger. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithWorkers configures the size of the shared query pool.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.poolOptions = append(o.poolOptions, task.WithWorkers(n))
	}
}

// WithMaxInflight bounds queued plus running background queries.
func WithMaxInflight(n int64) Option {
	return func(o *options) {
		o.poolOptions = append(o.poolOptions, task.WithMaxInflight(n))
	}
}

// WithRateLimit throttles background query submission.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.poolOptions = append(o.poolOptions, task.WithRateLimit(limit, burst))
	}
}
