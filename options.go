package lqueue

import (
	"github.com/mgnsk/lqueue/list"
	"go.uber.org/zap"
)

// Option is a queue configuration option.
type Option interface {
	apply(*queueOptions)
}

type queueOptions struct {
	logger *zap.Logger
	source list.Source
}

func newDefaultQueueOptions() queueOptions {
	return queueOptions{
		logger: zap.NewNop(),
		source: nil,
	}
}

// WithLogger option configures the queue with a logger.
//
// The zero value configures a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return funcOption(func(opts *queueOptions) {
		if logger == nil {
			logger = zap.NewNop()
		}
		opts.logger = logger
	})
}

// WithSource option configures the random source used by Shuffle.
//
// The zero value configures the math/rand/v2 top-level source.
func WithSource(source list.Source) Option {
	return funcOption(func(opts *queueOptions) {
		opts.source = source
	})
}

type funcOption func(*queueOptions)

func (o funcOption) apply(opts *queueOptions) {
	o(opts)
}
