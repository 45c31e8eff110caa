package search

import "log/slog"

// Option configures a TreeSearch
type Option func(*options)

type options struct {
	baseCost float64
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithBaseCost sets the path cost of the root node
func WithBaseCost(cost float64) Option {
	return func(o *options) {
		o.baseCost = cost
	}
}

// WithLogger sets the logger used for run tracing
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
