// SPDX-License-Identifier: MIT

package validate

import "go.uber.org/zap"

// Option configures Validate and IsConsistent.
type Option func(*Options)

// Options holds the validator configuration. The zero value is not used
// directly; gatherOptions starts from the defaults.
type Options struct {
	logger       *zap.Logger
	spanningTree bool
}

// WithLogger sets the logger IsConsistent reports diagnostics on.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithoutSpanningTreeCheck disables CheckSpanningTree.
func WithoutSpanningTreeCheck() Option {
	return func(o *Options) { o.spanningTree = false }
}

// WithSpanningTreeCheck sets CheckSpanningTree explicitly.
func WithSpanningTreeCheck(on bool) Option {
	return func(o *Options) { o.spanningTree = on }
}

func gatherOptions(opts []Option) Options {
	o := Options{logger: zap.NewNop(), spanningTree: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
