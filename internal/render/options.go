package render

import (
	"go.uber.org/zap"

	"github.com/spacemeshos/colorbits/config"
)

type option struct {
	logger *zap.Logger
	format string
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{
		logger: zap.NewNop(),
		format: config.DefaultFormat,
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type OptionFunc func(*option)

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) {
		o.logger = logger
	}
}

// WithFormat selects one of config.Formats.
func WithFormat(format string) OptionFunc {
	return func(o *option) {
		o.format = format
	}
}
