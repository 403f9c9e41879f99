package lpdict

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxIterations bounds the number of pivots of a solve, both phases included.
const DefaultMaxIterations = 10000

// Option configures a solve.
type Option func(*config)

type config struct {
	maxIterations int
	logger        logrus.FieldLogger
}

// WithMaxIterations caps the number of pivots. 0 removes the cap.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxIterations = n
	}
}

// WithLogger sets the logger receiving the pivot trace.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	c := &config{
		maxIterations: DefaultMaxIterations,
		logger:        quiet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
