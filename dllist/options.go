package dllist

import "github.com/sirkon/linear/internal/logging"

// Logger логирование событий списка.
type Logger = logging.ListLogger

// Option определение опции списка.
type Option func(c *config, _ optionRestriction)

type optionRestriction struct{}

type config struct {
	logger Logger
}

func (c *config) log() Logger {
	if c.logger == nil {
		return logging.Nop{}
	}

	return c.logger
}

// WithLogger задаёт логгер событий списка.
func WithLogger(logger Logger) Option {
	return func(c *config, _ optionRestriction) {
		c.logger = logger
	}
}
