package vector

import "github.com/sirkon/linear/internal/logging"

// Logger логирование событий массива.
type Logger = logging.VectorLogger

// Option определение опции массива.
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

// WithLogger задаёт логгер событий массива, например переносов буфера
// при росте.
func WithLogger(logger Logger) Option {
	return func(c *config, _ optionRestriction) {
		c.logger = logger
	}
}
