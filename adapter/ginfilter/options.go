package ginfilter

import (
	"log/slog"

	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// WithTranslator sets the translator shared by every request.
func WithTranslator(t domain.Translator) Option {
	return func(c *config) {
		c.translator = t
	}
}

// WithLogger sets the logger used to report rejected queries. Defaults to
// [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Option configures the middleware through the functional options pattern.
type Option func(*config)
