// Package ginfilter provides a gin middleware that translates the request query
// string into a filter document, ready to be used by list and search handlers.
package ginfilter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/translator"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// ContextKey is the key the filter document is stored under in [gin.Context].
const ContextKey = "qsmongo.filter"

type config struct {
	translator domain.Translator
	logger     *slog.Logger
}

// Middleware returns a handler that translates c.Request.URL.RawQuery and
// stores the resulting document under [ContextKey]. Queries that cannot be
// translated are answered with 400 and the chain is aborted.
func Middleware(options ...Option) gin.HandlerFunc {
	cfg := config{}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.translator == nil {
		cfg.translator = translator.NewTranslator()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return func(c *gin.Context) {
		raw := c.Request.URL.RawQuery
		doc, err := cfg.translator.Translate(raw)
		if err != nil {
			status := statusFor(err)
			cfg.logger.Debug("rejected filter query",
				"query", raw,
				"status", status,
				"error", err,
			)
			c.AbortWithStatusJSON(status, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.Set(ContextKey, doc)
		c.Next()
	}
}

// FromContext returns the filter document stored by [Middleware], if any.
func FromContext(c *gin.Context) (domain.Document, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil, false
	}
	doc, ok := v.(domain.Document)
	return doc, ok
}

func statusFor(err error) int {
	var errDecode domain.ErrDecode
	var errMixed domain.ErrMixedValues
	if errors.As(err, &errDecode) || errors.As(err, &errMixed) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
