package qsmongo

import (
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/translator"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// WithQueryDecoder sets the decoder that splits query strings into keys and
// values.
func WithQueryDecoder(q domain.QueryDecoder) Option {
	return translator.WithQueryDecoder(q)
}

// WithInferrer sets the inferrer that reads operator prefixes from values.
func WithInferrer(i domain.OperatorInferrer) Option {
	return translator.WithInferrer(i)
}

// WithMerger sets the merger that builds the sub-expression of each field.
func WithMerger(m domain.Merger) Option {
	return translator.WithMerger(m)
}

// WithDocumentFactory sets the function for creating [Document] instances.
func WithDocumentFactory(d domain.DocumentFactory) Option {
	return translator.WithDocumentFactory(d)
}

// WithDecoder sets the decoder used by [Translator.TranslateInto].
func WithDecoder(d domain.Decoder) Option {
	return translator.WithDecoder(d)
}

// WithIgnoredFields sets query keys that never become filter fields, such as
// pagination or sorting parameters.
func WithIgnoredFields(fields ...string) Option {
	return translator.WithIgnoredFields(fields...)
}
