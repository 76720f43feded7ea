package translator

import "github.com/vinicius-lino-figueiredo/qsmongo/domain"

// WithQueryDecoder sets the decoder that splits query strings into params.
func WithQueryDecoder(q domain.QueryDecoder) Option {
	return func(t *Translator) {
		t.queryDecoder = q
	}
}

// WithInferrer sets the operator inferrer applied to every value.
func WithInferrer(i domain.OperatorInferrer) Option {
	return func(t *Translator) {
		t.inferrer = i
	}
}

// WithMerger sets the merger that builds each field sub-expression.
func WithMerger(m domain.Merger) Option {
	return func(t *Translator) {
		t.merger = m
	}
}

// WithDocumentFactory sets the function for creating [domain.Document]
// instances. It is also given to the default merger.
func WithDocumentFactory(d domain.DocumentFactory) Option {
	return func(t *Translator) {
		t.documentFactory = d
	}
}

// WithDecoder sets the decoder used by [Translator.TranslateInto].
func WithDecoder(d domain.Decoder) Option {
	return func(t *Translator) {
		t.decoder = d
	}
}

// WithIgnoredFields sets query keys that never become filter fields, such as
// pagination or sorting parameters. Can be called more than once.
func WithIgnoredFields(fields ...string) Option {
	return func(t *Translator) {
		for _, f := range fields {
			t.ignored[f] = struct{}{}
		}
	}
}

// Option configures translator behavior through the functional options
// pattern.
type Option func(*Translator)
