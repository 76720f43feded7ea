package merger

import "github.com/vinicius-lino-figueiredo/qsmongo/domain"

// WithDocumentFactory sets the document factory used to build operator
// documents.
func WithDocumentFactory(d domain.DocumentFactory) Option {
	return func(m *Merger) {
		m.documentFactory = d
	}
}

// WithRejectMixed makes [Merger.Merge] return [domain.ErrMixedValues] for
// fields that receive both plain values and values with an operator prefix,
// instead of keeping only the last plain value.
func WithRejectMixed(r bool) Option {
	return func(m *Merger) {
		m.rejectMixed = r
	}
}

// Option configures merger behavior through the functional options pattern.
type Option func(*Merger)
