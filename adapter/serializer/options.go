package serializer

import "github.com/vinicius-lino-figueiredo/qsmongo/domain"

// WithDocumentFactory sets the function used to copy documents before
// encoding. The documents it creates must encode their keys in order.
func WithDocumentFactory(d domain.DocumentFactory) Option {
	return func(s *Serializer) {
		s.documentFactory = d
	}
}

// Option configures serializer behavior through the functional options
// pattern.
type Option func(*Serializer)
