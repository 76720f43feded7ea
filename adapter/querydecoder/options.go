package querydecoder

// WithKeepBlankValues sets whether empty values, as in "a=" or "a", are kept.
// Keys left with no values are omitted. Defaults to true.
func WithKeepBlankValues(k bool) Option {
	return func(q *QueryDecoder) {
		q.keepBlankValues = k
	}
}

// WithLenientEscapes makes the decoder copy malformed percent-escapes
// literally instead of failing with [domain.ErrDecode].
func WithLenientEscapes(l bool) Option {
	return func(q *QueryDecoder) {
		q.lenientEscapes = l
	}
}

// WithKeyOperators sets whether operators written right after the key, as in
// "age>=18", are moved to the value. When disabled, only the first '='
// separates key and value, and "age>=18" has the key "age>". Defaults to
// true.
func WithKeyOperators(k bool) Option {
	return func(q *QueryDecoder) {
		q.keyOperators = k
	}
}

// Option configures behavior through the functional options pattern.
type Option func(*QueryDecoder)
