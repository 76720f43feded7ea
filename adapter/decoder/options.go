package decoder

// WithTagName sets the struct tag read when decoding into structs. Defaults
// to [TagName].
func WithTagName(t string) Option {
	return func(d *Decoder) {
		d.tagName = t
	}
}

// Option configures decoder behavior through the functional options pattern.
type Option func(*Decoder)
