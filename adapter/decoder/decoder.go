// Package decoder contains the default [domain.Decoder] implementation, used to
// bind filter documents into user-defined types.
package decoder

import (
	"fmt"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// TagName is the struct tag read when decoding into structs.
const TagName = "qsmongo"

// Decoder implements domain.Decoder.
type Decoder struct {
	tagName string
}

// NewDecoder returns a new implementation of domain.Decoder.
func NewDecoder(options ...Option) domain.Decoder {
	d := &Decoder{tagName: TagName}
	for _, option := range options {
		option(d)
	}
	return d
}

// Decode implements domain.Decoder. Documents found in source, at any depth,
// are converted to map[string]any before decoding.
func (d *Decoder) Decode(source any, target any) error {
	if target == nil {
		return domain.ErrTargetNil
	}

	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr {
		return domain.ErrNonPointer
	}
	if value.IsNil() {
		return domain.ErrTargetNil
	}

	source = d.adjustDoc(source)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: d.tagName,
		Result:  target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(source); err != nil {
		errDec := domain.ErrBind{Source: source, Target: target}
		return fmt.Errorf("%w: %w", errDec, err)
	}
	return nil
}

func (d *Decoder) adjustDoc(value any) any {
	switch t := value.(type) {
	case domain.Document:
		doc := make(map[string]any, t.Len())
		for k, v := range t.Iter() {
			doc[k] = d.adjustDoc(v)
		}
		return doc
	case []any:
		lst := make([]any, len(t))
		for n, v := range t {
			lst[n] = d.adjustDoc(v)
		}
		return lst
	default:
		return value
	}
}
