// Package data contains the default [domain.Document] implementation, an
// insertion-ordered document.
package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// E is a single key-value pair, used to build a [D] in a given order.
type E struct {
	Key   string
	Value any
}

// D implements domain.Document keeping keys in insertion order. Setting an
// existing key replaces its value without moving it.
type D struct {
	keys   []string
	values map[string]any
}

// NewD returns a document holding the given elements, in order.
func NewD(elems ...E) *D {
	d := &D{
		keys:   make([]string, 0, len(elems)),
		values: make(map[string]any, len(elems)),
	}
	for _, e := range elems {
		d.Set(e.Key, e.Value)
	}
	return d
}

// NewDocument returns a new instance of [domain.Document]. A nil input returns
// an empty document, a [domain.Document] is copied in its own order and maps
// are copied with sorted keys, as they carry no order.
func NewDocument(in any) (domain.Document, error) {
	switch t := in.(type) {
	case nil:
		return NewD(), nil
	case domain.Document:
		d := &D{
			keys:   make([]string, 0, t.Len()),
			values: make(map[string]any, t.Len()),
		}
		for k, v := range t.Iter() {
			d.Set(k, v)
		}
		return d, nil
	case map[string]any:
		return fromMap(t), nil
	case map[string]string:
		return fromMap(t), nil
	case map[string][]string:
		return fromMap(t), nil
	default:
		return nil, fmt.Errorf("expected map or document, got %T", in)
	}
}

func fromMap[T any](m map[string]T) *D {
	d := &D{
		keys:   make([]string, 0, len(m)),
		values: make(map[string]any, len(m)),
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		d.Set(k, m[k])
	}
	return d
}

// Get implements domain.Document.
func (d *D) Get(key string) any {
	return d.values[key]
}

// Set implements domain.Document.
func (d *D) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Unset implements domain.Document.
func (d *D) Unset(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	if i := slices.Index(d.keys, key); i >= 0 {
		d.keys = slices.Delete(d.keys, i, i+1)
	}
}

// D implements domain.Document.
func (d *D) D(key string) domain.Document {
	if doc, ok := d.values[key].(domain.Document); ok {
		return doc
	}
	return nil
}

// Iter implements domain.Document.
func (d *D) Iter() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Keys implements domain.Document.
func (d *D) Keys() iter.Seq[string] {
	return slices.Values(d.keys)
}

// Values implements domain.Document.
func (d *D) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, k := range d.keys {
			if !yield(d.values[k]) {
				return
			}
		}
	}
}

// Has implements domain.Document.
func (d *D) Has(key string) bool {
	_, has := d.values[key]
	return has
}

// Len implements domain.Document.
func (d *D) Len() int {
	return len(d.keys)
}

// String implements [fmt.Stringer] returning the document as JSON. Invalid
// UTF-8 in keys or values is replaced with U+FFFD, so two different documents
// may print the same.
func (d *D) String() string {
	b, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%%!(%s)", err)
	}
	return string(b)
}

// MarshalJSON implements json.Marshaler, writing keys in document order.
// Like [json.Marshal], it is lossy for strings that are not valid UTF-8.
func (d *D) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for n, k := range d.keys {
		if n > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
