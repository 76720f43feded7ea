// Package serializer contains the default [domain.Serializer] implementation,
// which writes filter documents as JSON keeping their field order.
package serializer

import (
	"context"
	"encoding/json"

	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/data"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// Serializer implements domain.Serializer.
type Serializer struct {
	documentFactory domain.DocumentFactory
}

// NewSerializer returns a new implementation of domain.Serializer.
func NewSerializer(options ...Option) domain.Serializer {
	s := &Serializer{
		documentFactory: data.NewDocument,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Serialize implements domain.Serializer. Documents are copied with the
// document factory before encoding, so any [domain.Document] implementation is
// written in its iteration order.
func (s *Serializer) Serialize(ctx context.Context, obj any) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	cp, err := s.copyAny(obj)
	if err != nil {
		return nil, err
	}
	return json.Marshal(cp)
}

func (s *Serializer) copyDoc(doc domain.Document) (domain.Document, error) {
	res, err := s.documentFactory(nil)
	if err != nil {
		return nil, err
	}

	for k, v := range doc.Iter() {
		copied, err := s.copyAny(v)
		if err != nil {
			return nil, err
		}
		res.Set(k, copied)
	}
	return res, nil
}

func (s *Serializer) copyAny(v any) (any, error) {
	switch t := v.(type) {
	case domain.Document:
		return s.copyDoc(t)
	case []any:
		newList := make([]any, len(t))
		for n, itm := range t {
			newV, err := s.copyAny(itm)
			if err != nil {
				return nil, err
			}
			newList[n] = newV
		}
		return newList, nil
	case []string:
		return append(make([]string, 0, len(t)), t...), nil
	default:
		return v, nil
	}
}
