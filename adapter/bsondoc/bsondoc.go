// Package bsondoc converts filter documents into the BSON types accepted by
// MongoDB drivers.
package bsondoc

import (
	"github.com/globalsign/mgo/bson"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// ToD converts a document into a [bson.D], keeping field order. Nested
// documents are converted as well, at any depth. A nil document returns an
// empty [bson.D].
func ToD(doc domain.Document) bson.D {
	if doc == nil {
		return bson.D{}
	}
	d := make(bson.D, 0, doc.Len())
	for k, v := range doc.Iter() {
		d = append(d, bson.DocElem{Name: k, Value: convert(v, toD)})
	}
	return d
}

// ToM converts a document into a [bson.M]. Field order is lost, which makes no
// difference for filters with one sub-expression per field.
func ToM(doc domain.Document) bson.M {
	if doc == nil {
		return bson.M{}
	}
	m := make(bson.M, doc.Len())
	for k, v := range doc.Iter() {
		m[k] = convert(v, toM)
	}
	return m
}

func toD(doc domain.Document) any { return ToD(doc) }

func toM(doc domain.Document) any { return ToM(doc) }

func convert(v any, docFn func(domain.Document) any) any {
	switch t := v.(type) {
	case domain.Document:
		return docFn(t)
	case []any:
		lst := make([]any, len(t))
		for n, itm := range t {
			lst[n] = convert(itm, docFn)
		}
		return lst
	case []string:
		return append(make([]string, 0, len(t)), t...)
	default:
		return v
	}
}
