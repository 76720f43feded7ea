// Package qsmongo translates URL query strings into MongoDB-like filter
// documents.
//
// Each query key becomes a document field and each value may start with an
// operator prefix:
//
//	age=30            {"age": "30"}
//	age>=18           {"age": {"$gte": "18"}}
//	age=<=65          {"age": {"$lte": "65"}}
//	status=!inactive  {"status": {"$ne": "inactive"}}
//	tag[]=a&tag[]=b   {"tag": {"$in": ["a", "b"]}}
//	tag[!]=x          {"tag": {"$nin": ["x"]}}
//
// Values are never converted, every payload is a string or a list of strings.
// The basic usage is calling [Translate]. [NewTranslator] creates a configured
// [Translator].
package qsmongo

import (
	"github.com/globalsign/mgo/bson"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/bsondoc"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/translator"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

var (
	// ErrTargetNil is returned when a nil value is given as target to
	// [Translator.TranslateInto].
	ErrTargetNil = domain.ErrTargetNil
	// ErrNonPointer is returned when the target given to
	// [Translator.TranslateInto] is not a pointer.
	ErrNonPointer = domain.ErrNonPointer
)

// ErrDecode is returned when the query string has a malformed percent-escape.
// No document is returned in that case.
type ErrDecode = domain.ErrDecode

// ErrMixedValues is returned for fields that get both plain values and
// operators, if the merger was created with merger.WithRejectMixed.
type ErrMixedValues = domain.ErrMixedValues

// ErrBind wraps errors found by [Translator.TranslateInto] when decoding the
// filter into the target.
type ErrBind = domain.ErrBind

// Document is an ordered filter document. Field values are either a string,
// for equality, or a Document mapping operators to a string or a []string.
type Document = domain.Document

// Translator converts query strings into filter documents. It is safe for
// concurrent use.
type Translator = domain.Translator

// Option configures a [Translator].
type Option = translator.Option

var defaultTranslator = translator.NewTranslator()

// Translate converts the raw query string, without the leading '?', into a
// filter document using the default configuration.
func Translate(raw string) (Document, error) {
	return defaultTranslator.Translate(raw)
}

// NewTranslator creates a new [Translator] with the provided options:
//
// - [WithQueryDecoder]: sets how query strings are split into keys and values.
//
// - [WithInferrer]: sets how operators are read from values.
//
// - [WithMerger]: sets how the values of one field are merged.
//
// - [WithDocumentFactory]: sets the function for creating [Document] instances.
//
// - [WithDecoder]: sets the decoder used by [Translator.TranslateInto].
//
// - [WithIgnoredFields]: sets query keys that are not filter fields.
func NewTranslator(options ...Option) Translator {
	return translator.NewTranslator(options...)
}

// ToBSON converts a filter document into a [bson.D], keeping field order.
func ToBSON(doc Document) bson.D {
	return bsondoc.ToD(doc)
}

// ToBSONMap converts a filter document into a [bson.M].
func ToBSONMap(doc Document) bson.M {
	return bsondoc.ToM(doc)
}
