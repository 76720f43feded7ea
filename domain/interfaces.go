// Package domain contains domain-specific interfaces and types for qsmongo.
//
// This package defines the interfaces implemented by the adapters of the
// translation pipeline (query decoding, operator inference, merging and
// assembling) as well as the values exchanged between them.
package domain

import (
	"context"
	"iter"
)

// QueryDecoder splits a raw query string into its keys and values.
type QueryDecoder interface {
	// Decode parses the raw query string, without the leading '?'.
	Decode(string) (Params, error)
}

// OperatorInferrer detects the operator encoded as a value prefix.
type OperatorInferrer interface {
	// Infer returns the operator found in the given value and the value
	// without its prefix. Values with no known prefix return [None] and
	// the value unchanged.
	Infer(string) (Operator, string)
}

// Merger combines every tagged value of one field into a sub-expression.
type Merger interface {
	// Merge returns either a plain value, for equality, or a [Document]
	// mapping operator symbols to their payloads.
	Merge(field string, values []TaggedValue) (any, error)
}

// Translator converts query strings into filter documents.
type Translator interface {
	// Translate decodes the raw query string and returns its filter
	// document. No document is returned if any step fails.
	Translate(string) (Document, error)
	// Assemble builds the filter document from already decoded params.
	Assemble(Params) (Document, error)
	// TranslateInto translates the raw query string and decodes the
	// resulting filter into target, which must be a non-nil pointer.
	TranslateInto(raw string, target any) error
}

// Decoder converts between different data representations.
type Decoder interface {
	// Decode converts from one data format to another.
	Decode(any, any) error
}

// Serializer converts documents to bytes.
type Serializer interface {
	// Serialize converts a document to bytes.
	Serialize(context.Context, any) ([]byte, error)
}

// Document is a filter document or one of its operator sub-documents. Keys
// are kept in insertion order, so iterating a document yields fields in the
// order they were found in the query string.
type Document interface {
	// D returns the subdocument for the given key, if any.
	D(string) Document
	// Get returns the value under the given key, or nil if unset.
	Get(string) any
	// Set sets the value under the given key. New keys are appended, and
	// existing keys keep their position.
	Set(string, any)
	// Unset unsets the value under the given key.
	Unset(string)
	// Iter returns an ordered sequence of key-value pairs in the
	// document.
	Iter() iter.Seq2[string, any]
	// Keys returns an ordered sequence of keys in the document.
	Keys() iter.Seq[string]
	// Values returns an ordered sequence of values in the document.
	Values() iter.Seq[any]
	// Has reports whether a value is set under the given key.
	Has(string) bool
	// Len returns the number of set fields in the document.
	Len() int
}
