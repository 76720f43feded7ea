package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetNil is returned when the passed target, which should be a
	// pointer, is passed as a nil value.
	ErrTargetNil = errors.New("target interface is nil")
	// ErrNonPointer is returned when the passed target is not a pointer.
	ErrNonPointer = errors.New("target should be a pointer")
)

// ErrDecode is returned when a query string segment cannot be decoded, usually
// because of a malformed percent-escape. It is wrapped together with the error
// returned by the decoding primitive.
type ErrDecode struct {
	Query   string
	Segment string
}

// Error implements [error].
func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode query segment %q", e.Segment)
}

// ErrMixedValues is returned when a field receives both plain values and
// values with an operator prefix, and the merger was configured to reject
// that combination.
type ErrMixedValues struct {
	Field string
}

// Error implements [error].
func (e ErrMixedValues) Error() string {
	return fmt.Sprintf("field %q mixes plain values and operators", e.Field)
}

// ErrBind is returned by [Decoder.Decode] to easily wrap third party decoding
// errors.
type ErrBind struct {
	Source any
	Target any
}

// Error implements [error].
func (e ErrBind) Error() string {
	return fmt.Sprintf("cannot decode %T into %T", e.Source, e.Target)
}
