// Package merger contains the default [domain.Merger] implementation.
package merger

import (
	"slices"

	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/data"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// Merger implements [domain.Merger].
//
// Values are grouped by operator. A field with at least one plain value is
// compared for equality with its last plain value and every value with an
// operator prefix is discarded. Otherwise each operator keeps its last value,
// except for $in and $nin, which keep all of them in order.
type Merger struct {
	documentFactory domain.DocumentFactory
	rejectMixed     bool
}

// NewMerger returns a new implementation of domain.Merger.
func NewMerger(options ...Option) domain.Merger {
	m := &Merger{
		documentFactory: data.NewDocument,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

type group struct {
	op     domain.Operator
	values []string
}

// Merge implements [domain.Merger].
func (m *Merger) Merge(field string, values []domain.TaggedValue) (any, error) {
	groups := m.group(values)

	if i := slices.IndexFunc(groups, isPlain); i >= 0 {
		return m.equality(field, groups, groups[i])
	}

	doc, err := m.documentFactory(nil)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.op.IsList() {
			doc.Set(g.op.Symbol(), g.values)
			continue
		}
		doc.Set(g.op.Symbol(), g.values[len(g.values)-1])
	}
	return doc, nil
}

// group returns one group per operator, in order of first appearance.
func (m *Merger) group(values []domain.TaggedValue) []group {
	var groups []group
	for _, v := range values {
		i := slices.IndexFunc(groups, func(g group) bool { return g.op == v.Op })
		if i < 0 {
			groups = append(groups, group{op: v.Op})
			i = len(groups) - 1
		}
		groups[i].values = append(groups[i].values, v.Value)
	}
	return groups
}

// equality handles fields holding plain values. Any operator found for the
// same field is dropped, unless the merger rejects mixed fields.
func (m *Merger) equality(field string, groups []group, plain group) (any, error) {
	if m.rejectMixed && len(groups) > 1 {
		return nil, domain.ErrMixedValues{Field: field}
	}
	return plain.values[len(plain.values)-1], nil
}

func isPlain(g group) bool {
	return g.op == domain.None
}
