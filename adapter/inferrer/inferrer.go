// Package inferrer contains the default [domain.OperatorInferrer]
// implementation.
package inferrer

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// Prefix associates a value prefix to the operator it represents.
type Prefix struct {
	Prefix string
	Op     domain.Operator
}

// Prefixes is the ordered table checked by [Inferrer.Infer]. The first match
// wins, so two-character comparisons must come before their one-character
// counterparts.
var Prefixes = [...]Prefix{
	{Prefix: "<=", Op: domain.Lte},
	{Prefix: ">=", Op: domain.Gte},
	{Prefix: "<", Op: domain.Lt},
	{Prefix: ">", Op: domain.Gt},
	{Prefix: "!", Op: domain.Ne},
	{Prefix: "[!]", Op: domain.Nin},
	{Prefix: "[]", Op: domain.In},
}

// Inferrer implements [domain.OperatorInferrer].
type Inferrer struct{}

// NewInferrer returns a new implementation of domain.OperatorInferrer.
func NewInferrer() domain.OperatorInferrer {
	return &Inferrer{}
}

// Infer implements [domain.OperatorInferrer].
func (i *Inferrer) Infer(value string) (domain.Operator, string) {
	for _, p := range Prefixes {
		if rest, ok := strings.CutPrefix(value, p.Prefix); ok {
			return p.Op, rest
		}
	}
	return domain.None, value
}
