// Package translator contains the default [domain.Translator] implementation,
// which runs the whole pipeline: decoding the query string, inferring the
// operator of every value, merging the values of each field and assembling
// the filter document.
package translator

import (
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/data"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/inferrer"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/merger"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/querydecoder"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

// Translator implements [domain.Translator]. It holds no state besides its
// components and can be used concurrently.
type Translator struct {
	queryDecoder    domain.QueryDecoder
	inferrer        domain.OperatorInferrer
	merger          domain.Merger
	documentFactory domain.DocumentFactory
	decoder         domain.Decoder
	ignored         map[string]struct{}
}

// NewTranslator returns a new implementation of domain.Translator. Nil
// components are replaced by the defaults.
func NewTranslator(options ...Option) domain.Translator {
	t := &Translator{
		ignored: make(map[string]struct{}),
	}
	for _, option := range options {
		option(t)
	}
	if t.documentFactory == nil {
		t.documentFactory = data.NewDocument
	}
	if t.queryDecoder == nil {
		t.queryDecoder = querydecoder.NewQueryDecoder()
	}
	if t.inferrer == nil {
		t.inferrer = inferrer.NewInferrer()
	}
	if t.merger == nil {
		t.merger = merger.NewMerger(merger.WithDocumentFactory(t.documentFactory))
	}
	if t.decoder == nil {
		t.decoder = decoder.NewDecoder()
	}
	return t
}

// Translate implements [domain.Translator].
func (t *Translator) Translate(raw string) (domain.Document, error) {
	params, err := t.queryDecoder.Decode(raw)
	if err != nil {
		return nil, err
	}
	return t.Assemble(params)
}

// Assemble implements [domain.Translator].
func (t *Translator) Assemble(params domain.Params) (domain.Document, error) {
	doc, err := t.documentFactory(nil)
	if err != nil {
		return nil, err
	}

	for _, param := range params {
		if _, ignored := t.ignored[param.Key]; ignored {
			continue
		}
		tagged := make([]domain.TaggedValue, len(param.Values))
		for n, value := range param.Values {
			tagged[n].Op, tagged[n].Value = t.inferrer.Infer(value)
		}
		sub, err := t.merger.Merge(param.Key, tagged)
		if err != nil {
			return nil, err
		}
		doc.Set(param.Key, sub)
	}

	return doc, nil
}

// TranslateInto implements [domain.Translator].
func (t *Translator) TranslateInto(raw string, target any) error {
	doc, err := t.Translate(raw)
	if err != nil {
		return err
	}
	return t.decoder.Decode(doc, target)
}
