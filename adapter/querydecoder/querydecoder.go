// Package querydecoder contains the default [domain.QueryDecoder]
// implementation, which follows the usual URL query encoding: pairs separated
// by '&', keys and values separated by the first '=', percent-escapes and '+'
// for spaces.
//
// Operators may also be written right after the key, as in "age>=18",
// "tag[]=a" or "status!=x". An unescaped '<', '>', '!', "[]" or "[!]" found
// before the first '=' ends the key and is moved to the start of the value, so
// "age>=18" decodes exactly like "age=>=18". Escaped characters, such as %3C,
// are always part of the key.
package querydecoder

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

const upperhex = "0123456789ABCDEF"

// QueryDecoder implements [domain.QueryDecoder].
type QueryDecoder struct {
	keepBlankValues bool
	lenientEscapes  bool
	keyOperators    bool
}

// NewQueryDecoder returns a new implementation of domain.QueryDecoder.
func NewQueryDecoder(opts ...Option) domain.QueryDecoder {
	q := QueryDecoder{
		keepBlankValues: true,
		keyOperators:    true,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return &q
}

// Decode implements [domain.QueryDecoder].
func (q *QueryDecoder) Decode(raw string) (domain.Params, error) {
	var params domain.Params
	index := make(map[string]int)

	for rest := raw; rest != ""; {
		var segment string
		segment, rest, _ = strings.Cut(rest, "&")
		if segment == "" {
			continue
		}
		rawKey, rawValue := q.split(segment)

		key, err := q.unescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrDecode{Query: raw, Segment: segment}, err)
		}
		value, err := q.unescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrDecode{Query: raw, Segment: segment}, err)
		}

		if value == "" && !q.keepBlankValues {
			continue
		}

		if n, ok := index[key]; ok {
			params[n].Values = append(params[n].Values, value)
			continue
		}
		index[key] = len(params)
		params = append(params, domain.Param{Key: key, Values: []string{value}})
	}

	return params, nil
}

// split separates key and value of a raw segment.
func (q *QueryDecoder) split(segment string) (string, string) {
	if !q.keyOperators {
		key, value, _ := strings.Cut(segment, "=")
		return key, value
	}
	for i := 0; i < len(segment); i++ {
		switch segment[i] {
		case '=':
			return segment[:i], segment[i+1:]
		case '<', '>':
			return segment[:i], segment[i:]
		case '!':
			if rest := segment[i+1:]; endsKey(rest) {
				return segment[:i], "!" + strings.TrimPrefix(rest, "=")
			}
		case '[':
			for _, op := range [...]string{"[!]", "[]"} {
				if rest, ok := strings.CutPrefix(segment[i:], op); ok && endsKey(rest) {
					return segment[:i], op + strings.TrimPrefix(rest, "=")
				}
			}
		}
	}
	return segment, ""
}

// endsKey reports whether an operator followed by rest closes the key: rest
// is empty or starts with '='.
func endsKey(rest string) bool {
	return rest == "" || rest[0] == '='
}

func (q *QueryDecoder) unescape(s string) (string, error) {
	res, err := url.QueryUnescape(s)
	if err == nil || !q.lenientEscapes {
		return res, err
	}
	return unescapeLenient(s), nil
}

// unescapeLenient decodes valid percent-escapes and '+', copying malformed
// escapes as they are.
func unescapeLenient(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return strings.IndexByte(upperhex, upper(c)) >= 0
}

func unhex(c byte) byte {
	return byte(strings.IndexByte(upperhex, upper(c)))
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}
