package querydecoder

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/qsmongo/domain"
)

type P = domain.Params

type QueryDecoderTestSuite struct {
	suite.Suite
	q *QueryDecoder
}

func (s *QueryDecoderTestSuite) SetupTest() {
	s.q = NewQueryDecoder().(*QueryDecoder)
}

// Empty query strings have no params.
func (s *QueryDecoderTestSuite) TestEmpty() {
	params, err := s.q.Decode("")
	s.NoError(err)
	s.Empty(params)
}

// Keys keep the order they first appear in and repeated keys accumulate.
func (s *QueryDecoderTestSuite) TestOrderAndRepeatedKeys() {
	params, err := s.q.Decode("b=1&a=2&b=3&c=4&a=5")
	s.NoError(err)
	s.Equal(P{
		{Key: "b", Values: []string{"1", "3"}},
		{Key: "a", Values: []string{"2", "5"}},
		{Key: "c", Values: []string{"4"}},
	}, params)
}

// Only the first '=' separates key from value.
func (s *QueryDecoderTestSuite) TestFirstEqualSign() {
	params, err := s.q.Decode("age=>=18&expr=a=b")
	s.NoError(err)
	s.Equal(P{
		{Key: "age", Values: []string{">=18"}},
		{Key: "expr", Values: []string{"a=b"}},
	}, params)
}

// Segments without '=' are keys with an empty value and empty segments are
// skipped.
func (s *QueryDecoderTestSuite) TestBlankValues() {
	params, err := s.q.Decode("a&&b=&c=1")
	s.NoError(err)
	s.Equal(P{
		{Key: "a", Values: []string{""}},
		{Key: "b", Values: []string{""}},
		{Key: "c", Values: []string{"1"}},
	}, params)
}

// Blank values can be dropped, and keys with no value left are omitted.
func (s *QueryDecoderTestSuite) TestDropBlankValues() {
	s.q = NewQueryDecoder(WithKeepBlankValues(false)).(*QueryDecoder)
	params, err := s.q.Decode("a&b=&c=1&b=2")
	s.NoError(err)
	s.Equal(P{
		{Key: "c", Values: []string{"1"}},
		{Key: "b", Values: []string{"2"}},
	}, params)
}

// Percent-escapes and '+' are decoded in both keys and values.
func (s *QueryDecoderTestSuite) TestUnescape() {
	params, err := s.q.Decode("first+name=John+Doe&n%3C=%3C%3D5&tag%5B%5D=a%26b")
	s.NoError(err)
	s.Equal(P{
		{Key: "first name", Values: []string{"John Doe"}},
		{Key: "n<", Values: []string{"<=5"}},
		{Key: "tag[]", Values: []string{"a&b"}},
	}, params)
}

// Operators written after the key are moved to the value.
func (s *QueryDecoderTestSuite) TestKeyOperators() {
	params, err := s.q.Decode("age>=18&age>5&n<=5&n<3&status!=x&tag[]=a&tag[!]=b&tag[]=c&tag[!]&flag!")
	s.NoError(err)
	s.Equal(P{
		{Key: "age", Values: []string{">=18", ">5"}},
		{Key: "n", Values: []string{"<=5", "<3"}},
		{Key: "status", Values: []string{"!x"}},
		{Key: "tag", Values: []string{"[]a", "[!]b", "[]c", "[!]"}},
		{Key: "flag", Values: []string{"!"}},
	}, params)
}

// Only the part before the first '=' is searched for operators. Brackets
// that are not operators, and '!', '[]' or '[!]' not followed by '=' or the
// end of the segment, stay in the key.
func (s *QueryDecoderTestSuite) TestKeyOperatorBoundaries() {
	params, err := s.q.Decode("a=>5&b=x<y&c[0]=1&d[x]>2&e[=1&f%3E=2&g%5B%5D=3&" +
		"hello!world=1&a!b=2&a[]b=3&a[!]b=4&h[]x")
	s.NoError(err)
	s.Equal(P{
		{Key: "a", Values: []string{">5"}},
		{Key: "b", Values: []string{"x<y"}},
		{Key: "c[0]", Values: []string{"1"}},
		{Key: "d[x]", Values: []string{">2"}},
		{Key: "e[", Values: []string{"1"}},
		{Key: "f>", Values: []string{"2"}},
		{Key: "g[]", Values: []string{"3"}},
		{Key: "hello!world", Values: []string{"1"}},
		{Key: "a!b", Values: []string{"2"}},
		{Key: "a[]b", Values: []string{"3"}},
		{Key: "a[!]b", Values: []string{"4"}},
		{Key: "h[]x", Values: []string{""}},
	}, params)
}

// Key operators can be disabled, leaving only the first '=' as separator.
func (s *QueryDecoderTestSuite) TestNoKeyOperators() {
	s.q = NewQueryDecoder(WithKeyOperators(false)).(*QueryDecoder)
	params, err := s.q.Decode("age>=18&age>5&tag[]=a&status=!x")
	s.NoError(err)
	s.Equal(P{
		{Key: "age>", Values: []string{"18"}},
		{Key: "age>5", Values: []string{""}},
		{Key: "tag[]", Values: []string{"a"}},
		{Key: "status", Values: []string{"!x"}},
	}, params)
}

// Semicolons are not separators.
func (s *QueryDecoderTestSuite) TestSemicolon() {
	params, err := s.q.Decode("a=1;b=2")
	s.NoError(err)
	s.Equal(P{{Key: "a", Values: []string{"1;b=2"}}}, params)
}

// Malformed escapes fail the whole query by default.
func (s *QueryDecoderTestSuite) TestMalformedEscape() {
	for _, raw := range []string{"a=%zz", "a=1&b=%4", "%=1"} {
		params, err := s.q.Decode(raw)
		s.Nil(params)
		var errDecode domain.ErrDecode
		s.Require().ErrorAs(err, &errDecode, raw)
		s.Equal(raw, errDecode.Query)

		var errEscape url.EscapeError
		s.True(errors.As(err, &errEscape), raw)
	}

	_, err := s.q.Decode("a=1&b=%zz&c=3")
	s.ErrorIs(err, domain.ErrDecode{Query: "a=1&b=%zz&c=3", Segment: "b=%zz"})
}

// Lenient decoding copies malformed escapes and still decodes valid ones.
func (s *QueryDecoderTestSuite) TestLenientEscapes() {
	s.q = NewQueryDecoder(WithLenientEscapes(true)).(*QueryDecoder)
	params, err := s.q.Decode("a=%zz&b=100%&c=%41%4&d=x+%2By&%=1")
	s.NoError(err)
	s.Equal(P{
		{Key: "a", Values: []string{"%zz"}},
		{Key: "b", Values: []string{"100%"}},
		{Key: "c", Values: []string{"A%4"}},
		{Key: "d", Values: []string{"x +y"}},
		{Key: "%", Values: []string{"1"}},
	}, params)
}

// Decoding is pure.
func (s *QueryDecoderTestSuite) TestRepeatable() {
	a, err := s.q.Decode("x=1&y=2&x=3")
	s.NoError(err)
	b, err := s.q.Decode("x=1&y=2&x=3")
	s.NoError(err)
	s.Equal(a, b)
}

func TestQueryDecoderTestSuite(t *testing.T) {
	suite.Run(t, new(QueryDecoderTestSuite))
}
