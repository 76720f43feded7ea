package bsondoc

import (
	"testing"

	"github.com/globalsign/mgo/bson"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/qsmongo/adapter/data"
)

type E = data.E

type BSONDocTestSuite struct {
	suite.Suite
}

func (s *BSONDocTestSuite) filter() *data.D {
	return data.NewD(
		E{Key: "status", Value: "active"},
		E{Key: "age", Value: data.NewD(E{Key: "$gte", Value: "18"}, E{Key: "$lt", Value: "65"})},
		E{Key: "tag", Value: data.NewD(E{Key: "$in", Value: []string{"a", "b"}})},
	)
}

func (s *BSONDocTestSuite) TestToD() {
	s.Equal(bson.D{
		{Name: "status", Value: "active"},
		{Name: "age", Value: bson.D{{Name: "$gte", Value: "18"}, {Name: "$lt", Value: "65"}}},
		{Name: "tag", Value: bson.D{{Name: "$in", Value: []string{"a", "b"}}}},
	}, ToD(s.filter()))
}

func (s *BSONDocTestSuite) TestToM() {
	s.Equal(bson.M{
		"status": "active",
		"age":    bson.M{"$gte": "18", "$lt": "65"},
		"tag":    bson.M{"$in": []string{"a", "b"}},
	}, ToM(s.filter()))
}

func (s *BSONDocTestSuite) TestEmpty() {
	s.Equal(bson.D{}, ToD(nil))
	s.Equal(bson.M{}, ToM(nil))
	s.Equal(bson.D{}, ToD(data.NewD()))
	s.Equal(bson.M{}, ToM(data.NewD()))
}

// Lists are copied and documents inside lists are converted.
func (s *BSONDocTestSuite) TestLists() {
	tags := []string{"a"}
	doc := data.NewD(
		E{Key: "tag", Value: data.NewD(E{Key: "$in", Value: tags})},
		E{Key: "list", Value: []any{data.NewD(E{Key: "x", Value: "1"}), "y"}},
	)

	d := ToD(doc)
	s.Equal([]any{bson.D{{Name: "x", Value: "1"}}, "y"}, d[1].Value)

	in := d[0].Value.(bson.D)[0].Value.([]string)
	in[0] = "changed"
	s.Equal([]string{"a"}, tags)

	s.Equal([]any{bson.M{"x": "1"}, "y"}, ToM(doc)["list"])
}

// Converted documents can be marshaled as BSON, keeping field order.
func (s *BSONDocTestSuite) TestMarshal() {
	b, err := bson.Marshal(ToD(s.filter()))
	s.NoError(err)

	var raw bson.D
	s.NoError(bson.Unmarshal(b, &raw))
	s.Len(raw, 3)
	s.Equal("status", raw[0].Name)
	s.Equal("age", raw[1].Name)
	s.Equal("tag", raw[2].Name)

	age, ok := raw[1].Value.(bson.D)
	s.Require().True(ok)
	s.Equal(bson.D{{Name: "$gte", Value: "18"}, {Name: "$lt", Value: "65"}}, age)
}

func TestBSONDocTestSuite(t *testing.T) {
	suite.Run(t, new(BSONDocTestSuite))
}
