package domain

// Operator is the comparison encoded as a prefix of a raw query value.
type Operator uint8

// Supported operators. None means no prefix was found and the value is
// compared for equality.
const (
	None Operator = iota
	Ne
	Gt
	Gte
	Lt
	Lte
	In
	Nin
)

var operatorSymbols = [...]string{
	None: "",
	Ne:   "$ne",
	Gt:   "$gt",
	Gte:  "$gte",
	Lt:   "$lt",
	Lte:  "$lte",
	In:   "$in",
	Nin:  "$nin",
}

var operatorNames = [...]string{
	None: "none",
	Ne:   "not equal",
	Gt:   "greater than",
	Gte:  "greater or equal",
	Lt:   "less than",
	Lte:  "less or equal",
	In:   "in",
	Nin:  "not in",
}

// Symbol returns the query language key for the operator, such as "$gte". It
// returns an empty string for [None] and for unknown values.
func (o Operator) Symbol() string {
	if int(o) >= len(operatorSymbols) {
		return ""
	}
	return operatorSymbols[o]
}

// IsList reports whether the operator payload is a list instead of a single
// value.
func (o Operator) IsList() bool {
	return o == In || o == Nin
}

// String implements [fmt.Stringer].
func (o Operator) String() string {
	if int(o) >= len(operatorNames) {
		return "unknown"
	}
	return operatorNames[o]
}

// TaggedValue is a raw value after its operator prefix has been identified and
// removed.
type TaggedValue struct {
	Op    Operator
	Value string
}

// Param is a query string key and every value given to it, in the order they
// appeared.
type Param struct {
	Key    string
	Values []string
}

// Params is the decoded form of a query string. Keys are listed in order of
// first appearance and each one holds at least one value.
type Params []Param

// Get returns the values for the given key, if any.
func (p Params) Get(key string) ([]string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Values, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for n, param := range p {
		keys[n] = param.Key
	}
	return keys
}

// DocumentFactory represents a function that constructs [Document] instances.
// If nil is provided, returns an empty document.
type DocumentFactory = func(any) (Document, error)
