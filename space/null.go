package space

import (
	"iter"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// NullSpace is the space without any element. Its cardinality is Null.
type NullSpace struct{}

func NewNull() *NullSpace { return &NullSpace{} }

func (*NullSpace) Cardinality() Cardinality { return Null }
func (*NullSpace) Dimension() Dimension     { return Scalar }
func (*NullSpace) Contains(Value) bool      { return false }

func (n *NullSpace) Sample(*rand.Rand) (Value, error) {
	return nil, &EmptySpaceError{Space: n}
}

func (*NullSpace) Values() iter.Seq[Value]   { return func(func(Value) bool) {} }
func (*NullSpace) children() iter.Seq[Space] { return noChildren }
func (*NullSpace) String() string            { return "∅" }
func (*NullSpace) Hash() uint64              { return newStructHash("null").sum() }

// Singleton is the space holding exactly one value
type Singleton struct {
	value Value
}

// NewSingleton treats a nil value as Unit
func NewSingleton(v Value) *Singleton {
	if v == nil {
		v = Unit{}
	}
	return &Singleton{value: v}
}

func (s *Singleton) Value() Value { return s.value }

func (*Singleton) Cardinality() Cardinality { return Finite(1) }
func (*Singleton) Dimension() Dimension     { return Scalar }

// Contains compares structurally, except that a NaN real matches a NaN with the
// same bits, so a singleton always contains its own value.
func (s *Singleton) Contains(v Value) bool {
	return EqualValues(s.value, v) || valueKey(s.value) == valueKey(v)
}

func (s *Singleton) Sample(*rand.Rand) (Value, error) { return s.value, nil }

func (s *Singleton) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) { yield(s.value) }
}

func (*Singleton) children() iter.Seq[Space] { return noChildren }
func (s *Singleton) String() string          { return "{" + s.value.String() + "}" }
func (s *Singleton) Hash() uint64 {
	return newStructHash("singleton").string(valueKey(s.value)).sum()
}

// valueKey renders a value unambiguously, including its type
func valueKey(v Value) string {
	switch v := v.(type) {
	case Label:
		return "l" + strconv.Quote(string(v))
	case Int:
		return "i" + v.String()
	case Real:
		return "r" + strconv.FormatUint(math.Float64bits(float64(v)), 16)
	case Bool:
		return "b" + v.String()
	case Unit:
		return "u"
	case Tuple:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = valueKey(item)
		}
		return "t(" + strings.Join(parts, ",") + ")"
	case Tagged:
		return "g" + strconv.Quote(v.Tag) + valueKey(v.Value)
	default:
		return "?"
	}
}
