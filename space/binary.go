package space

import (
	"iter"
	"math/rand/v2"
)

// Binary is the space of base-2 values {false, true}, whose elements are Bool values
type Binary struct{}

func NewBinary() *Binary { return &Binary{} }

func (*Binary) Cardinality() Cardinality { return Finite(2) }
func (*Binary) Dimension() Dimension     { return Scalar }

func (*Binary) Contains(v Value) bool {
	_, ok := v.(Bool)
	return ok
}

func (*Binary) Sample(rng *rand.Rand) (Value, error) {
	return Bool(rng.IntN(2) == 1), nil
}

func (*Binary) Inf() (Value, bool) { return Bool(false), true }
func (*Binary) Sup() (Value, bool) { return Bool(true), true }

func (*Binary) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		_ = yield(Bool(false)) && yield(Bool(true))
	}
}

func (*Binary) children() iter.Seq[Space] { return noChildren }
func (*Binary) String() string            { return "{0, 1}" }
func (*Binary) Hash() uint64              { return newStructHash("binary").sum() }
