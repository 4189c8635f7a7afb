package space

import (
	"iter"
	"math/bits"
	"math/rand/v2"
)

// Naturals is the countably infinite space {0, 1, 2, ...}, whose elements are Int values.
//
// Sampling follows a geometric distribution with p = 1/2, so that P(k) = 2^-(k+1).
type Naturals struct{}

func NewNaturals() *Naturals { return &Naturals{} }

func (*Naturals) Cardinality() Cardinality { return Infinite }
func (*Naturals) Dimension() Dimension     { return Scalar }

func (*Naturals) Contains(v Value) bool {
	i, ok := v.(Int)
	return ok && i >= 0
}

func (*Naturals) Sample(rng *rand.Rand) (Value, error) {
	// each trailing zero bit is one failed fair coin flip
	return Int(bits.TrailingZeros64(rng.Uint64())), nil
}

func (*Naturals) Inf() (Value, bool) { return Int(0), true }
func (*Naturals) Sup() (Value, bool) { return nil, false }

func (*Naturals) children() iter.Seq[Space] { return noChildren }
func (*Naturals) String() string            { return "ℕ" }
func (*Naturals) Hash() uint64              { return newStructHash("naturals").sum() }
