package space

import (
	"cmp"
	"fmt"
	"math/bits"
)

type cardKind uint8

const (
	nullCard cardKind = iota
	finiteCard
	infiniteCard
)

// Cardinality is the size class of a space. The zero value is Null.
//
// Null means the space has no valid elements at all, whereas Finite(0) is a
// legal, explicitly empty space of a known type.
type Cardinality struct {
	kind  cardKind
	count uint64
}

var (
	Null     = Cardinality{kind: nullCard}
	Infinite = Cardinality{kind: infiniteCard}
)

func Finite(count uint64) Cardinality {
	return Cardinality{kind: finiteCard, count: count}
}

func (c Cardinality) IsNull() bool     { return c.kind == nullCard }
func (c Cardinality) IsFinite() bool   { return c.kind == finiteCard }
func (c Cardinality) IsInfinite() bool { return c.kind == infiniteCard }

// Count returns the number of elements when c is Finite
func (c Cardinality) Count() (uint64, bool) {
	return c.count, c.kind == finiteCard
}

// IsEmpty reports whether a space of this cardinality has no elements to sample
func (c Cardinality) IsEmpty() bool {
	return c.kind == nullCard || c.kind == finiteCard && c.count == 0
}

// Mul is the cardinality of a product.
// Null absorbs everything, then an empty finite factor, then Infinite:
// Finite(0) × Infinite is Finite(0), since a product with an empty factor has
// no elements no matter how large the other factors are.
func (c Cardinality) Mul(other Cardinality) (Cardinality, error) {
	switch {
	case c.IsNull() || other.IsNull():
		return Null, nil
	case c == Finite(0) || other == Finite(0):
		return Finite(0), nil
	case c.IsInfinite() || other.IsInfinite():
		return Infinite, nil
	}
	hi, lo := bits.Mul64(c.count, other.count)
	if hi != 0 {
		return Null, &ArithmeticOverflowError{Op: "×", Lhs: c, Rhs: other}
	}
	return Finite(lo), nil
}

// Add is the cardinality of a union. Null is the identity and Infinite absorbs.
func (c Cardinality) Add(other Cardinality) (Cardinality, error) {
	switch {
	case c.IsNull():
		return other, nil
	case other.IsNull():
		return c, nil
	case c.IsInfinite() || other.IsInfinite():
		return Infinite, nil
	}
	sum, carry := bits.Add64(c.count, other.count, 0)
	if carry != 0 {
		return Null, &ArithmeticOverflowError{Op: "+", Lhs: c, Rhs: other}
	}
	return Finite(sum), nil
}

// Compare orders Null < Finite(n) < Infinite, with finite cardinalities ordered by count.
// It is meant for diagnostics, not for ranking spaces.
func (c Cardinality) Compare(other Cardinality) int {
	if c.kind != other.kind {
		return cmp.Compare(c.kind, other.kind)
	}
	return cmp.Compare(c.count, other.count)
}

func (c Cardinality) String() string {
	switch c.kind {
	case finiteCard:
		return fmt.Sprintf("Finite(%d)", c.count)
	case infiniteCard:
		return "Infinite"
	default:
		return "Null"
	}
}

func productCard(children []Space) (Cardinality, error) {
	acc := Finite(1)
	for _, child := range children {
		var err error
		if acc, err = acc.Mul(child.Cardinality()); err != nil {
			return Null, err
		}
	}
	return acc, nil
}

func unionCard(branches []Branch) (Cardinality, error) {
	acc := Null
	for _, b := range branches {
		var err error
		if acc, err = acc.Add(b.Space.Cardinality()); err != nil {
			return Null, err
		}
	}
	return acc, nil
}
