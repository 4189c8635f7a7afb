package space

import (
	"iter"
	"math/rand/v2"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/spaces/util"
)

// Product is the cartesian product of an ordered sequence of spaces.
// Its elements are Tuple values with one slot per child.
//
// Its dimension flattens the children: Vector of the sum of their sizes, so that
// a product of a Scalar and a Vector(2) is a Vector(3).
type Product struct {
	factors *immutable.List[Space]
}

// NewProduct fails with EmptyCombinator when there are no children and with
// ArithmeticOverflow when the cardinality does not fit in 64 bits
func NewProduct(children ...Space) (*Product, error) {
	if len(children) == 0 {
		return nil, &EmptyCombinatorError{Kind: "product"}
	}
	if _, err := productCard(children); err != nil {
		logger.Debug("rejected product", "factors", len(children), "error", err)
		return nil, err
	}
	return &Product{factors: immutable.NewList(children...)}, nil
}

// Array is the homogeneous product of n copies of s
func Array(s Space, n int) (*Product, error) {
	if n < 1 {
		return nil, &EmptyCombinatorError{Kind: "product"}
	}
	children := make([]Space, n)
	for i := range children {
		children[i] = s
	}
	return NewProduct(children...)
}

// Append returns a new product with s as an extra last factor
func (p *Product) Append(s Space) (*Product, error) {
	return NewProduct(append(p.factorSlice(), s)...)
}

func (p *Product) Len() int         { return p.factors.Len() }
func (p *Product) At(i int) Space   { return p.factors.Get(i) }
func (p *Product) Factors() []Space { return p.factorSlice() }

func (p *Product) factorSlice() []Space {
	out := make([]Space, 0, p.factors.Len())
	for child := range p.children() {
		out = append(out, child)
	}
	return out
}

func (p *Product) Cardinality() Cardinality {
	card, err := productCard(p.factorSlice())
	if err != nil {
		// NewProduct already computed this successfully
		panic(err)
	}
	return card
}

func (p *Product) Dimension() Dimension {
	return productDim(p.factorSlice())
}

// Contains requires a Tuple with exactly one member per factor, slot by slot
func (p *Product) Contains(v Value) bool {
	tuple, ok := v.(Tuple)
	if !ok || len(tuple) != p.factors.Len() {
		return false
	}
	for i, item := range tuple {
		if !p.factors.Get(i).Contains(item) {
			return false
		}
	}
	return true
}

func (p *Product) Sample(rng *rand.Rand) (Value, error) {
	if p.Cardinality().IsEmpty() {
		return nil, &EmptySpaceError{Space: p}
	}
	tuple := make(Tuple, 0, p.factors.Len())
	for child := range p.children() {
		v, err := child.Sample(rng)
		if err != nil {
			return nil, err
		}
		tuple = append(tuple, v)
	}
	return tuple, nil
}

func (p *Product) values() (iter.Seq[Value], bool) {
	factors := make([]func() iter.Seq[Value], 0, p.factors.Len())
	for child := range p.children() {
		seq, ok := Enumerate(child)
		if !ok {
			return nil, false
		}
		factors = append(factors, func() iter.Seq[Value] { return seq })
	}
	return util.MapIter(util.Cartesian(factors), func(items []Value) Value {
		return Tuple(items)
	}), true
}

func (p *Product) children() iter.Seq[Space] {
	return func(yield func(Space) bool) {
		itr := p.factors.Iterator()
		for !itr.Done() {
			_, child := itr.Next()
			if !yield(child) {
				return
			}
		}
	}
}

func (p *Product) String() string {
	parts := make([]string, 0, p.factors.Len())
	for child := range p.children() {
		parts = append(parts, child.String())
	}
	return "(" + strings.Join(parts, " × ") + ")"
}

func (p *Product) Hash() uint64 {
	h := newStructHash("product").uint64(uint64(p.factors.Len()))
	for child := range p.children() {
		h.uint64(child.Hash())
	}
	return h.sum()
}
