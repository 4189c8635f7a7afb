// Package space implements an algebra of spaces: structural descriptions of the
// set of values a variable may take, such as the state or action space of a
// decision-making problem.
//
// Primitive spaces (Discrete, Interval, Binary, Naturals, Singleton and the
// NullSpace) compose through the Product and Union combinators. Every space is
// immutable once constructed, so a space can be shared between goroutines
// without synchronisation. Construction validates the whole structure up front:
// a constructor either returns a valid space or an error carrying an ErrCode,
// never a partially built composite.
package space

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/cottand/spaces/internal/log"
	"github.com/cottand/spaces/util"
	"github.com/hashicorp/go-set/v3"
)

var logger = log.DefaultLogger.With("section", "space")

// Space is the contract every space satisfies.
//
// Cardinality and Dimension are pure and recomputed from structure on every call.
// Sample draws from rng, which stays owned by the caller: a space never seeds
// nor retains it.
type Space interface {
	fmt.Stringer
	Cardinality() Cardinality
	Dimension() Dimension
	Contains(v Value) bool
	Sample(rng *rand.Rand) (Value, error)
	// Hash identifies the structure of a space: equal spaces have equal hashes
	Hash() uint64

	children() iter.Seq[Space]
}

var (
	_ Space = (*Discrete)(nil)
	_ Space = (*Interval)(nil)
	_ Space = (*Binary)(nil)
	_ Space = (*Naturals)(nil)
	_ Space = (*NullSpace)(nil)
	_ Space = (*Singleton)(nil)
	_ Space = (*Product)(nil)
	_ Space = (*Union)(nil)

	_ Bounded = (*Discrete)(nil)
	_ Bounded = (*Interval)(nil)
	_ Bounded = (*Binary)(nil)
	_ Bounded = (*Naturals)(nil)

	_ Enumerable = (*Discrete)(nil)
	_ Enumerable = (*Binary)(nil)
	_ Enumerable = (*NullSpace)(nil)
	_ Enumerable = (*Singleton)(nil)
)

// Bounded is implemented by ordered spaces that know their infimum and supremum.
// The boolean is false when the space is unbounded on that side or empty.
type Bounded interface {
	Space
	Inf() (Value, bool)
	Sup() (Value, bool)
}

// Enumerable is implemented by finite primitive spaces which can list their elements
type Enumerable interface {
	Space
	Values() iter.Seq[Value]
}

// Enumerate lists every element of s in a deterministic order.
// Composites are enumerable when all of their children are.
func Enumerate(s Space) (iter.Seq[Value], bool) {
	switch s := s.(type) {
	case Enumerable:
		return s.Values(), true
	case *Product:
		return s.values()
	case *Union:
		return s.values()
	default:
		return nil, false
	}
}

// Equal can be used to compare spaces structurally, like Hash
func Equal[H, HH set.Hasher[uint64]](this H, other HH) bool {
	return this.Hash() == other.Hash()
}

// Walk visits s and then every space nested in it, depth first.
// It keeps its own stack, so nesting depth is only limited by memory.
func Walk(s Space) iter.Seq[Space] {
	return func(yield func(Space) bool) {
		var pending util.Stack[Space]
		pending.Push(s)
		for pending.Len() > 0 {
			next, _ := pending.Pop()
			if !yield(next) {
				return
			}
			children := slices.Collect(next.children())
			slices.Reverse(children)
			pending.Push(children...)
		}
	}
}

var noChildren iter.Seq[Space] = func(func(Space) bool) {}

// structHash hashes a kind name followed by its parts with FNV-1a
type structHash struct {
	buf [8]byte
	h   interface {
		Write([]byte) (int, error)
		Sum64() uint64
	}
}

func newStructHash(kind string) *structHash {
	h := &structHash{h: fnv.New64a()}
	h.string(kind)
	return h
}

func (h *structHash) uint64(v uint64) *structHash {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.h.Write(h.buf[:])
	return h
}

func (h *structHash) string(s string) *structHash {
	h.uint64(uint64(len(s)))
	_, _ = h.h.Write([]byte(s))
	return h
}

func (h *structHash) bool(b bool) *structHash {
	if b {
		return h.uint64(1)
	}
	return h.uint64(0)
}

func (h *structHash) sum() uint64 { return h.h.Sum64() }
