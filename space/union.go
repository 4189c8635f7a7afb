package space

import (
	"iter"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/spaces/util"
)

// Branch is one tagged alternative of a Union
type Branch struct {
	Tag   string
	Space Space
}

// Union is a tagged choice among spaces. Its elements are Tagged values.
//
// All branches share one dimension, which is the union's dimension.
// Its cardinality is the sum of the branches' cardinalities.
type Union struct {
	branches *immutable.List[Branch]
	index    *immutable.Map[string, int]
}

// NewUnion fails with EmptyCombinator without branches, DuplicateLabel for
// repeated tags, ShapeMismatch when branch dimensions differ, and
// ArithmeticOverflow when the cardinality does not fit in 64 bits.
func NewUnion(branches ...Branch) (*Union, error) {
	if len(branches) == 0 {
		return nil, &EmptyCombinatorError{Kind: "union"}
	}
	tags := util.MapIter(slices.Values(branches), func(b Branch) string { return b.Tag })
	if dup, ok := util.FirstDuplicate(tags); ok {
		logger.Debug("rejected union", "duplicate", dup)
		return nil, &DuplicateLabelError{Label: dup, Of: "tag"}
	}
	expected := branches[0].Space.Dimension()
	for _, b := range branches[1:] {
		if found := b.Space.Dimension(); found != expected {
			logger.Debug("rejected union", "tag", b.Tag, "expected", expected, "found", found)
			return nil, &ShapeMismatchError{Tag: b.Tag, Expected: expected, Found: found}
		}
	}
	if _, err := unionCard(branches); err != nil {
		logger.Debug("rejected union", "branches", len(branches), "error", err)
		return nil, err
	}

	index := immutable.NewMap[string, int](nil)
	for i, b := range branches {
		index = index.Set(b.Tag, i)
	}
	return &Union{branches: immutable.NewList(branches...), index: index}, nil
}

// WithBranch returns a new union with an extra last branch
func (u *Union) WithBranch(tag string, s Space) (*Union, error) {
	return NewUnion(append(u.Branches(), Branch{Tag: tag, Space: s})...)
}

func (u *Union) Len() int { return u.branches.Len() }

// Branch returns the space tagged tag
func (u *Union) Branch(tag string) (Space, bool) {
	i, ok := u.index.Get(tag)
	if !ok {
		return nil, false
	}
	return u.branches.Get(i).Space, true
}

func (u *Union) Branches() []Branch {
	out := make([]Branch, 0, u.branches.Len())
	for b := range u.all() {
		out = append(out, b)
	}
	return out
}

func (u *Union) all() iter.Seq[Branch] {
	return func(yield func(Branch) bool) {
		itr := u.branches.Iterator()
		for !itr.Done() {
			_, b := itr.Next()
			if !yield(b) {
				return
			}
		}
	}
}

func (u *Union) Cardinality() Cardinality {
	card, err := unionCard(u.Branches())
	if err != nil {
		// NewUnion already computed this successfully
		panic(err)
	}
	return card
}

func (u *Union) Dimension() Dimension {
	return u.branches.Get(0).Space.Dimension()
}

// Contains routes a Tagged value to the branch named by its tag.
// Any other value must be accepted by exactly one branch.
func (u *Union) Contains(v Value) bool {
	if tagged, ok := v.(Tagged); ok {
		branch, ok := u.Branch(tagged.Tag)
		return ok && branch.Contains(tagged.Value)
	}
	accepted := 0
	for b := range u.all() {
		if b.Space.Contains(v) {
			accepted++
		}
	}
	return accepted == 1
}

// Sample picks a branch with probability proportional to its cardinality when
// all branches are finite, so that elements are drawn uniformly. Otherwise it
// picks uniformly among the non-empty branches.
func (u *Union) Sample(rng *rand.Rand) (Value, error) {
	branches := slices.DeleteFunc(u.Branches(), func(b Branch) bool {
		return b.Space.Cardinality().IsEmpty()
	})
	if len(branches) == 0 {
		return nil, &EmptySpaceError{Space: u}
	}

	var chosen Branch
	if total, ok := u.Cardinality().Count(); ok {
		pick := rng.Uint64N(total)
		for _, b := range branches {
			count, _ := b.Space.Cardinality().Count()
			if pick < count {
				chosen = b
				break
			}
			pick -= count
		}
	} else {
		chosen = branches[rng.IntN(len(branches))]
	}

	v, err := chosen.Space.Sample(rng)
	if err != nil {
		return nil, err
	}
	return Tagged{Tag: chosen.Tag, Value: v}, nil
}

func (u *Union) values() (iter.Seq[Value], bool) {
	seqs := make([]iter.Seq[Value], 0, u.branches.Len())
	for b := range u.all() {
		seq, ok := Enumerate(b.Space)
		if !ok {
			return nil, false
		}
		tag := b.Tag
		seqs = append(seqs, util.MapIter(seq, func(v Value) Value {
			return Tagged{Tag: tag, Value: v}
		}))
	}
	return util.ConcatIter(seqs...), true
}

func (u *Union) children() iter.Seq[Space] {
	return util.MapIter(u.all(), func(b Branch) Space { return b.Space })
}

func (u *Union) String() string {
	parts := make([]string, 0, u.branches.Len())
	for b := range u.all() {
		parts = append(parts, b.Tag+": "+b.Space.String())
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

func (u *Union) Hash() uint64 {
	h := newStructHash("union").uint64(uint64(u.branches.Len()))
	for b := range u.all() {
		h.string(b.Tag).uint64(b.Space.Hash())
	}
	return h.sum()
}
