package space

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/spaces/util"
)

// Discrete is a finite, ordered set of values.
// It is either a set of unique string labels, whose elements are Label values,
// or an integer range [start, end), whose elements are Int values.
type Discrete struct {
	labels []string
	index  *immutable.Map[string, int]

	isRange    bool
	start, end int64
}

// NewDiscrete builds a space over labels, in order.
// No labels is legal and makes a space of cardinality Finite(0).
func NewDiscrete(labels ...string) (*Discrete, error) {
	if dup, ok := util.FirstDuplicate(slices.Values(labels)); ok {
		logger.Debug("rejected discrete space", "duplicate", dup)
		return nil, &DuplicateLabelError{Label: dup, Of: "label"}
	}
	index := immutable.NewMap[string, int](nil)
	for i, label := range labels {
		index = index.Set(label, i)
	}
	return &Discrete{labels: slices.Clone(labels), index: index}, nil
}

// NewRange builds the integer space [start, end)
func NewRange(start, end int64) (*Discrete, error) {
	if end < start {
		logger.Debug("rejected integer range", "start", start, "end", end)
		return nil, &InvalidBoundsError{
			Lower:  Closed(float64(start)),
			Upper:  Open(float64(end)),
			Reason: "range end is before its start",
		}
	}
	return &Discrete{isRange: true, start: start, end: end}, nil
}

// Size is the number of elements
func (d *Discrete) Size() uint64 {
	if d.isRange {
		// two's complement keeps this exact even when end-start overflows int64
		return uint64(d.end) - uint64(d.start)
	}
	return uint64(len(d.labels))
}

func (d *Discrete) IsRange() bool { return d.isRange }

// Labels returns a copy of the labels, or nil for integer ranges
func (d *Discrete) Labels() []string { return slices.Clone(d.labels) }

// Bounds returns [start, end) for integer ranges
func (d *Discrete) Bounds() (start, end int64, ok bool) {
	return d.start, d.end, d.isRange
}

// Index returns the position of v in the ordered set
func (d *Discrete) Index(v Value) (uint64, bool) {
	switch v := v.(type) {
	case Label:
		if d.isRange {
			return 0, false
		}
		i, ok := d.index.Get(string(v))
		return uint64(i), ok
	case Int:
		if !d.isRange || int64(v) < d.start || int64(v) >= d.end {
			return 0, false
		}
		return uint64(int64(v)) - uint64(d.start), true
	default:
		return 0, false
	}
}

// At returns the element at position i, which must be smaller than Size
func (d *Discrete) At(i uint64) Value {
	if d.isRange {
		return Int(int64(uint64(d.start) + i))
	}
	return Label(d.labels[i])
}

func (d *Discrete) Cardinality() Cardinality { return Finite(d.Size()) }
func (d *Discrete) Dimension() Dimension     { return Scalar }

func (d *Discrete) Contains(v Value) bool {
	_, ok := d.Index(v)
	return ok
}

func (d *Discrete) Sample(rng *rand.Rand) (Value, error) {
	size := d.Size()
	if size == 0 {
		return nil, &EmptySpaceError{Space: d}
	}
	return d.At(rng.Uint64N(size)), nil
}

func (d *Discrete) Inf() (Value, bool) {
	if d.Size() == 0 {
		return nil, false
	}
	return d.At(0), true
}

func (d *Discrete) Sup() (Value, bool) {
	size := d.Size()
	if size == 0 {
		return nil, false
	}
	return d.At(size - 1), true
}

func (d *Discrete) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for i := uint64(0); i < d.Size(); i++ {
			if !yield(d.At(i)) {
				return
			}
		}
	}
}

func (d *Discrete) children() iter.Seq[Space] { return noChildren }

func (d *Discrete) String() string {
	if d.isRange {
		if d.Size() == 0 {
			return "{}"
		}
		return fmt.Sprintf("{%d..%d}", d.start, d.end-1)
	}
	return "{" + strings.Join(d.labels, ", ") + "}"
}

func (d *Discrete) Hash() uint64 {
	if d.isRange {
		return newStructHash("range").uint64(uint64(d.start)).uint64(uint64(d.end)).sum()
	}
	h := newStructHash("discrete").uint64(uint64(len(d.labels)))
	for _, label := range d.labels {
		h.string(label)
	}
	return h.sum()
}
