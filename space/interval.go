package space

import (
	"iter"
	"math"
	"math/rand/v2"
	"strconv"
)

// maxRejections bounds re-draws of endpoints excluded by open bounds
const maxRejections = 1024

// Bound is one side of an Interval. The zero value is Unbounded.
type Bound struct {
	value     float64
	inclusive bool
	bounded   bool
}

func Closed(v float64) Bound { return Bound{value: v, inclusive: true, bounded: true} }
func Open(v float64) Bound   { return Bound{value: v, bounded: true} }
func Unbounded() Bound       { return Bound{} }

// Value returns the bound's value, or false when unbounded
func (b Bound) Value() (float64, bool) { return b.value, b.bounded }
func (b Bound) Inclusive() bool        { return b.bounded && b.inclusive }
func (b Bound) IsBounded() bool        { return b.bounded }

func (b Bound) lowerString() string {
	if !b.bounded {
		return "(-∞"
	}
	if b.inclusive {
		return "[" + formatFloat(b.value)
	}
	return "(" + formatFloat(b.value)
}

func (b Bound) upperString() string {
	if !b.bounded {
		return "∞)"
	}
	if b.inclusive {
		return formatFloat(b.value) + "]"
	}
	return formatFloat(b.value) + ")"
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Interval is a range of reals, each side bounded or not, inclusive or not.
// Its elements are Real values.
//
// Sampling is uniform when both sides are bounded. Otherwise uniform is
// undefined and a reference distribution is used instead:
// a standard normal when both sides are unbounded,
// lower + Exp(1) when only the lower side is bounded,
// and upper - Exp(1) when only the upper side is bounded.
type Interval struct {
	lower, upper Bound
}

// NewInterval fails with InvalidBounds for NaN bounds, for a lower bound
// above the upper one, and for infinite bounds on the wrong side.
// An infinite bound on the correct side is the same as Unbounded.
func NewInterval(lower, upper Bound) (*Interval, error) {
	invalid := func(reason string) (*Interval, error) {
		logger.Debug("rejected interval", "lower", lower.lowerString(), "upper", upper.upperString(), "reason", reason)
		return nil, &InvalidBoundsError{Lower: lower, Upper: upper, Reason: reason}
	}
	if lower.bounded && math.IsNaN(lower.value) || upper.bounded && math.IsNaN(upper.value) {
		return invalid("bound is NaN")
	}
	if lower.bounded && math.IsInf(lower.value, 1) {
		return invalid("lower bound is +∞")
	}
	if upper.bounded && math.IsInf(upper.value, -1) {
		return invalid("upper bound is -∞")
	}
	if math.IsInf(lower.value, -1) {
		lower = Unbounded()
	}
	if math.IsInf(upper.value, 1) {
		upper = Unbounded()
	}
	if lower.bounded && upper.bounded && lower.value > upper.value {
		return invalid("lower bound is greater than upper bound")
	}
	return &Interval{lower: lower, upper: upper}, nil
}

func (i *Interval) Lower() Bound { return i.lower }
func (i *Interval) Upper() Bound { return i.upper }

// IsBounded reports whether both sides are bounded
func (i *Interval) IsBounded() bool { return i.lower.bounded && i.upper.bounded }

// Cardinality is Finite(1) for a closed point, Finite(0) for a point with an
// open side, and Infinite otherwise.
func (i *Interval) Cardinality() Cardinality {
	if i.IsBounded() && i.lower.value == i.upper.value {
		if i.lower.inclusive && i.upper.inclusive {
			return Finite(1)
		}
		return Finite(0)
	}
	return Infinite
}

func (i *Interval) Dimension() Dimension { return Scalar }

func (i *Interval) Contains(v Value) bool {
	r, ok := v.(Real)
	if !ok {
		return false
	}
	return i.containsFloat(float64(r))
}

func (i *Interval) containsFloat(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if i.lower.bounded && (x < i.lower.value || x == i.lower.value && !i.lower.inclusive) {
		return false
	}
	if i.upper.bounded && (x > i.upper.value || x == i.upper.value && !i.upper.inclusive) {
		return false
	}
	return true
}

func (i *Interval) Sample(rng *rand.Rand) (Value, error) {
	card := i.Cardinality()
	switch {
	case card.IsEmpty():
		return nil, &EmptySpaceError{Space: i}
	case card == Finite(1):
		return Real(i.lower.value), nil
	}
	draw := i.drawer(rng)
	for range maxRejections {
		if x := draw(); i.containsFloat(x) {
			return Real(x), nil
		}
	}
	// only reachable when no float64 lies strictly between two open bounds
	return nil, &EmptySpaceError{Space: i}
}

func (i *Interval) drawer(rng *rand.Rand) func() float64 {
	lo, hi := i.lower.value, i.upper.value
	switch {
	case i.IsBounded():
		return func() float64 {
			u := rng.Float64()
			// interpolating avoids overflowing hi-lo for very wide intervals
			return (1-u)*lo + u*hi
		}
	case i.lower.bounded:
		return func() float64 { return lo + rng.ExpFloat64() }
	case i.upper.bounded:
		return func() float64 { return hi - rng.ExpFloat64() }
	default:
		return rng.NormFloat64
	}
}

// Clip maps x onto the closest point of the interval's closure
func (i *Interval) Clip(x float64) float64 {
	if i.lower.bounded && x < i.lower.value {
		return i.lower.value
	}
	if i.upper.bounded && x > i.upper.value {
		return i.upper.value
	}
	return x
}

// Inf is the lower bound value even when it is exclusive
func (i *Interval) Inf() (Value, bool) {
	if !i.lower.bounded || i.Cardinality().IsEmpty() {
		return nil, false
	}
	return Real(i.lower.value), true
}

// Sup is the upper bound value even when it is exclusive
func (i *Interval) Sup() (Value, bool) {
	if !i.upper.bounded || i.Cardinality().IsEmpty() {
		return nil, false
	}
	return Real(i.upper.value), true
}

func (i *Interval) children() iter.Seq[Space] { return noChildren }

func (i *Interval) String() string {
	return i.lower.lowerString() + ", " + i.upper.upperString()
}

func (i *Interval) Hash() uint64 {
	return newStructHash("interval").
		bool(i.lower.bounded).bool(i.lower.inclusive).uint64(math.Float64bits(i.lower.value)).
		bool(i.upper.bounded).bool(i.upper.inclusive).uint64(math.Float64bits(i.upper.value)).
		sum()
}
