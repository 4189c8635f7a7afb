package space

import "slices"

// Union is the smallest interval containing both i and o, gap included
func (i *Interval) Union(o *Interval) *Interval {
	switch {
	case o.Cardinality().IsEmpty():
		return i
	case i.Cardinality().IsEmpty():
		return o
	}
	return &Interval{
		lower: looserBound(i.lower, o.lower, -1),
		upper: looserBound(i.upper, o.upper, 1),
	}
}

// Intersect is the interval of the reals in both i and o.
// It returns false when they share no element.
func (i *Interval) Intersect(o *Interval) (*Interval, bool) {
	lower := tighterBound(i.lower, o.lower, -1)
	upper := tighterBound(i.upper, o.upper, 1)
	if lower.bounded && upper.bounded && lower.value > upper.value {
		return nil, false
	}
	out := &Interval{lower: lower, upper: upper}
	if out.Cardinality().IsEmpty() {
		return nil, false
	}
	return out, true
}

// looserBound picks the bound admitting more values. side is -1 for lower
// bounds and 1 for upper ones.
func looserBound(a, b Bound, side float64) Bound {
	switch {
	case !a.bounded || !b.bounded:
		return Unbounded()
	case a.value == b.value:
		if a.inclusive {
			return a
		}
		return b
	case (a.value-b.value)*side > 0:
		return a
	default:
		return b
	}
}

// tighterBound picks the bound admitting fewer values, like looserBound
func tighterBound(a, b Bound, side float64) Bound {
	switch {
	case !a.bounded:
		return b
	case !b.bounded:
		return a
	case a.value == b.value:
		if a.inclusive {
			return b
		}
		return a
	case (a.value-b.value)*side < 0:
		return a
	default:
		return b
	}
}

// Union of two ranges is the smallest range covering both, gap included.
// Labelled sets keep d's labels in order followed by the new labels of o.
// A labelled set and a non-empty range cannot be united.
func (d *Discrete) Union(o *Discrete) (*Discrete, error) {
	switch {
	case o.Size() == 0:
		return d, nil
	case d.Size() == 0:
		return o, nil
	case d.isRange && o.isRange:
		return NewRange(min(d.start, o.start), max(d.end, o.end))
	case !d.isRange && !o.isRange:
		labels := slices.Clone(d.labels)
		for _, label := range o.labels {
			if _, ok := d.index.Get(label); !ok {
				labels = append(labels, label)
			}
		}
		return NewDiscrete(labels...)
	default:
		logger.Debug("rejected discrete union", "left", d.String(), "right", o.String())
		return nil, &IncompatibleSpacesError{Op: "union", Left: d, Right: o}
	}
}

// Intersect keeps the elements of d that o contains, in d's order and form.
// Labels never equal integers, so mixing the two forms gives an empty space.
func (d *Discrete) Intersect(o *Discrete) *Discrete {
	if d.isRange {
		if !o.isRange {
			return &Discrete{isRange: true, start: d.start, end: d.start}
		}
		start, end := max(d.start, o.start), min(d.end, o.end)
		return &Discrete{isRange: true, start: start, end: max(start, end)}
	}
	kept := slices.DeleteFunc(slices.Clone(d.labels), func(label string) bool {
		return !o.Contains(Label(label))
	})
	// a subset of unique labels stays unique
	out, _ := NewDiscrete(kept...)
	return out
}

func (b *Binary) Union(*Binary) *Binary     { return b }
func (b *Binary) Intersect(*Binary) *Binary { return b }
