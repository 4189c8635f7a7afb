package util

import (
	"iter"

	"github.com/hashicorp/go-set/v3"
)

func ConcatIter[A any](iter ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, thisIter := range iter {
			for v := range thisIter {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func MapIter[A, B any](iter iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range iter {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// FirstDuplicate returns the first element of s that was already seen earlier in s
func FirstDuplicate[A comparable](s iter.Seq[A]) (A, bool) {
	seen := set.New[A](0)
	for item := range s {
		if !seen.Insert(item) {
			return item, true
		}
	}
	var zero A
	return zero, false
}

// Cartesian yields every combination of one element per factor, varying the last factor fastest.
// Factors are functions so that each one can be restarted for every prefix.
func Cartesian[A any](factors []func() iter.Seq[A]) iter.Seq[[]A] {
	return func(yield func([]A) bool) {
		if len(factors) == 0 {
			return
		}
		current := make([]A, len(factors))
		var rec func(i int) bool
		rec = func(i int) bool {
			if i == len(factors) {
				return yield(append([]A(nil), current...))
			}
			for v := range factors[i]() {
				current[i] = v
				if !rec(i + 1) {
					return false
				}
			}
			return true
		}
		rec(0)
	}
}
