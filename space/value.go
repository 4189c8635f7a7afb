package space

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Value is an element of a space.
// Primitive spaces hold Label, Int, Real, Bool or Unit values,
// products hold a Tuple and unions a Tagged value.
type Value interface {
	fmt.Stringer
	isValue()
}

var (
	_ Value = Label("")
	_ Value = Int(0)
	_ Value = Real(0)
	_ Value = Bool(false)
	_ Value = Unit{}
	_ Value = Tuple(nil)
	_ Value = Tagged{}
)

type Label string

func (Label) isValue()         {}
func (l Label) String() string { return string(l) }

type Int int64

func (Int) isValue()         {}
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

type Real float64

func (Real) isValue()         {}
func (r Real) String() string { return strconv.FormatFloat(float64(r), 'g', -1, 64) }

type Bool bool

func (Bool) isValue()         {}
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Unit is the only element of the unit singleton
type Unit struct{}

func (Unit) isValue()       {}
func (Unit) String() string { return "()" }

type Tuple []Value

func (Tuple) isValue() {}
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Tagged is an element of a union: the branch tag and the value inside that branch
type Tagged struct {
	Tag   string
	Value Value
}

func (Tagged) isValue() {}
func (t Tagged) String() string {
	return t.Tag + ":" + fmt.Sprint(t.Value)
}

// EqualValues compares values structurally. NaN reals are never equal.
func EqualValues(a, b Value) bool {
	switch a := a.(type) {
	case Tuple:
		b, ok := b.(Tuple)
		return ok && slices.EqualFunc(a, b, EqualValues)
	case Tagged:
		b, ok := b.(Tagged)
		return ok && a.Tag == b.Tag && EqualValues(a.Value, b.Value)
	case nil:
		return b == nil
	default:
		return a == b
	}
}
