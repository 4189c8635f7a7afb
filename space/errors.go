package space

import (
	"errors"
	"fmt"
)

type ErrCode int

const (
	None ErrCode = iota
	InvalidBounds
	DuplicateLabel
	ShapeMismatch
	ArithmeticOverflow
	EmptyCombinator
	EmptySpace
	IncompatibleSpaces
)

func (c ErrCode) String() string {
	switch c {
	case InvalidBounds:
		return "InvalidBounds"
	case DuplicateLabel:
		return "DuplicateLabel"
	case ShapeMismatch:
		return "ShapeMismatch"
	case ArithmeticOverflow:
		return "ArithmeticOverflow"
	case EmptyCombinator:
		return "EmptyCombinator"
	case EmptySpace:
		return "EmptySpace"
	case IncompatibleSpaces:
		return "IncompatibleSpaces"
	default:
		return "None"
	}
}

// SpaceError is implemented by every error this package returns
type SpaceError interface {
	error
	Code() ErrCode
}

var (
	_ SpaceError = (*InvalidBoundsError)(nil)
	_ SpaceError = (*DuplicateLabelError)(nil)
	_ SpaceError = (*ShapeMismatchError)(nil)
	_ SpaceError = (*ArithmeticOverflowError)(nil)
	_ SpaceError = (*EmptyCombinatorError)(nil)
	_ SpaceError = (*EmptySpaceError)(nil)
	_ SpaceError = (*IncompatibleSpacesError)(nil)
)

// CodeOf returns the ErrCode of the first SpaceError in err's chain, or None
func CodeOf(err error) ErrCode {
	var spaceErr SpaceError
	if errors.As(err, &spaceErr) {
		return spaceErr.Code()
	}
	return None
}

func FormatWithCode(err error) string {
	code := CodeOf(err)
	if code == None {
		return err.Error()
	}
	return fmt.Sprintf("(E%03d) %s", code, err.Error())
}

type InvalidBoundsError struct {
	Lower, Upper Bound
	Reason       string
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("invalid bounds %s, %s: %s", e.Lower.lowerString(), e.Upper.upperString(), e.Reason)
}
func (e *InvalidBoundsError) Code() ErrCode { return InvalidBounds }

type DuplicateLabelError struct {
	Label string
	// Of is what the label names, e.g. "label" or "tag"
	Of string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate %s '%s'", e.Of, e.Label)
}
func (e *DuplicateLabelError) Code() ErrCode { return DuplicateLabel }

type ShapeMismatchError struct {
	Tag      string
	Expected Dimension
	Found    Dimension
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: branch '%s' has dimension %v, but the union expects %v", e.Tag, e.Found, e.Expected)
}
func (e *ShapeMismatchError) Code() ErrCode { return ShapeMismatch }

type ArithmeticOverflowError struct {
	Op       string
	Lhs, Rhs Cardinality
}

func (e *ArithmeticOverflowError) Error() string {
	return fmt.Sprintf("cardinality overflow: %v %s %v does not fit in 64 bits", e.Lhs, e.Op, e.Rhs)
}
func (e *ArithmeticOverflowError) Code() ErrCode { return ArithmeticOverflow }

type EmptyCombinatorError struct {
	Kind string
}

func (e *EmptyCombinatorError) Error() string {
	return fmt.Sprintf("a %s needs at least one child space", e.Kind)
}
func (e *EmptyCombinatorError) Code() ErrCode { return EmptyCombinator }

// EmptySpaceError is returned when sampling a space that has no elements
type EmptySpaceError struct {
	Space Space
}

func (e *EmptySpaceError) Error() string {
	return fmt.Sprintf("cannot sample from empty space %v", e.Space)
}
func (e *EmptySpaceError) Code() ErrCode { return EmptySpace }

// IncompatibleSpacesError is returned when a set operation has no result of the
// operands' kind, such as the union of a labelled set and an integer range
type IncompatibleSpacesError struct {
	Op          string
	Left, Right Space
}

func (e *IncompatibleSpacesError) Error() string {
	return fmt.Sprintf("cannot take the %s of %v and %v", e.Op, e.Left, e.Right)
}
func (e *IncompatibleSpacesError) Code() ErrCode { return IncompatibleSpaces }
