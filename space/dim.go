package space

import "fmt"

// Dimension is the shape of an element of a space: a scalar or a flat vector.
// The zero value is Scalar.
type Dimension struct {
	// length is 0 for scalars
	length int
}

var Scalar = Dimension{}

// Vector is the dimension of a flat vector of length elements.
//
// Vector panics if length is not positive: a zero-length vector is not a
// dimension, and callers building one from untrusted input must check it first.
func Vector(length int) Dimension {
	if length < 1 {
		panic(fmt.Sprintf("vector dimension must be positive, got %d", length))
	}
	return Dimension{length: length}
}

func (d Dimension) IsScalar() bool { return d.length == 0 }

// Len returns the vector length, or false for scalars
func (d Dimension) Len() (int, bool) {
	return d.length, d.length > 0
}

// Size is the flattened size: 1 for scalars, the length for vectors
func (d Dimension) Size() int {
	return max(d.length, 1)
}

func (d Dimension) String() string {
	if d.IsScalar() {
		return "Scalar"
	}
	return fmt.Sprintf("Vector(%d)", d.length)
}

// productDim flattens the children: a product is a vector of the sum of their sizes
func productDim(children []Space) Dimension {
	size := 0
	for _, child := range children {
		size += child.Dimension().Size()
	}
	return Vector(size)
}
