package sparse

import "errors"

// Sentinel errors returned by this package. Messages are prefixed with
// "sparse:" so they stay recognizable after wrapping. Return them directly;
// wrap with fmt.Errorf("%w: ...") only when adding coordinates or shapes.
var (
	// ErrBadDimension indicates a negative row or column count.
	ErrBadDimension = errors.New("sparse: matrix dimensions must be non-negative")

	// ErrShapeMismatch indicates two operands have incompatible shapes.
	ErrShapeMismatch = errors.New("sparse: matrix shapes do not match")

	// ErrVectorLength indicates a vector argument whose length does not
	// match the matrix dimension it applies to.
	ErrVectorLength = errors.New("sparse: vector length does not match matrix dimension")

	// ErrTripletLength indicates row, column and value slices of unequal length.
	ErrTripletLength = errors.New("sparse: triplet slices must have equal length")

	// ErrIndexOutOfRange indicates a row or column index outside the matrix shape.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrRagged indicates dense input whose rows have unequal lengths.
	ErrRagged = errors.New("sparse: dense rows must have equal length")

	// ErrEmptyStack indicates a stack operation over zero matrices.
	ErrEmptyStack = errors.New("sparse: no matrices to stack")
)
