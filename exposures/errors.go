package exposures

import "errors"

var (
	// ErrLengthMismatch reports a per-point column whose length differs
	// from the portfolio's point count.
	ErrLengthMismatch = errors.New("exposures: column length does not match point count")

	// ErrNoFuncColumn reports a hazard type with neither a dedicated nor
	// a default vulnerability column.
	ErrNoFuncColumn = errors.New("exposures: no vulnerability column for hazard type")

	// ErrNoCoordinates reports an operation needing point coordinates on
	// a portfolio that carries none.
	ErrNoCoordinates = errors.New("exposures: point coordinates missing")
)
