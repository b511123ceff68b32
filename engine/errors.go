package engine

import "errors"

var (
	// ErrNoInsuranceTerms reports an insured computation on a portfolio
	// carrying neither deductible nor cover columns.
	ErrNoInsuranceTerms = errors.New("engine: neither cover nor deductible defined on the exposures")

	// ErrMatrixBudget reports a hazard whose event count alone exceeds
	// the matrix cell budget, so not even a single-point chunk fits.
	ErrMatrixBudget = errors.New("engine: event count exceeds the matrix cell budget")

	// ErrBadChunk reports a stream chunk whose position slice does not
	// match its matrix columns or addresses points out of range.
	ErrBadChunk = errors.New("engine: chunk positions do not match the chunk matrix")

	// ErrVectorLength reports per-point vectors of differing lengths.
	ErrVectorLength = errors.New("engine: values and centroid indices differ in length")
)
