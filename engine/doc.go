// Package engine computes probabilistic risk impacts by combining an
// exposure portfolio, a vulnerability curve set and a hazard event
// catalog.
//
// A Calculator binds the three inputs and stays stateless across
// calls. Impact computes the gross impact, ignoring any insurance
// terms on the portfolio; InsuredImpact nets each event's impact
// against the per-point deductible and cover. Both reduce to an Impact
// value holding the per-event totals (AtEvent), the expected annual
// impact per point (EAIExp) and their aggregate (AAIAgg), plus the
// full event × point matrix when requested via WithSaveMatrix.
//
// The computation streams: the portfolio is filtered to points with
// value and an assigned centroid, grouped by vulnerability curve, and
// split into chunks so no intermediate matrix exceeds the configured
// cell budget. MatrixChunks and InsuredChunks expose that stream
// directly for callers accumulating their own metrics; StitchMatrix
// and StitchRiskMetrics are the two built-in reductions. Chunk columns
// are addressed by original portfolio position throughout, so partial
// results always land at the right points regardless of filtering or
// chunking.
//
// A Calculator is safe for concurrent use once the portfolio's
// centroids are assigned for the hazard type; the first computation
// assigns them when missing.
//
// # Errors
//
// Operations report failures with wrapped sentinel errors:
//
//   - ErrNoInsuranceTerms: InsuredImpact on a portfolio with neither
//     deductible nor cover.
//   - ErrMatrixBudget: the event count alone exceeds the cell budget.
//   - ErrBadChunk: a stream chunk whose positions do not match its
//     matrix.
//   - ErrVectorLength: values and centroid indices of differing length.
//
// Collaborator errors pass through wrapped: exposures.ErrNoFuncColumn
// when no vulnerability column serves the hazard type,
// impactfunc.ErrFuncNotFound when a referenced curve id is missing,
// and the hazard and sparse sentinels for malformed inputs.
package engine
