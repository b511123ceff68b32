// Package hazard models an event catalog over a grid of centroids: one
// row per event, one column per centroid, with sparse intensity and
// affected-fraction fields plus per-event metadata.
//
// The impact engine consumes hazards through three accessors, each taking
// a batch of (possibly repeated, unordered) centroid indices:
//
//   - GetMDR       — intensity mapped through a vulnerability curve's
//     mean damage ratio.
//   - GetPAA       — intensity mapped through the probability of
//     affection curve.
//   - GetFraction  — affected fraction per cell; an absent or empty
//     Fraction matrix reads as 1 wherever intensity is nonzero.
//
// Accessors deduplicate the requested centroids, evaluate once per
// distinct column, then expand back to the requested order, so scattered
// and overlapping requests stay cheap.
//
// Catalog maintenance is explicit and per-field: Select copies a subset
// of events into a new catalog, Append concatenates another catalog of
// the same type and grid, Validate checks cross-field consistency.
// Centroids georeferences the columns and answers nearest-neighbour
// queries for exposure assignment.
//
// # Errors
//
//	ErrNoType           - hazard type identifier missing.
//	ErrNoIntensity      - intensity matrix missing.
//	ErrFieldLength      - per-event field length does not match the event count.
//	ErrMatrixShape      - intensity and fraction shapes disagree.
//	ErrCentroidCount    - centroid count does not match intensity columns.
//	ErrCoordLength      - centroid latitude/longitude lengths differ.
//	ErrTypeMismatch     - appending catalogs of different hazard types.
//	ErrUnitsMismatch    - appending catalogs with different intensity units.
//	ErrCentroidMismatch - appending catalogs on different grids.
//	ErrFieldMissing     - operation needs an optional field that is not populated.
//	ErrEventNotFound    - selection references an unknown event.
//	ErrNoEvents         - selection matches no events.
//	ErrNoCentroids      - operation needs centroids but none are defined.
package hazard
