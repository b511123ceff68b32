// Package exposures holds the asset portfolio side of a risk
// computation: per-point coordinates, monetary values, optional
// insurance terms, and the per-hazard-type columns binding each point
// to a vulnerability curve and a hazard grid cell.
//
// An Exposures value is columnar. The exported slices (Lat, Lon, Value,
// Deductible, Cover) are indexed by point and share one length. The
// vulnerability and centroid columns are keyed by hazard type and
// managed through SetFuncIDs, FuncIDs, SetCentroids and Centroids; an
// empty hazard type names the default vulnerability column, used
// whenever no type-specific one exists.
//
// AssignCentroids fills the centroid column for a hazard by
// nearest-neighbour matching against its grid, leaving points farther
// than DefaultAssignThresholdKm unassigned.
//
// # Errors
//
// Operations report failures with wrapped sentinel errors:
//
//   - ErrLengthMismatch: a column length does not match the point count.
//   - ErrNoFuncColumn: no vulnerability column serves the hazard type.
//   - ErrNoCoordinates: point coordinates are missing.
//
// Centroid matching against a hazard without a grid wraps
// hazard.ErrNoCentroids.
package exposures
