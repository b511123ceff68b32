package hazard

import "errors"

// Sentinel errors returned by this package, prefixed "hazard:". Wrap
// with fmt.Errorf("%w: ...") to attach identifiers or counts.
var (
	// ErrNoType indicates a hazard without a type identifier.
	ErrNoType = errors.New("hazard: missing hazard type")

	// ErrNoIntensity indicates a hazard without an intensity matrix.
	ErrNoIntensity = errors.New("hazard: intensity matrix missing")

	// ErrFieldLength indicates a per-event field whose length does not
	// match the event count.
	ErrFieldLength = errors.New("hazard: field length does not match event count")

	// ErrMatrixShape indicates fraction and intensity shapes disagree.
	ErrMatrixShape = errors.New("hazard: intensity and fraction shapes disagree")

	// ErrCentroidCount indicates centroids and intensity columns disagree.
	ErrCentroidCount = errors.New("hazard: centroid count does not match intensity columns")

	// ErrCoordLength indicates latitude and longitude lengths differ.
	ErrCoordLength = errors.New("hazard: centroid coordinate lengths differ")

	// ErrTypeMismatch indicates an Append across hazard types.
	ErrTypeMismatch = errors.New("hazard: hazard types differ")

	// ErrUnitsMismatch indicates an Append across intensity units.
	ErrUnitsMismatch = errors.New("hazard: intensity units differ")

	// ErrCentroidMismatch indicates an Append across centroid grids.
	ErrCentroidMismatch = errors.New("hazard: centroid grids differ")

	// ErrFieldMissing indicates an operation touching an optional
	// per-event field that is not populated.
	ErrFieldMissing = errors.New("hazard: optional field not populated")

	// ErrEventNotFound indicates a selection referencing an unknown event.
	ErrEventNotFound = errors.New("hazard: event not found")

	// ErrNoEvents indicates a selection that matches nothing.
	ErrNoEvents = errors.New("hazard: selection matches no events")

	// ErrNoCentroids indicates a coordinate operation on a hazard
	// without centroids.
	ErrNoCentroids = errors.New("hazard: no centroids defined")
)
