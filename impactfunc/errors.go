package impactfunc

import "errors"

// Sentinel errors returned by this package. Messages carry the
// "impactfunc:" prefix; wrap with fmt.Errorf("%w: ...") to attach the
// offending identifiers.
var (
	// ErrFuncNotFound indicates a lookup for an unregistered
	// (hazard type, function id) pair.
	ErrFuncNotFound = errors.New("impactfunc: function not found")

	// ErrBadCurve indicates malformed curve samples: unequal slice
	// lengths, no samples, decreasing intensity, or non-finite values.
	ErrBadCurve = errors.New("impactfunc: malformed curve")

	// ErrNoHazType indicates a curve without a hazard type identifier.
	ErrNoHazType = errors.New("impactfunc: missing hazard type")

	// ErrDuplicateFunc indicates an Add colliding with a registered curve.
	ErrDuplicateFunc = errors.New("impactfunc: function already registered")
)
