package hazard

import (
	"time"

	"github.com/riskforge/catrisk/sparse"
)

// Hazard is an event catalog over a centroid grid. Fields are exported
// for direct assembly; call Validate after building one by hand.
type Hazard struct {
	// Type identifies the peril, e.g. "TC". Vulnerability curves and
	// exposure columns are resolved against it.
	Type string
	// Units labels the intensity values, e.g. "m/s".
	Units string

	// Per-event fields, indexed by event row. Frequency (annual
	// occurrence rate) is required; the others are optional metadata
	// but must match the event count when present.
	EventID   []int64
	EventName []string
	Date      []time.Time
	Orig      []bool
	Frequency []float64

	// Intensity holds the hazard footprint, events × centroids.
	Intensity *sparse.CSR
	// Fraction optionally refines the affected share per cell. Nil or
	// empty means fully affected wherever intensity is nonzero.
	Fraction *sparse.CSR

	// Centroids georeferences the matrix columns. Required only for
	// coordinate-based exposure assignment.
	Centroids *Centroids
}

// New returns an empty catalog for the given hazard type.
func New(hazType string) *Hazard {
	return &Hazard{Type: hazType}
}

// Size returns the number of events in the catalog.
// Complexity: O(1).
func (h *Hazard) Size() int {
	if h.Intensity != nil {
		return h.Intensity.Rows()
	}
	return len(h.Frequency)
}

// NumCentroids returns the number of grid centroids.
// Complexity: O(1).
func (h *Hazard) NumCentroids() int {
	if h.Intensity != nil {
		return h.Intensity.Cols()
	}
	if h.Centroids != nil {
		return h.Centroids.Size()
	}
	return 0
}
