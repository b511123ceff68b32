package exposures

import "fmt"

const (
	// DefaultAssignThresholdKm caps the nearest-neighbour matching
	// distance. Points farther from every centroid stay unassigned.
	DefaultAssignThresholdKm = 100.0

	// UnsetFuncID marks points not bound to any vulnerability curve.
	// They contribute nothing to a computed impact.
	UnsetFuncID = -1

	// Unassigned marks points with no centroid within the matching
	// threshold. They contribute nothing to a computed impact.
	Unassigned = -1
)

// Exposures is a columnar asset portfolio. The exported slices are
// indexed by point; Lat, Lon and Value are required and must share one
// length, checked by Validate. Deductible and Cover are optional
// insurance terms.
type Exposures struct {
	// Description labels the portfolio.
	Description string
	// RefYear is the reference year of the asset values.
	RefYear int
	// ValueUnit labels Value, e.g. "USD".
	ValueUnit string

	Lat   []float64
	Lon   []float64
	Value []float64

	// Deductible is retained by the asset owner per event, Cover caps
	// the payout per event. Both are optional.
	Deductible []float64
	Cover      []float64

	funcIDs   map[string][]int
	centroids map[string][]int
}

// NumPoints returns the number of portfolio points.
// Complexity: O(1).
func (e *Exposures) NumPoints() int { return len(e.Value) }

// TotalValue returns the summed value of every point.
// Complexity: O(points).
func (e *Exposures) TotalValue() float64 {
	var total float64
	for _, v := range e.Value {
		total += v
	}
	return total
}

// Validate checks the exported columns: coordinates present, required
// columns sharing one length, optional ones matching it when set.
//
// Complexity: O(1).
func (e *Exposures) Validate() error {
	n := e.NumPoints()
	if n > 0 && (len(e.Lat) == 0 || len(e.Lon) == 0) {
		return ErrNoCoordinates
	}
	for _, c := range []struct {
		name     string
		got      int
		optional bool
	}{
		{"latitude", len(e.Lat), false},
		{"longitude", len(e.Lon), false},
		{"deductible", len(e.Deductible), true},
		{"cover", len(e.Cover), true},
	} {
		if c.optional && c.got == 0 {
			continue
		}
		if c.got != n {
			return fmt.Errorf("%w: %s has %d entries for %d points", ErrLengthMismatch, c.name, c.got, n)
		}
	}
	return nil
}
