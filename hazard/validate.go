package hazard

import "fmt"

// Validate checks the catalog invariants: a hazard type, an intensity
// matrix, one frequency per event, optional fields covering every event
// when present, a fraction shaped like the intensity, and one centroid
// per matrix column.
//
// Complexity: O(events + centroids).
func (h *Hazard) Validate() error {
	if h.Type == "" {
		return ErrNoType
	}
	if h.Intensity == nil {
		return ErrNoIntensity
	}
	n := h.Intensity.Rows()
	if len(h.Frequency) != n {
		return fmt.Errorf("%w: frequency has %d entries for %d events", ErrFieldLength, len(h.Frequency), n)
	}
	for _, f := range []struct {
		name string
		got  int
	}{
		{"event ids", len(h.EventID)},
		{"event names", len(h.EventName)},
		{"event dates", len(h.Date)},
		{"orig flags", len(h.Orig)},
	} {
		if f.got > 0 && f.got != n {
			return fmt.Errorf("%w: %s has %d entries for %d events", ErrFieldLength, f.name, f.got, n)
		}
	}
	if h.Fraction != nil {
		if h.Fraction.Rows() != h.Intensity.Rows() || h.Fraction.Cols() != h.Intensity.Cols() {
			return fmt.Errorf("%w: intensity %dx%d, fraction %dx%d", ErrMatrixShape,
				h.Intensity.Rows(), h.Intensity.Cols(), h.Fraction.Rows(), h.Fraction.Cols())
		}
	}
	if h.Centroids != nil {
		if err := h.Centroids.Validate(); err != nil {
			return err
		}
		if h.Centroids.Size() != h.Intensity.Cols() {
			return fmt.Errorf("%w: %d centroids for %d columns", ErrCentroidCount, h.Centroids.Size(), h.Intensity.Cols())
		}
	}
	return nil
}
