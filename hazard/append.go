package hazard

import (
	"fmt"

	"github.com/riskforge/catrisk/sparse"
)

// Append concatenates the events of the given catalogs onto the
// receiver. All catalogs must share the hazard type and centroid grid,
// and each optional per-event field must be carried by either all
// catalogs or none. Units are adopted from the first catalog that sets
// them; two conflicting non-empty units fail with ErrUnitsMismatch.
//
// When any catalog carries explicit fraction entries, catalogs without
// them contribute the fully-affected default on their intensity
// pattern, so the combined fraction stays faithful per event.
//
// On error the receiver is left unchanged.
//
// Complexity: O(total events + total nnz).
func (h *Hazard) Append(others ...*Hazard) error {
	if len(others) == 0 {
		return nil
	}
	if err := h.Validate(); err != nil {
		return fmt.Errorf("hazard: appending to invalid catalog: %w", err)
	}
	units := h.Units
	cents := h.Centroids
	for _, o := range others {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("hazard: appending invalid catalog: %w", err)
		}
		if o.Type != h.Type {
			return fmt.Errorf("%w: %q and %q", ErrTypeMismatch, h.Type, o.Type)
		}
		switch {
		case units == "":
			units = o.Units
		case o.Units == "":
		case o.Units != units:
			return fmt.Errorf("%w: %q and %q", ErrUnitsMismatch, units, o.Units)
		}
		if err := checkGrids(h, o); err != nil {
			return err
		}
		if cents == nil {
			cents = o.Centroids
		}
		for _, f := range []struct {
			name string
			a, b int
		}{
			{"event ids", len(h.EventID), len(o.EventID)},
			{"event names", len(h.EventName), len(o.EventName)},
			{"event dates", len(h.Date), len(o.Date)},
			{"orig flags", len(h.Orig), len(o.Orig)},
		} {
			if (f.a > 0) != (f.b > 0) {
				return fmt.Errorf("%w: %s carried by only some catalogs", ErrFieldMissing, f.name)
			}
		}
	}

	explicit := explicitFraction(h)
	for _, o := range others {
		if explicitFraction(o) {
			explicit = true
		}
	}

	intens := make([]*sparse.CSR, 0, len(others)+1)
	intens = append(intens, h.Intensity)
	for _, o := range others {
		intens = append(intens, o.Intensity)
	}
	stacked, err := sparse.VStack(intens...)
	if err != nil {
		return fmt.Errorf("hazard: stacking intensity: %w", err)
	}

	var fract *sparse.CSR
	if explicit {
		fracts := make([]*sparse.CSR, 0, len(others)+1)
		fracts = append(fracts, fractionOrOnes(h))
		for _, o := range others {
			fracts = append(fracts, fractionOrOnes(o))
		}
		if fract, err = sparse.VStack(fracts...); err != nil {
			return fmt.Errorf("hazard: stacking fraction: %w", err)
		}
	}

	for _, o := range others {
		h.EventID = append(h.EventID, o.EventID...)
		h.EventName = append(h.EventName, o.EventName...)
		h.Date = append(h.Date, o.Date...)
		h.Orig = append(h.Orig, o.Orig...)
		h.Frequency = append(h.Frequency, o.Frequency...)
	}
	h.Units = units
	h.Centroids = cents
	h.Intensity = stacked
	h.Fraction = fract
	return nil
}

// explicitFraction reports whether the catalog carries stored fraction
// entries rather than the fully-affected default.
func explicitFraction(h *Hazard) bool {
	return h.Fraction != nil && h.Fraction.NNZ() > 0
}

// fractionOrOnes returns the catalog's fraction matrix, materializing
// the fully-affected default on the intensity pattern when absent.
func fractionOrOnes(h *Hazard) *sparse.CSR {
	if explicitFraction(h) {
		return h.Fraction
	}
	ones := h.Intensity.Clone()
	ones.Apply(affectedOne)
	return ones
}

// checkGrids verifies both catalogs cover the same centroid grid:
// exact coordinates when both sides carry them, column counts
// otherwise.
func checkGrids(a, b *Hazard) error {
	if a.Centroids != nil && b.Centroids != nil {
		ca, cb := a.Centroids, b.Centroids
		if ca.Size() != cb.Size() {
			return fmt.Errorf("%w: %d and %d centroids", ErrCentroidMismatch, ca.Size(), cb.Size())
		}
		for i := range ca.Lat {
			if ca.Lat[i] != cb.Lat[i] || ca.Lon[i] != cb.Lon[i] {
				return fmt.Errorf("%w: coordinates differ at centroid %d", ErrCentroidMismatch, i)
			}
		}
		return nil
	}
	if a.NumCentroids() != b.NumCentroids() {
		return fmt.Errorf("%w: %d and %d centroids", ErrCentroidMismatch, a.NumCentroids(), b.NumCentroids())
	}
	return nil
}
