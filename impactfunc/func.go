package impactfunc

import (
	"fmt"
	"math"
	"sort"
)

// ImpactFunc is one vulnerability curve: MDD and PAA sampled over
// non-decreasing hazard intensity. Fields are exported for direct
// assembly; call Validate before first use, or register through
// Set.Add which validates on entry.
type ImpactFunc struct {
	// HazType identifies the hazard the curve applies to, e.g. "TC".
	HazType string
	// ID distinguishes curves of the same hazard type.
	ID int
	// Name is a free-form label, informational only.
	Name string
	// IntensityUnit labels the intensity axis, e.g. "m/s".
	IntensityUnit string

	// Intensity holds the sample points, non-decreasing. Repeating a
	// value creates a step discontinuity there.
	Intensity []float64
	// MDD holds the mean damage degree per sample.
	MDD []float64
	// PAA holds the probability of affection per sample.
	PAA []float64
}

// CalcMDR returns the mean damage ratio at the given intensity: the
// product curve MDD·PAA evaluated by linear interpolation between
// samples, clamped to the endpoint values outside the sampled range.
// Complexity: O(log len(Intensity)).
func (f *ImpactFunc) CalcMDR(inten float64) float64 {
	return f.interp(inten, func(k int) float64 { return f.MDD[k] * f.PAA[k] })
}

// CalcPAA returns the probability of affection at the given intensity,
// interpolated the same way as CalcMDR.
// Complexity: O(log len(Intensity)).
func (f *ImpactFunc) CalcPAA(inten float64) float64 {
	return f.interp(inten, func(k int) float64 { return f.PAA[k] })
}

// interp evaluates the piecewise-linear curve (Intensity[k], y(k)) at x.
// The bracketing segment is the one ending at the largest sample ≤ x, so
// with repeated samples the later one wins at the exact step location.
func (f *ImpactFunc) interp(x float64, y func(int) float64) float64 {
	xs := f.Intensity
	if len(xs) == 0 {
		return 0
	}
	// Largest j with xs[j] <= x, or -1 when x precedes all samples.
	j := sort.Search(len(xs), func(k int) bool { return xs[k] > x }) - 1
	switch {
	case j < 0:
		return y(0)
	case j == len(xs)-1 || xs[j] == x:
		return y(j)
	}
	t := (x - xs[j]) / (xs[j+1] - xs[j])
	y0, y1 := y(j), y(j+1)
	return y0 + t*(y1-y0)
}

// Validate reports whether the curve is usable: a hazard type is set,
// all three sample slices share the same nonzero length, intensity is
// non-decreasing, and every value is finite.
// Complexity: O(len(Intensity)).
func (f *ImpactFunc) Validate() error {
	if f.HazType == "" {
		return fmt.Errorf("%w: id %d", ErrNoHazType, f.ID)
	}
	n := len(f.Intensity)
	if n == 0 {
		return fmt.Errorf("%w: id %d has no samples", ErrBadCurve, f.ID)
	}
	if len(f.MDD) != n || len(f.PAA) != n {
		return fmt.Errorf("%w: id %d has %d intensity, %d mdd, %d paa samples",
			ErrBadCurve, f.ID, n, len(f.MDD), len(f.PAA))
	}
	for k := 0; k < n; k++ {
		if k > 0 && f.Intensity[k] < f.Intensity[k-1] {
			return fmt.Errorf("%w: id %d intensity decreases at sample %d", ErrBadCurve, f.ID, k)
		}
		if !finite(f.Intensity[k]) || !finite(f.MDD[k]) || !finite(f.PAA[k]) {
			return fmt.Errorf("%w: id %d has a non-finite value at sample %d", ErrBadCurve, f.ID, k)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
