package hazard

import (
	"fmt"
	"sort"

	"github.com/riskforge/catrisk/impactfunc"
	"github.com/riskforge/catrisk/logging"
	"github.com/riskforge/catrisk/sparse"
)

// GetMDR returns the mean damage ratio per event and requested centroid:
// the intensity at each centroid mapped through fn.CalcMDR. The result
// has one column per entry of centIdx, which may repeat indices in any
// order.
//
// When fn.CalcMDR(0) == 0 only stored intensities are evaluated. A curve
// with a nonzero ratio at zero intensity forces a dense evaluation over
// every cell, which is logged as a warning.
//
// Complexity: O(nnz of the selected columns), dense fallback
// O(events · distinct centroids).
func (h *Hazard) GetMDR(centIdx []int, fn *impactfunc.ImpactFunc) (*sparse.CSR, error) {
	if h.Intensity == nil {
		return nil, ErrNoIntensity
	}
	uniq, inverse := uniqueInverse(centIdx)
	mdr, err := h.Intensity.SelectCols(uniq)
	if err != nil {
		return nil, fmt.Errorf("hazard: selecting centroids: %w", err)
	}
	if fn.CalcMDR(0) == 0 {
		mdr.Apply(fn.CalcMDR)
	} else {
		log := logging.Default()
		log.Warn().
			Str("haz_type", h.Type).
			Int("impf_id", fn.ID).
			Msg("impact function has mdr(0) != 0, evaluating the mean damage ratio densely over all cells")
		cells := mdr.Dense()
		for i := range cells {
			for j := range cells[i] {
				cells[i][j] = fn.CalcMDR(cells[i][j])
			}
		}
		if mdr, err = sparse.FromDense(cells); err != nil {
			return nil, fmt.Errorf("hazard: densifying mean damage ratio: %w", err)
		}
	}
	out, err := mdr.SelectCols(inverse)
	if err != nil {
		return nil, fmt.Errorf("hazard: expanding centroids: %w", err)
	}
	return out, nil
}

// GetPAA returns the probability of affection per event and requested
// centroid: stored intensities mapped through fn.CalcPAA. Cells without
// stored intensity stay absent; any impact there is zero, so nothing is
// lost by skipping them.
//
// Complexity: O(nnz of the selected columns).
func (h *Hazard) GetPAA(centIdx []int, fn *impactfunc.ImpactFunc) (*sparse.CSR, error) {
	if h.Intensity == nil {
		return nil, ErrNoIntensity
	}
	uniq, inverse := uniqueInverse(centIdx)
	paa, err := h.Intensity.SelectCols(uniq)
	if err != nil {
		return nil, fmt.Errorf("hazard: selecting centroids: %w", err)
	}
	paa.Apply(fn.CalcPAA)
	out, err := paa.SelectCols(inverse)
	if err != nil {
		return nil, fmt.Errorf("hazard: expanding centroids: %w", err)
	}
	return out, nil
}

// GetFraction returns the affected fraction per event and requested
// centroid. With no explicit Fraction matrix (nil or empty), every cell
// with stored intensity reads as fully affected.
//
// Complexity: O(nnz of the selected columns).
func (h *Hazard) GetFraction(centIdx []int) (*sparse.CSR, error) {
	if h.Intensity == nil {
		return nil, ErrNoIntensity
	}
	base := h.Fraction
	defaulted := base == nil || base.NNZ() == 0
	if defaulted {
		base = h.Intensity
	}
	uniq, inverse := uniqueInverse(centIdx)
	fract, err := base.SelectCols(uniq)
	if err != nil {
		return nil, fmt.Errorf("hazard: selecting centroids: %w", err)
	}
	if defaulted {
		fract.Apply(affectedOne)
	}
	out, err := fract.SelectCols(inverse)
	if err != nil {
		return nil, fmt.Errorf("hazard: expanding centroids: %w", err)
	}
	return out, nil
}

// affectedOne maps any nonzero intensity to a fully affected cell.
// Explicit zeros in the footprint stay unaffected.
func affectedOne(v float64) float64 {
	if v != 0 {
		return 1
	}
	return 0
}

// uniqueInverse returns the sorted distinct values of idx together with,
// per original position, the rank of its value among the distinct ones.
// Gathering by the ranks reconstructs the original sequence.
func uniqueInverse(idx []int) (uniq, inverse []int) {
	uniq = append([]int(nil), idx...)
	sort.Ints(uniq)
	n := 0
	for _, v := range uniq {
		if n == 0 || uniq[n-1] != v {
			uniq[n] = v
			n++
		}
	}
	uniq = uniq[:n]
	inverse = make([]int, len(idx))
	for i, v := range idx {
		inverse[i] = sort.SearchInts(uniq, v)
	}
	return uniq, inverse
}
