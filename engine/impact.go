package engine

import (
	"math"
	"sort"
	"time"

	"github.com/riskforge/catrisk/sparse"
)

// Impact is the result of one risk computation: the per-event and
// per-point metrics plus the catalog and portfolio metadata needed to
// read them.
type Impact struct {
	// HazType names the peril, Unit the monetary unit of the impacts.
	HazType string
	Unit    string

	// Per-event metadata, copied from the hazard catalog.
	EventID   []int64
	EventName []string
	Date      []time.Time
	Frequency []float64

	// Per-point coordinates, copied from the portfolio.
	Lat []float64
	Lon []float64

	// TotalValue is the exposed value the computation saw: points with
	// nonzero value and an assigned centroid.
	TotalValue float64

	// AtEvent is the summed impact per event. EAIExp is the expected
	// annual impact per portfolio point, AAIAgg its total.
	AtEvent []float64
	EAIExp  []float64
	AAIAgg  float64

	// Matrix holds the full event × point impact matrix when computed
	// with WithSaveMatrix, nil otherwise.
	Matrix *sparse.CSR
}

// FreqCurve is an impact exceedance curve: the impact reached or
// exceeded once every ReturnPeriod years, by rising period.
type FreqCurve struct {
	ReturnPeriod []float64
	Impact       []float64
	Unit         string
}

// FreqCurve derives the exceedance curve from the per-event impacts.
// With no arguments the curve holds one sample per event; given return
// periods, the curve is linearly interpolated at them, clamped at the
// sampled range.
//
// Complexity: O(events · log events).
func (imp *Impact) FreqCurve(returnPeriods ...float64) FreqCurve {
	n := len(imp.AtEvent)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return imp.AtEvent[order[a]] < imp.AtEvent[order[b]]
	})

	sorted := make([]float64, n)
	periods := make([]float64, n)
	var cum float64
	for i := n - 1; i >= 0; i-- {
		cum += imp.Frequency[order[i]]
		sorted[i] = imp.AtEvent[order[i]]
		if cum > 0 {
			periods[i] = 1 / cum
		} else {
			periods[i] = math.Inf(1)
		}
	}

	if len(returnPeriods) == 0 {
		return FreqCurve{ReturnPeriod: periods, Impact: sorted, Unit: imp.Unit}
	}
	interp := make([]float64, len(returnPeriods))
	if n > 0 {
		for i, p := range returnPeriods {
			interp[i] = interpCurve(periods, sorted, p)
		}
	}
	return FreqCurve{
		ReturnPeriod: append([]float64(nil), returnPeriods...),
		Impact:       interp,
		Unit:         imp.Unit,
	}
}

// interpCurve linearly interpolates ys over xs at x, clamping outside
// the sampled range. xs must be non-decreasing.
func interpCurve(xs, ys []float64, x float64) float64 {
	j := sort.Search(len(xs), func(k int) bool { return xs[k] > x }) - 1
	if j < 0 {
		return ys[0]
	}
	if j == len(xs)-1 || xs[j] == x {
		return ys[j]
	}
	t := (x - xs[j]) / (xs[j+1] - xs[j])
	return ys[j] + t*(ys[j+1]-ys[j])
}
