package engine

import (
	"fmt"

	"github.com/riskforge/catrisk/exposures"
	"github.com/riskforge/catrisk/impactfunc"
)

// view is the filtered portfolio slice one computation works on:
// points with nonzero value and an assigned centroid, in portfolio
// order. origIdx maps each view position back to the full portfolio.
type view struct {
	origIdx []int
	values  []float64
	funcIDs []int
	centIdx []int
}

// group collects the view positions sharing one vulnerability curve.
type group struct {
	fn  *impactfunc.ImpactFunc
	pos []int
}

// buildView validates the inputs, assigns centroids when missing, and
// filters the portfolio down to the points that can carry impact.
func (c *Calculator) buildView(o *Options) (*view, error) {
	if err := c.exp.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid exposures: %w", err)
	}
	if err := c.haz.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid hazard: %w", err)
	}
	if err := c.exp.AssignCentroids(c.haz, false); err != nil {
		return nil, fmt.Errorf("engine: assigning centroids: %w", err)
	}
	funcIDs, err := c.exp.FuncIDs(c.haz.Type)
	if err != nil {
		return nil, fmt.Errorf("engine: resolving vulnerability column: %w", err)
	}
	centIdx, ok := c.exp.Centroids(c.haz.Type)
	if !ok {
		return nil, fmt.Errorf("engine: resolving centroid column: %w", exposures.ErrNoCoordinates)
	}

	n := c.exp.NumPoints()
	v := &view{}
	for i := 0; i < n; i++ {
		if c.exp.Value[i] == 0 || centIdx[i] < 0 {
			continue
		}
		v.origIdx = append(v.origIdx, i)
		v.values = append(v.values, c.exp.Value[i])
		v.funcIDs = append(v.funcIDs, funcIDs[i])
		v.centIdx = append(v.centIdx, centIdx[i])
	}
	if len(v.origIdx) == 0 {
		o.logger.Warn().
			Str("haz_type", c.haz.Type).
			Msg("no exposures with value in the vicinity of the hazard")
	}
	return v, nil
}

// groups resolves the view's curve ids against the function set, in
// first-appearance order. Points without a curve join no group and
// carry no impact.
func (v *view) groups(fns *impactfunc.Set, hazType string) ([]group, error) {
	var order []int
	seen := make(map[int]bool)
	for _, id := range v.funcIDs {
		if id == exposures.UnsetFuncID || seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}
	gs := make([]group, 0, len(order))
	for _, id := range order {
		fn, err := fns.Get(hazType, id)
		if err != nil {
			return nil, fmt.Errorf("engine: resolving curves: %w", err)
		}
		var pos []int
		for p, got := range v.funcIDs {
			if got == id {
				pos = append(pos, p)
			}
		}
		gs = append(gs, group{fn: fn, pos: pos})
	}
	return gs, nil
}
