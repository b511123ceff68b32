package exposures

import "fmt"

// SetFuncIDs binds every point to a vulnerability curve id for the
// given hazard type. An empty hazard type sets the default column.
// Use UnsetFuncID for points without a curve. The slice is copied.
//
// Complexity: O(points).
func (e *Exposures) SetFuncIDs(hazType string, ids []int) error {
	if len(ids) != e.NumPoints() {
		return fmt.Errorf("%w: %d curve ids for %d points", ErrLengthMismatch, len(ids), e.NumPoints())
	}
	if e.funcIDs == nil {
		e.funcIDs = make(map[string][]int)
	}
	e.funcIDs[hazType] = append([]int(nil), ids...)
	return nil
}

// FuncIDs returns the vulnerability curve id per point for the given
// hazard type, falling back to the default column when no dedicated
// one exists. The returned slice is a copy.
//
// Complexity: O(points).
func (e *Exposures) FuncIDs(hazType string) ([]int, error) {
	if ids, ok := e.funcIDs[hazType]; ok {
		return append([]int(nil), ids...), nil
	}
	if ids, ok := e.funcIDs[""]; ok {
		return append([]int(nil), ids...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoFuncColumn, hazType)
}

// SetCentroids stores the centroid index per point for the given
// hazard type, replacing any previous assignment. Use Unassigned for
// points outside the grid. The slice is copied.
//
// Complexity: O(points).
func (e *Exposures) SetCentroids(hazType string, idx []int) error {
	if len(idx) != e.NumPoints() {
		return fmt.Errorf("%w: %d centroid indices for %d points", ErrLengthMismatch, len(idx), e.NumPoints())
	}
	if e.centroids == nil {
		e.centroids = make(map[string][]int)
	}
	e.centroids[hazType] = append([]int(nil), idx...)
	return nil
}

// Centroids returns the centroid index per point for the given hazard
// type and whether an assignment exists. The returned slice is a copy.
//
// Complexity: O(points).
func (e *Exposures) Centroids(hazType string) ([]int, bool) {
	idx, ok := e.centroids[hazType]
	if !ok {
		return nil, false
	}
	return append([]int(nil), idx...), true
}
