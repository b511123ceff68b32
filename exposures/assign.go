package exposures

import (
	"fmt"

	"github.com/riskforge/catrisk/hazard"
	"github.com/riskforge/catrisk/logging"
)

// AssignCentroids matches every point to its nearest hazard centroid
// and stores the result as the centroid column for the hazard's type.
// Points farther than DefaultAssignThresholdKm from every centroid are
// marked Unassigned. With overwrite false an existing column is kept
// untouched.
//
// Complexity: O(points · centroids).
func (e *Exposures) AssignCentroids(h *hazard.Hazard, overwrite bool) error {
	if _, ok := e.centroids[h.Type]; ok && !overwrite {
		return nil
	}
	if h.Centroids == nil || h.Centroids.Size() == 0 {
		return fmt.Errorf("exposures: assigning %q centroids: %w", h.Type, hazard.ErrNoCentroids)
	}
	if err := h.Centroids.Validate(); err != nil {
		return fmt.Errorf("exposures: assigning %q centroids: %w", h.Type, err)
	}
	n := e.NumPoints()
	if n > 0 && (len(e.Lat) != n || len(e.Lon) != n) {
		return ErrNoCoordinates
	}

	log := logging.Default()
	log.Info().
		Str("haz_type", h.Type).
		Int("points", n).
		Int("centroids", h.Centroids.Size()).
		Msg("matching exposure points to hazard centroids")

	idx := make([]int, n)
	for i := 0; i < n; i++ {
		j, dist := h.Centroids.NearestTo(e.Lat[i], e.Lon[i])
		if dist > DefaultAssignThresholdKm {
			j = Unassigned
		}
		idx[i] = j
	}
	if e.centroids == nil {
		e.centroids = make(map[string][]int)
	}
	e.centroids[h.Type] = idx
	return nil
}
