package exposures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskforge/catrisk/exposures"
	"github.com/riskforge/catrisk/hazard"
)

// coastalGrid builds a two-centroid hazard frame on the equator.
func coastalGrid() *hazard.Hazard {
	return &hazard.Hazard{
		Type: "TC",
		Centroids: &hazard.Centroids{
			Lat: []float64{0, 0},
			Lon: []float64{0, 1},
		},
	}
}

// TestAssignCentroids_Nearest matches each point to its closest
// centroid and drops points beyond the threshold.
func TestAssignCentroids_Nearest(t *testing.T) {
	e := testPortfolio(t)
	h := coastalGrid()

	require.NoError(t, e.AssignCentroids(h, false), "assignment must succeed")

	idx, ok := e.Centroids("TC")
	require.True(t, ok, "column written for the hazard type")
	assert.Equal(t, []int{0, 1, exposures.Unassigned}, idx,
		"first two points snap to the grid, the inland point is out of range")
}

// TestAssignCentroids_KeepsExisting leaves a present column untouched
// unless overwrite is requested.
func TestAssignCentroids_KeepsExisting(t *testing.T) {
	e := testPortfolio(t)
	h := coastalGrid()
	require.NoError(t, e.SetCentroids("TC", []int{1, 1, 1}), "manual column must set")

	require.NoError(t, e.AssignCentroids(h, false), "no-op assignment must succeed")
	idx, _ := e.Centroids("TC")
	assert.Equal(t, []int{1, 1, 1}, idx, "existing column kept without overwrite")

	require.NoError(t, e.AssignCentroids(h, true), "overwrite assignment must succeed")
	idx, _ = e.Centroids("TC")
	assert.Equal(t, []int{0, 1, exposures.Unassigned}, idx, "overwrite recomputes the column")
}

// TestAssignCentroids_NoGrid rejects hazards without centroids.
func TestAssignCentroids_NoGrid(t *testing.T) {
	e := testPortfolio(t)
	h := hazard.New("TC")

	err := e.AssignCentroids(h, false)
	assert.ErrorIs(t, err, hazard.ErrNoCentroids, "a grid is required for matching")
}

// TestAssignCentroids_NoCoordinates rejects portfolios without point
// coordinates.
func TestAssignCentroids_NoCoordinates(t *testing.T) {
	e := &exposures.Exposures{Value: []float64{100}}
	h := coastalGrid()

	err := e.AssignCentroids(h, false)
	assert.ErrorIs(t, err, exposures.ErrNoCoordinates, "coordinates are required for matching")
}
