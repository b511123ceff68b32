package exposures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskforge/catrisk/exposures"
)

// testPortfolio builds the three-point portfolio shared by the package
// tests.
func testPortfolio(t *testing.T) *exposures.Exposures {
	t.Helper()
	return &exposures.Exposures{
		Description: "coastal assets",
		RefYear:     2020,
		ValueUnit:   "USD",
		Lat:         []float64{0, 0, 5},
		Lon:         []float64{0.05, 0.95, 5},
		Value:       []float64{100, 0, 200},
	}
}

// TestValidate_Columns checks required and optional column lengths.
func TestValidate_Columns(t *testing.T) {
	e := testPortfolio(t)
	require.NoError(t, e.Validate(), "well-formed portfolio passes")

	e.Deductible = []float64{10, 0, 20}
	e.Cover = []float64{1000, 1000, 30}
	require.NoError(t, e.Validate(), "matched insurance terms pass")

	e.Cover = []float64{1000}
	assert.ErrorIs(t, e.Validate(), exposures.ErrLengthMismatch, "short cover column rejected")

	e = testPortfolio(t)
	e.Lat = nil
	assert.ErrorIs(t, e.Validate(), exposures.ErrNoCoordinates, "coordinates are required")

	e = testPortfolio(t)
	e.Lon = e.Lon[:2]
	assert.ErrorIs(t, e.Validate(), exposures.ErrLengthMismatch, "ragged coordinates rejected")
}

// TestTotalValue sums the portfolio.
func TestTotalValue(t *testing.T) {
	e := testPortfolio(t)
	assert.Equal(t, 300.0, e.TotalValue(), "values sum across points")
	assert.Equal(t, 3, e.NumPoints(), "one entry per point")
}

// TestFuncIDs_Fallback resolves a dedicated column first, the default
// column second.
func TestFuncIDs_Fallback(t *testing.T) {
	e := testPortfolio(t)

	_, err := e.FuncIDs("TC")
	require.ErrorIs(t, err, exposures.ErrNoFuncColumn, "no columns yet")
	assert.Contains(t, err.Error(), "TC", "hazard type named in the message")

	require.NoError(t, e.SetFuncIDs("", []int{1, 1, 1}), "default column must set")
	ids, err := e.FuncIDs("TC")
	require.NoError(t, err, "default column serves any hazard type")
	assert.Equal(t, []int{1, 1, 1}, ids, "default ids returned")

	require.NoError(t, e.SetFuncIDs("TC", []int{2, 2, 2}), "dedicated column must set")
	ids, err = e.FuncIDs("TC")
	require.NoError(t, err, "dedicated column resolves")
	assert.Equal(t, []int{2, 2, 2}, ids, "dedicated column wins over the default")

	ids, err = e.FuncIDs("FL")
	require.NoError(t, err, "other hazard types still fall back")
	assert.Equal(t, []int{1, 1, 1}, ids, "default ids returned for other types")
}

// TestFuncIDs_Copies keeps internal state isolated from returned and
// passed slices.
func TestFuncIDs_Copies(t *testing.T) {
	e := testPortfolio(t)
	src := []int{1, 2, 3}
	require.NoError(t, e.SetFuncIDs("TC", src), "column must set")

	src[0] = 99
	ids, err := e.FuncIDs("TC")
	require.NoError(t, err, "column resolves")
	assert.Equal(t, []int{1, 2, 3}, ids, "mutating the input does not leak in")

	ids[1] = 99
	again, err := e.FuncIDs("TC")
	require.NoError(t, err, "column resolves")
	assert.Equal(t, []int{1, 2, 3}, again, "mutating the output does not leak in")
}

// TestSetFuncIDs_LengthCheck rejects columns not covering every point.
func TestSetFuncIDs_LengthCheck(t *testing.T) {
	e := testPortfolio(t)
	err := e.SetFuncIDs("TC", []int{1})
	assert.ErrorIs(t, err, exposures.ErrLengthMismatch, "one id for three points rejected")
}

// TestCentroids_RoundTrip stores and retrieves a centroid column.
func TestCentroids_RoundTrip(t *testing.T) {
	e := testPortfolio(t)

	_, ok := e.Centroids("TC")
	assert.False(t, ok, "nothing assigned yet")

	require.NoError(t, e.SetCentroids("TC", []int{0, 1, exposures.Unassigned}), "column must set")
	idx, ok := e.Centroids("TC")
	require.True(t, ok, "assignment exists")
	assert.Equal(t, []int{0, 1, -1}, idx, "stored indices returned")

	idx[0] = 99
	again, ok := e.Centroids("TC")
	require.True(t, ok, "assignment exists")
	assert.Equal(t, []int{0, 1, -1}, again, "mutating the output does not leak in")

	err := e.SetCentroids("TC", []int{0})
	assert.ErrorIs(t, err, exposures.ErrLengthMismatch, "one index for three points rejected")
}
