package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskforge/catrisk/engine"
	"github.com/riskforge/catrisk/impactfunc"
	"github.com/riskforge/catrisk/logging"
)

// TestPlanChunks_Splits partitions positions into near-equal contiguous
// pieces whose cell counts respect the budget.
func TestPlanChunks_Splits(t *testing.T) {
	tests := []struct {
		name     string
		pos      []int
		nEvents  int
		maxCells int
		want     [][]int
	}{
		{
			name:     "single chunk under budget",
			pos:      []int{4, 7, 9},
			nEvents:  10,
			maxCells: 1000,
			want:     [][]int{{4, 7, 9}},
		},
		{
			name:     "uneven split puts the extra point first",
			pos:      []int{0, 1, 2, 3, 4},
			nEvents:  2,
			maxCells: 4,
			want:     [][]int{{0, 1}, {2, 3}, {4}},
		},
		{
			name:     "one point per chunk at the tightest budget",
			pos:      []int{3, 1, 2},
			nEvents:  2,
			maxCells: 2,
			want:     [][]int{{3}, {1}, {2}},
		},
		{
			name:     "empty group plans nothing",
			pos:      nil,
			nEvents:  5,
			maxCells: 10,
			want:     nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.PlanChunks(tc.pos, tc.nEvents, tc.maxCells)
			require.NoError(t, err, "planning must succeed")
			assert.Equal(t, tc.want, got, "chunks must be contiguous, ordered, near-equal")
		})
	}
}

// TestPlanChunks_PreservesOrder checks the concatenated chunks
// reproduce the input exactly and every chunk fits the budget.
func TestPlanChunks_PreservesOrder(t *testing.T) {
	pos := make([]int, 97)
	for i := range pos {
		pos[i] = i * 3
	}
	const nEvents, maxCells = 7, 50

	chunks, err := engine.PlanChunks(pos, nEvents, maxCells)
	require.NoError(t, err, "planning must succeed")

	var flat []int
	for k, ch := range chunks {
		assert.LessOrEqual(t, nEvents*len(ch), maxCells, "chunk %d exceeds the cell budget", k)
		flat = append(flat, ch...)
	}
	assert.Equal(t, pos, flat, "chunks concatenate back to the input")
}

// TestPlanChunks_BudgetTooSmall rejects budgets below one event column.
func TestPlanChunks_BudgetTooSmall(t *testing.T) {
	_, err := engine.PlanChunks([]int{0}, 10, 9)
	assert.ErrorIs(t, err, engine.ErrMatrixBudget, "ten events cannot fit nine cells")
}

// TestImpactMatrix_Computes multiplies fraction, damage ratio and value
// for a hand-checked chunk.
func TestImpactMatrix_Computes(t *testing.T) {
	_, fns, h := scenario(t)
	fn, err := fns.Get("TC", 1)
	require.NoError(t, err, "reference curve must resolve")

	mat, err := engine.ImpactMatrix(h, fn, []float64{100, 200}, []int{0, 1})
	require.NoError(t, err, "computation must succeed")
	assert.Equal(t, [][]float64{
		{50, 100},
		{50, 100},
	}, mat.Dense(), "half the value at every point and event")
}

// TestImpactMatrix_RepeatedCentroids lets several points share one
// centroid without interfering.
func TestImpactMatrix_RepeatedCentroids(t *testing.T) {
	_, fns, h := scenario(t)
	fn, err := fns.Get("TC", 1)
	require.NoError(t, err, "reference curve must resolve")

	mat, err := engine.ImpactMatrix(h, fn, []float64{100, 40, 200}, []int{0, 0, 1})
	require.NoError(t, err, "computation must succeed")
	assert.Equal(t, [][]float64{
		{50, 20, 100},
		{50, 20, 100},
	}, mat.Dense(), "each point scales its own value at the shared centroid")
}

// TestImpactMatrix_LengthMismatch rejects disagreeing chunk vectors.
func TestImpactMatrix_LengthMismatch(t *testing.T) {
	_, fns, h := scenario(t)
	fn, err := fns.Get("TC", 1)
	require.NoError(t, err, "reference curve must resolve")

	_, err = engine.ImpactMatrix(h, fn, []float64{100}, []int{0, 1})
	assert.ErrorIs(t, err, engine.ErrVectorLength, "values and centroids must pair up")
}

// TestMatrixChunks_Stream drains the gross stream and checks every
// chunk's shape, positions and single-use semantics.
func TestMatrixChunks_Stream(t *testing.T) {
	exp, fns, h := scenario(t)
	calc := engine.NewCalculator(exp, fns, h)

	stream, err := calc.MatrixChunks(engine.WithMaxCells(2), engine.WithLogger(logging.Nop()))
	require.NoError(t, err, "stream setup must succeed")

	var chunks int
	var seen []int
	for stream.Next() {
		ch := stream.Chunk()
		assert.Equal(t, 2, ch.Mat.Rows(), "every chunk spans all events")
		assert.Equal(t, len(ch.Pos), ch.Mat.Cols(), "positions pair with columns")
		seen = append(seen, ch.Pos...)
		chunks++
	}
	require.NoError(t, stream.Err(), "stream must finish cleanly")
	assert.Equal(t, 2, chunks, "budget 2 forces one point per chunk")
	assert.Equal(t, []int{0, 2}, seen, "positions address the original portfolio, zero-value point skipped")

	assert.False(t, stream.Next(), "a drained stream stays exhausted")
}

// TestMatrixChunks_UpfrontErrors surfaces curve resolution and budget
// failures from the entry point, before any chunk is computed.
func TestMatrixChunks_UpfrontErrors(t *testing.T) {
	t.Run("unknown curve", func(t *testing.T) {
		exp, fns, h := scenario(t)
		require.NoError(t, exp.SetFuncIDs("TC", []int{1, 1, 9}), "column must set")
		_, err := engine.NewCalculator(exp, fns, h).MatrixChunks(engine.WithLogger(logging.Nop()))
		assert.ErrorIs(t, err, impactfunc.ErrFuncNotFound, "unknown id must fail before streaming")
	})
	t.Run("budget too small", func(t *testing.T) {
		exp, fns, h := scenario(t)
		_, err := engine.NewCalculator(exp, fns, h).MatrixChunks(engine.WithMaxCells(1), engine.WithLogger(logging.Nop()))
		assert.ErrorIs(t, err, engine.ErrMatrixBudget, "two events cannot fit one cell")
	})
}

// TestMatrixChunks_EmptyView yields an immediately exhausted stream.
func TestMatrixChunks_EmptyView(t *testing.T) {
	exp, fns, h := scenario(t)
	exp.Value = []float64{0, 0, 0}
	calc := engine.NewCalculator(exp, fns, h)

	stream, err := calc.MatrixChunks(engine.WithLogger(logging.Nop()))
	require.NoError(t, err, "an empty view is not an error")
	assert.False(t, stream.Next(), "nothing to yield")
	assert.NoError(t, stream.Err(), "exhaustion is not a failure")
}

// TestMatrixChunks_GroupOrder streams curve groups in first-appearance
// order, each group chunked separately.
func TestMatrixChunks_GroupOrder(t *testing.T) {
	exp, fns, h := scenario(t)
	full := &impactfunc.ImpactFunc{
		HazType:   "TC",
		ID:        2,
		Intensity: []float64{0, 10},
		MDD:       []float64{0, 1},
		PAA:       []float64{1, 1},
	}
	require.NoError(t, full.Validate(), "second curve must be valid")
	require.NoError(t, fns.Add(full), "second curve must register")
	exp.Value = []float64{100, 40, 200}
	require.NoError(t, exp.SetFuncIDs("TC", []int{1, 2, 1}), "column must set")
	calc := engine.NewCalculator(exp, fns, h)

	stream, err := calc.MatrixChunks(engine.WithMaxCells(2), engine.WithLogger(logging.Nop()))
	require.NoError(t, err, "stream setup must succeed")

	var seen []int
	for stream.Next() {
		ch := stream.Chunk()
		assert.Len(t, ch.Pos, 1, "budget 2 with 2 events forces single-point chunks")
		seen = append(seen, ch.Pos...)
	}
	require.NoError(t, stream.Err(), "stream must finish cleanly")
	assert.Equal(t, []int{0, 2, 1}, seen, "curve 1's points precede curve 2's, portfolio order within each group")
}
