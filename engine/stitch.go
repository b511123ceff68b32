package engine

import (
	"fmt"

	"github.com/riskforge/catrisk/sparse"
)

// StitchMatrix drains a chunk stream into one event × point impact
// matrix of the given shape, columns addressed by portfolio position.
//
// Complexity: O(total nnz · log total nnz).
func StitchMatrix(s ChunkStream, nEvents, nPoints int) (*sparse.CSR, error) {
	var (
		rows, cols []int
		vals       []float64
	)
	for s.Next() {
		ch := s.Chunk()
		if len(ch.Pos) != ch.Mat.Cols() {
			return nil, fmt.Errorf("%w: %d positions for %d columns", ErrBadChunk, len(ch.Pos), ch.Mat.Cols())
		}
		r, c, v := ch.Mat.Triplets()
		for i := range c {
			c[i] = ch.Pos[c[i]]
		}
		rows = append(rows, r...)
		cols = append(cols, c...)
		vals = append(vals, v...)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	mat, err := sparse.FromTriplets(nEvents, nPoints, rows, cols, vals)
	if err != nil {
		return nil, fmt.Errorf("engine: stitching impact matrix: %w", err)
	}
	return mat, nil
}

// StitchRiskMetrics drains a chunk stream into the three risk metrics
// without materializing the full matrix: impact per event, expected
// annual impact per point, and the aggregate annual impact.
//
// Complexity: O(total nnz).
func StitchRiskMetrics(s ChunkStream, freq []float64, nPoints int) (atEvent, eaiExp []float64, aaiAgg float64, err error) {
	atEvent = make([]float64, len(freq))
	eaiExp = make([]float64, nPoints)
	for s.Next() {
		ch := s.Chunk()
		if len(ch.Pos) != ch.Mat.Cols() || ch.Mat.Rows() != len(freq) {
			return nil, nil, 0, fmt.Errorf("%w: %d×%d chunk with %d positions against %d events",
				ErrBadChunk, ch.Mat.Rows(), ch.Mat.Cols(), len(ch.Pos), len(freq))
		}
		for i, sum := range ch.Mat.RowSums() {
			atEvent[i] += sum
		}
		part, werr := ch.Mat.ColSumsWeighted(freq)
		if werr != nil {
			return nil, nil, 0, fmt.Errorf("engine: weighting chunk columns: %w", werr)
		}
		for j, p := range ch.Pos {
			if p < 0 || p >= nPoints {
				return nil, nil, 0, fmt.Errorf("%w: position %d outside %d points", ErrBadChunk, p, nPoints)
			}
			eaiExp[p] += part[j]
		}
	}
	if err = s.Err(); err != nil {
		return nil, nil, 0, err
	}
	return atEvent, eaiExp, AAIAggFromEAI(eaiExp), nil
}

// RiskMetrics reduces a full impact matrix to the three risk metrics.
//
// Complexity: O(nnz).
func RiskMetrics(mat *sparse.CSR, freq []float64) (atEvent, eaiExp []float64, aaiAgg float64, err error) {
	eaiExp, err = EAIExpFromMatrix(mat, freq)
	if err != nil {
		return nil, nil, 0, err
	}
	return AtEventFromMatrix(mat), eaiExp, AAIAggFromEAI(eaiExp), nil
}

// AtEventFromMatrix sums each event's impact across all points.
func AtEventFromMatrix(mat *sparse.CSR) []float64 {
	return mat.RowSums()
}

// EAIExpFromMatrix computes each point's expected annual impact: the
// frequency-weighted sum of its per-event impacts.
func EAIExpFromMatrix(mat *sparse.CSR, freq []float64) ([]float64, error) {
	eai, err := mat.ColSumsWeighted(freq)
	if err != nil {
		return nil, fmt.Errorf("engine: weighting by event frequency: %w", err)
	}
	return eai, nil
}

// AAIAggFromEAI aggregates the expected annual impacts into one number.
func AAIAggFromEAI(eaiExp []float64) float64 {
	var total float64
	for _, v := range eaiExp {
		total += v
	}
	return total
}
