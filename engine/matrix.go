package engine

import (
	"fmt"

	"github.com/riskforge/catrisk/hazard"
	"github.com/riskforge/catrisk/impactfunc"
	"github.com/riskforge/catrisk/sparse"
)

// MatrixChunk pairs a partial impact matrix with the portfolio
// positions its columns cover.
type MatrixChunk struct {
	// Mat holds the impact per event (rows) and point (columns).
	Mat *sparse.CSR
	// Pos maps each column to its position in the full portfolio.
	Pos []int
}

// ChunkStream yields an impact matrix chunk by chunk. Next advances
// and reports whether a chunk is available; Chunk returns the current
// one. After Next returns false, Err tells whether the stream finished
// or failed. Streams are single-use.
type ChunkStream interface {
	Next() bool
	Chunk() MatrixChunk
	Err() error
}

// ImpactMatrix computes the impact of every catalog event on the given
// points: affected fraction times mean damage ratio times exposed
// value, cell by cell. values and centIdx pair up, one point each.
//
// Complexity: O(nnz of the selected footprint columns).
func ImpactMatrix(h *hazard.Hazard, fn *impactfunc.ImpactFunc, values []float64, centIdx []int) (*sparse.CSR, error) {
	if len(values) != len(centIdx) {
		return nil, fmt.Errorf("%w: %d values for %d centroid indices", ErrVectorLength, len(values), len(centIdx))
	}
	mdr, err := h.GetMDR(centIdx, fn)
	if err != nil {
		return nil, err
	}
	fract, err := h.GetFraction(centIdx)
	if err != nil {
		return nil, err
	}
	imp, err := fract.MulElem(mdr)
	if err != nil {
		return nil, fmt.Errorf("engine: combining fraction and damage ratio: %w", err)
	}
	scaled, err := imp.ScaleCols(values)
	if err != nil {
		return nil, fmt.Errorf("engine: scaling by exposed value: %w", err)
	}
	return scaled, nil
}

// planChunks splits a group's point positions so no chunk matrix holds
// more than maxCells cells. Split sizes differ by at most one point,
// larger chunks first. An empty group plans no chunks.
func planChunks(pos []int, nEvents, maxCells int) ([][]int, error) {
	if nEvents > maxCells {
		return nil, fmt.Errorf("%w: %d events per point; increase the budget to at least %d",
			ErrMatrixBudget, nEvents, nEvents)
	}
	if len(pos) == 0 {
		return nil, nil
	}
	nChunks := (nEvents*len(pos) + maxCells - 1) / maxCells
	if nChunks < 1 {
		nChunks = 1
	}
	each := len(pos) / nChunks
	rem := len(pos) % nChunks
	parts := make([][]int, 0, nChunks)
	start := 0
	for i := 0; i < nChunks; i++ {
		size := each
		if i < rem {
			size++
		}
		parts = append(parts, pos[start:start+size])
		start += size
	}
	return parts, nil
}

// streamChunk is one planned unit of work: a curve and the view
// positions it covers.
type streamChunk struct {
	fn  *impactfunc.ImpactFunc
	pos []int
}

// matrixStream computes gross impact chunks lazily over a precomputed
// plan. The zero chunk plan yields an immediately exhausted stream.
type matrixStream struct {
	view *view
	haz  *hazard.Hazard
	plan []streamChunk

	cur     int
	chunk   MatrixChunk
	viewPos []int
	fn      *impactfunc.ImpactFunc
	err     error
}

func (s *matrixStream) Next() bool {
	if s.err != nil || s.cur >= len(s.plan) {
		return false
	}
	next := s.plan[s.cur]
	s.cur++

	values := make([]float64, len(next.pos))
	centIdx := make([]int, len(next.pos))
	orig := make([]int, len(next.pos))
	for i, p := range next.pos {
		values[i] = s.view.values[p]
		centIdx[i] = s.view.centIdx[p]
		orig[i] = s.view.origIdx[p]
	}
	mat, err := ImpactMatrix(s.haz, next.fn, values, centIdx)
	if err != nil {
		s.err = err
		return false
	}
	s.chunk = MatrixChunk{Mat: mat, Pos: orig}
	s.viewPos = next.pos
	s.fn = next.fn
	return true
}

func (s *matrixStream) Chunk() MatrixChunk { return s.chunk }

func (s *matrixStream) Err() error { return s.err }

// MatrixChunks returns the gross impact stream: the filtered portfolio
// grouped by vulnerability curve and split to the cell budget, one
// partial matrix per chunk. Insurance terms are ignored.
//
// Complexity: O(points) setup, chunk cost paid per Next call.
func (c *Calculator) MatrixChunks(opts ...Option) (ChunkStream, error) {
	o := gatherOptions(opts...)
	v, err := c.buildView(&o)
	if err != nil {
		return nil, err
	}
	return c.grossStream(v, &o)
}

// grossStream plans the chunked computation for an already built view.
func (c *Calculator) grossStream(v *view, o *Options) (*matrixStream, error) {
	gs, err := v.groups(c.fns, c.haz.Type)
	if err != nil {
		return nil, err
	}
	var plan []streamChunk
	for _, g := range gs {
		parts, err := planChunks(g.pos, c.haz.Size(), o.maxCells)
		if err != nil {
			return nil, err
		}
		for _, part := range parts {
			plan = append(plan, streamChunk{fn: g.fn, pos: part})
		}
	}
	return &matrixStream{view: v, haz: c.haz, plan: plan}, nil
}
