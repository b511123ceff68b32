package engine

import (
	"fmt"
	"math"

	"github.com/riskforge/catrisk/hazard"
	"github.com/riskforge/catrisk/impactfunc"
	"github.com/riskforge/catrisk/sparse"
)

// ApplyDeductible nets a deductible per point out of an impact matrix.
// The retained amount scales with the probability of affection at each
// point's centroid, so events that barely touch a point retain less.
// All columns must share the curve fn. The input matrix is consumed;
// use the returned one.
//
// Complexity: O(nnz).
func ApplyDeductible(mat *sparse.CSR, deductible []float64, h *hazard.Hazard, centIdx []int, fn *impactfunc.ImpactFunc) (*sparse.CSR, error) {
	paa, err := h.GetPAA(centIdx, fn)
	if err != nil {
		return nil, err
	}
	retained, err := paa.ScaleCols(deductible)
	if err != nil {
		return nil, fmt.Errorf("engine: scaling deductible: %w", err)
	}
	net, err := mat.Sub(retained)
	if err != nil {
		return nil, fmt.Errorf("engine: netting deductible: %w", err)
	}
	net.Prune()
	return net, nil
}

// ApplyCover clips every impact to the range [0, cover] per point. The
// matrix is modified in place and returned.
//
// Complexity: O(nnz).
func ApplyCover(mat *sparse.CSR, cover []float64) (*sparse.CSR, error) {
	if err := mat.ClipCols(0, cover); err != nil {
		return nil, fmt.Errorf("engine: capping at cover: %w", err)
	}
	mat.Prune()
	return mat, nil
}

// insuredStream nets insurance terms out of a gross stream chunk by
// chunk. Missing deductibles count as zero, missing covers as
// unlimited; the floor at zero always applies.
type insuredStream struct {
	src   *matrixStream
	calc  *Calculator
	chunk MatrixChunk
	err   error
}

func (s *insuredStream) Next() bool {
	if s.err != nil || !s.src.Next() {
		return false
	}
	gross := s.src.Chunk()

	n := len(gross.Pos)
	mat := gross.Mat
	if len(s.calc.exp.Deductible) > 0 {
		deductible := make([]float64, n)
		centIdx := make([]int, n)
		for i, p := range gross.Pos {
			deductible[i] = s.calc.exp.Deductible[p]
		}
		for i, p := range s.src.viewPos {
			centIdx[i] = s.src.view.centIdx[p]
		}
		var err error
		mat, err = ApplyDeductible(mat, deductible, s.calc.haz, centIdx, s.src.fn)
		if err != nil {
			s.err = err
			return false
		}
	}
	cover := make([]float64, n)
	for i := range cover {
		cover[i] = math.Inf(1)
	}
	if len(s.calc.exp.Cover) > 0 {
		for i, p := range gross.Pos {
			cover[i] = s.calc.exp.Cover[p]
		}
	}
	mat, err := ApplyCover(mat, cover)
	if err != nil {
		s.err = err
		return false
	}
	s.chunk = MatrixChunk{Mat: mat, Pos: gross.Pos}
	return true
}

func (s *insuredStream) Chunk() MatrixChunk { return s.chunk }

func (s *insuredStream) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.src.Err()
}

// InsuredChunks returns the insured impact stream: the gross stream
// with deductible and cover netted out of every chunk. Fails with
// ErrNoInsuranceTerms when the portfolio carries neither column.
//
// Complexity: O(points) setup, chunk cost paid per Next call.
func (c *Calculator) InsuredChunks(opts ...Option) (ChunkStream, error) {
	if len(c.exp.Cover) == 0 && len(c.exp.Deductible) == 0 {
		return nil, ErrNoInsuranceTerms
	}
	o := gatherOptions(opts...)
	v, err := c.buildView(&o)
	if err != nil {
		return nil, err
	}
	return c.insuredStreamFor(v, &o)
}

// insuredStreamFor wraps the gross stream for an already built view.
func (c *Calculator) insuredStreamFor(v *view, o *Options) (*insuredStream, error) {
	src, err := c.grossStream(v, o)
	if err != nil {
		return nil, err
	}
	return &insuredStream{src: src, calc: c}, nil
}
