package engine_test

import (
	"testing"

	"github.com/riskforge/catrisk/engine"
	"github.com/riskforge/catrisk/exposures"
	"github.com/riskforge/catrisk/hazard"
	"github.com/riskforge/catrisk/impactfunc"
	"github.com/riskforge/catrisk/logging"
	"github.com/riskforge/catrisk/sparse"
)

// benchCalculator builds a synthetic computation of nEvents events over
// nPoints insured points on a 500-centroid grid, with a footprint
// touching roughly one seventh of the cells.
func benchCalculator(b *testing.B, nEvents, nPoints int) *engine.Calculator {
	b.Helper()
	const nCentroids = 500

	curve := &impactfunc.ImpactFunc{
		HazType:   "TC",
		ID:        1,
		Intensity: []float64{0, 20, 60},
		MDD:       []float64{0, 0.3, 0.9},
		PAA:       []float64{0, 0.8, 1},
	}
	fns := impactfunc.NewSet()
	if err := fns.Add(curve); err != nil {
		b.Fatalf("Add failed: %v", err)
	}

	dense := make([][]float64, nEvents)
	for i := range dense {
		dense[i] = make([]float64, nCentroids)
		for j := 0; j < nCentroids; j++ {
			if (i+j)%7 == 0 {
				dense[i][j] = float64((i+j)%60 + 1)
			}
		}
	}
	inten, err := sparse.FromDense(dense)
	if err != nil {
		b.Fatalf("FromDense failed: %v", err)
	}
	freq := make([]float64, nEvents)
	for i := range freq {
		freq[i] = 1.0 / float64(i+1)
	}
	h := &hazard.Hazard{
		Type:      "TC",
		Units:     "m/s",
		Frequency: freq,
		Intensity: inten,
	}

	exp := &exposures.Exposures{
		ValueUnit:  "USD",
		Lat:        make([]float64, nPoints),
		Lon:        make([]float64, nPoints),
		Value:      make([]float64, nPoints),
		Deductible: make([]float64, nPoints),
		Cover:      make([]float64, nPoints),
	}
	ids := make([]int, nPoints)
	cents := make([]int, nPoints)
	for p := 0; p < nPoints; p++ {
		exp.Value[p] = float64(p%971 + 1)
		exp.Deductible[p] = float64(p % 13)
		exp.Cover[p] = float64(p%700 + 50)
		ids[p] = 1
		cents[p] = p % nCentroids
	}
	if err = exp.SetFuncIDs("TC", ids); err != nil {
		b.Fatalf("SetFuncIDs failed: %v", err)
	}
	if err = exp.SetCentroids("TC", cents); err != nil {
		b.Fatalf("SetCentroids failed: %v", err)
	}
	return engine.NewCalculator(exp, fns, h)
}

// BenchmarkImpact_Streaming measures the default streaming reduction on
// 100 events × 2000 points.
func BenchmarkImpact_Streaming(b *testing.B) {
	calc := benchCalculator(b, 100, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Impact(engine.WithLogger(logging.Nop())); err != nil {
			b.Fatalf("Impact failed: %v", err)
		}
	}
}

// BenchmarkImpact_SaveMatrix measures materializing the full matrix on
// 100 events × 2000 points.
func BenchmarkImpact_SaveMatrix(b *testing.B) {
	calc := benchCalculator(b, 100, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Impact(engine.WithSaveMatrix(), engine.WithLogger(logging.Nop())); err != nil {
			b.Fatalf("Impact failed: %v", err)
		}
	}
}

// BenchmarkImpact_TightBudget measures the chunking overhead when the
// cell budget forces around forty chunks.
func BenchmarkImpact_TightBudget(b *testing.B) {
	calc := benchCalculator(b, 100, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Impact(engine.WithMaxCells(5000), engine.WithLogger(logging.Nop())); err != nil {
			b.Fatalf("Impact failed: %v", err)
		}
	}
}

// BenchmarkInsuredImpact_Streaming measures the insured path on
// 100 events × 2000 points.
func BenchmarkInsuredImpact_Streaming(b *testing.B) {
	calc := benchCalculator(b, 100, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.InsuredImpact(engine.WithLogger(logging.Nop())); err != nil {
			b.Fatalf("InsuredImpact failed: %v", err)
		}
	}
}
