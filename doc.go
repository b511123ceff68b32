// Package catrisk computes probabilistic catastrophe risk: how much an
// asset portfolio stands to lose, per event and per year, when a hazard
// catalog meets a set of vulnerability curves.
//
// 🚀 What is catrisk?
//
//	A streaming impact engine with the data model around it:
//		• Sparse algebra: CSR matrices tuned for event × exposure footprints
//		• Vulnerability: intensity → damage ratio / affection curves, per hazard type
//		• Hazard catalogs: frequencies, footprints, select/append/validate
//		• Exposures: columnar portfolios with centroid assignment & insurance terms
//		• Engine: chunked gross & insured impact, per-event and annual metrics
//
// ✨ Why choose catrisk?
//
//   - Memory-bounded – footprints stream through a configurable cell budget,
//     never materializing the full event × exposure matrix uninvited
//   - Exact bookkeeping – results always index the original portfolio,
//     however the computation was filtered or chunked
//   - Concurrency-safe – one Calculator serves parallel computations
//   - Pure Go – sparse kernels implemented in-repo, no cgo
//
// Everything is organized under per-concern packages:
//
//	sparse/     — compressed sparse row matrices & the impact algebra
//	impactfunc/ — vulnerability curves and their per-hazard registry
//	hazard/     — event catalogs: footprints, frequencies, centroids
//	exposures/  — asset portfolios: values, coordinates, insurance terms
//	engine/     — the impact calculator, chunk streams, risk metrics
//	config/     — process-wide settings (cell budget, log level)
//	logging/    — zerolog setup shared across the library
//
// A computation in four lines:
//
//	calc := engine.NewCalculator(portfolio, curves, catalog)
//	imp, err := calc.Impact()          // streaming gross impact
//	imp, err = calc.InsuredImpact()    // net of deductible & cover
//	curve := imp.FreqCurve(10, 50, 100) // exceedance at return periods
//
// Dive into examples/ for full scenarios and each package's doc.go for
// the contracts.
//
//	go get github.com/riskforge/catrisk
package catrisk
