package engine

import (
	"fmt"
	"time"

	"github.com/riskforge/catrisk/exposures"
	"github.com/riskforge/catrisk/hazard"
	"github.com/riskforge/catrisk/impactfunc"
	"github.com/riskforge/catrisk/sparse"
)

// Calculator binds a portfolio, a vulnerability curve set and a hazard
// catalog for impact computation. It holds no computation state; every
// call derives its own view of the inputs.
type Calculator struct {
	exp *exposures.Exposures
	fns *impactfunc.Set
	haz *hazard.Hazard
}

// NewCalculator returns a calculator over the given inputs. All three
// must be non-nil; the inputs are validated on each computation, not
// here.
func NewCalculator(exp *exposures.Exposures, fns *impactfunc.Set, haz *hazard.Hazard) *Calculator {
	return &Calculator{exp: exp, fns: fns, haz: haz}
}

// Impact computes the gross impact of the hazard on the portfolio.
// Deductible and cover columns on the portfolio are ignored; use
// InsuredImpact to net them out.
//
// Complexity: O(points + total nnz), one chunk matrix held at a time
// unless WithSaveMatrix is set.
func (c *Calculator) Impact(opts ...Option) (*Impact, error) {
	o := gatherOptions(opts...)
	return c.run(&o, false)
}

// InsuredImpact computes the impact net of insurance terms: per point
// and event, the gross impact minus the affection-scaled deductible,
// clipped to the range [0, cover]. Fails with ErrNoInsuranceTerms when
// the portfolio carries neither deductible nor cover.
//
// Complexity: O(points + total nnz).
func (c *Calculator) InsuredImpact(opts ...Option) (*Impact, error) {
	if len(c.exp.Cover) == 0 && len(c.exp.Deductible) == 0 {
		return nil, ErrNoInsuranceTerms
	}
	o := gatherOptions(opts...)
	return c.run(&o, true)
}

// run drives one computation: build the view, stream the chunks, and
// reduce them to metrics, materializing the matrix only on request.
func (c *Calculator) run(o *Options, insured bool) (*Impact, error) {
	v, err := c.buildView(o)
	if err != nil {
		return nil, err
	}
	nEvents := c.haz.Size()
	nPoints := c.exp.NumPoints()
	if len(v.origIdx) == 0 {
		return c.finishImpact(v, make([]float64, nEvents), make([]float64, nPoints), 0, nil, o)
	}

	o.logger.Info().
		Str("haz_type", c.haz.Type).
		Int("assets", len(v.origIdx)).
		Int("events", nEvents).
		Bool("insured", insured).
		Msg("calculating impact")

	var stream ChunkStream
	if insured {
		stream, err = c.insuredStreamFor(v, o)
	} else {
		stream, err = c.grossStream(v, o)
	}
	if err != nil {
		return nil, err
	}

	if o.saveMatrix {
		mat, err := StitchMatrix(stream, nEvents, nPoints)
		if err != nil {
			return nil, err
		}
		atEvent, eaiExp, aaiAgg, err := RiskMetrics(mat, c.haz.Frequency)
		if err != nil {
			return nil, err
		}
		return c.finishImpact(v, atEvent, eaiExp, aaiAgg, mat, o)
	}
	atEvent, eaiExp, aaiAgg, err := StitchRiskMetrics(stream, c.haz.Frequency, nPoints)
	if err != nil {
		return nil, err
	}
	return c.finishImpact(v, atEvent, eaiExp, aaiAgg, nil, o)
}

// finishImpact assembles the result, copying catalog and portfolio
// metadata so the Impact stays valid if the inputs change later.
func (c *Calculator) finishImpact(v *view, atEvent, eaiExp []float64, aaiAgg float64, mat *sparse.CSR, o *Options) (*Impact, error) {
	if o.saveMatrix && mat == nil {
		empty, err := sparse.New(c.haz.Size(), c.exp.NumPoints())
		if err != nil {
			return nil, fmt.Errorf("engine: shaping empty impact matrix: %w", err)
		}
		mat = empty
	}
	var total float64
	for _, val := range v.values {
		total += val
	}
	return &Impact{
		HazType:    c.haz.Type,
		Unit:       c.exp.ValueUnit,
		EventID:    append([]int64(nil), c.haz.EventID...),
		EventName:  append([]string(nil), c.haz.EventName...),
		Date:       append([]time.Time(nil), c.haz.Date...),
		Frequency:  append([]float64(nil), c.haz.Frequency...),
		Lat:        append([]float64(nil), c.exp.Lat...),
		Lon:        append([]float64(nil), c.exp.Lon...),
		TotalValue: total,
		AtEvent:    atEvent,
		EAIExp:     eaiExp,
		AAIAgg:     aaiAgg,
		Matrix:     mat,
	}, nil
}
