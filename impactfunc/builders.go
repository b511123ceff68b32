package impactfunc

import "math"

// StepFunc builds a step curve: zero damage below threshold, full damage
// at and above it, up to intenMax. PAA is one everywhere, so MDR jumps
// from 0 to 1 exactly at the threshold.
//
// Returns ErrBadCurve when the threshold falls outside [0, intenMax].
func StepFunc(hazType string, id int, threshold, intenMax float64) (*ImpactFunc, error) {
	f := &ImpactFunc{
		HazType:   hazType,
		ID:        id,
		Name:      "step",
		Intensity: []float64{0, threshold, threshold, intenMax},
		MDD:       []float64{0, 0, 1, 1},
		PAA:       []float64{1, 1, 1, 1},
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// SigmoidFunc builds a sigmoid damage curve over the given intensity
// samples: MDD = l / (1 + exp(-k·(intensity − x0))), PAA one everywhere.
// l is the damage plateau, k the steepness, x0 the midpoint intensity.
//
// Returns ErrBadCurve on malformed samples.
func SigmoidFunc(hazType string, id int, l, k, x0 float64, intensity []float64) (*ImpactFunc, error) {
	f := &ImpactFunc{
		HazType:   hazType,
		ID:        id,
		Name:      "sigmoid",
		Intensity: append([]float64(nil), intensity...),
		MDD:       make([]float64, len(intensity)),
		PAA:       make([]float64, len(intensity)),
	}
	for i, x := range intensity {
		f.MDD[i] = l / (1 + math.Exp(-k*(x-x0)))
		f.PAA[i] = 1
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
