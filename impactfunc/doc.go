// Package impactfunc models vulnerability curves and the registry that
// resolves them by (hazard type, function id).
//
// A vulnerability curve samples three quantities over increasing hazard
// intensity:
//
//   - MDD, the mean damage degree: expected fraction of value destroyed
//     given the point is affected.
//   - PAA, the probability of affection: chance the event touches the
//     point at all.
//   - MDR = MDD·PAA, the mean damage ratio actually applied to exposure
//     values.
//
// CalcMDR and CalcPAA evaluate the curves at arbitrary intensities by
// linear interpolation between samples; outside the sampled range the
// nearest endpoint value holds. Repeated intensity samples are allowed
// and produce step discontinuities, with the later sample winning at the
// exact step location. StepFunc and SigmoidFunc build the two common
// parametric shapes.
//
// Set is the registry: curves are added once, validated, and looked up
// by the impact engine per exposure group.
//
// # Errors
//
//	ErrFuncNotFound  - no curve registered under (hazard type, id).
//	ErrBadCurve      - curve samples are malformed.
//	ErrNoHazType     - curve carries no hazard type identifier.
//	ErrDuplicateFunc - a curve with the same (hazard type, id) exists.
package impactfunc
