package traveltime

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-seismic/seis/grid"
)

// Errors returned by travel-time construction and mapping.
var (
	ErrInvalidStep    = errors.New("traveltime: step must be > 0")
	ErrInvalidAxis    = errors.New("traveltime: invalid axis parameters")
	ErrLengthMismatch = errors.New("traveltime: length mismatch")
)

// Curve computes the two-way travel time curve of a single trace, in
// milliseconds. vp holds interval velocities in m/s and dz is the constant
// depth-sample spacing in meters.
//
// The datum convention is TWT[0] = 0: time zero sits at the first depth
// sample, and each later sample adds the two-way increment 2*dz/vp[i]
// through the layer above it. For strictly positive velocities the curve
// is non-decreasing; non-positive velocities propagate Inf/NaN.
func Curve(vp []float64, dz float64) ([]float64, error) {
	if dz <= 0 {
		return nil, fmt.Errorf("%w: dz = %v", ErrInvalidStep, dz)
	}
	twt := make([]float64, len(vp))
	for i := 1; i < len(vp); i++ {
		twt[i] = twt[i-1] + 2*dz/vp[i]*1000
	}
	return twt, nil
}

// CurveSteps is Curve with a per-step depth spacing: dz[i] is the distance
// between depth samples i-1 and i, so len(dz) must be len(vp)-1. It serves
// grids whose vertical coordinate is supplied explicitly rather than as a
// single constant.
func CurveSteps(vp, dz []float64) ([]float64, error) {
	if len(dz) != len(vp)-1 {
		return nil, fmt.Errorf("%w: %d steps for %d samples", ErrLengthMismatch, len(dz), len(vp))
	}
	twt := make([]float64, len(vp))
	for i := 1; i < len(vp); i++ {
		if dz[i-1] <= 0 {
			return nil, fmt.Errorf("%w: dz[%d] = %v", ErrInvalidStep, i-1, dz[i-1])
		}
		twt[i] = twt[i-1] + 2*dz[i-1]/vp[i]*1000
	}
	return twt, nil
}

// Curves computes the TWT curve of every trace in vp and the global
// maximum travel time across all traces. The returned grid matches the
// shape of vp. T_max is the single cross-trace reduction of the pipeline;
// every per-trace stage after it is independent.
func Curves(vp *grid.Grid, dz float64) (*grid.Grid, float64, error) {
	if err := grid.SameShape(vp); err != nil {
		return nil, 0, fmt.Errorf("traveltime: %w", err)
	}
	out, err := grid.New(vp.NumSamples(), vp.NumTraces())
	if err != nil {
		return nil, 0, fmt.Errorf("traveltime: %w", err)
	}

	tmax := 0.0
	for j := 0; j < vp.NumTraces(); j++ {
		twt, err := Curve(vp.Trace(j), dz)
		if err != nil {
			return nil, 0, fmt.Errorf("traveltime: trace %d: %w", j, err)
		}
		copy(out.Trace(j), twt)
		if last := twt[len(twt)-1]; last > tmax {
			tmax = last
		}
	}
	return out, tmax, nil
}
