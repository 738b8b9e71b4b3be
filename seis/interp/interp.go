// Package interp evaluates uniformly sampled series at arbitrary
// positions by linear interpolation, with edge clamping for queries
// outside the sampled range. The depth back-conversion stage uses it to
// read a trace's time-domain seismic at that trace's own travel times.
package interp

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by evaluator construction.
var (
	ErrEmptySamples   = errors.New("interp: empty samples")
	ErrInvalidSpacing = errors.New("interp: spacing must be > 0")
)

// Uniform evaluates a series sampled at start, start+dt, start+2*dt, ...
// by linear interpolation between the two bracketing samples. Queries
// before the first or after the last sample clamp to the edge value, so
// out-of-range positions never produce undefined results. Linear
// interpolation never overshoots: every result is bounded by the sample
// min and max.
//
// A Uniform holds a reference to the sample slice without copying; it is
// safe for concurrent Eval calls as long as the samples are not mutated.
type Uniform struct {
	start   float64
	dt      float64
	samples []float64
}

// NewUniform creates an evaluator over samples spaced dt apart starting
// at start.
func NewUniform(start, dt float64, samples []float64) (*Uniform, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySamples
	}
	if dt <= 0 || math.IsNaN(dt) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpacing, dt)
	}
	return &Uniform{start: start, dt: dt, samples: samples}, nil
}

// Eval returns the interpolated value at position t. NaN positions
// propagate NaN.
func (u *Uniform) Eval(t float64) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}
	x := (t - u.start) / u.dt
	last := len(u.samples) - 1
	if x <= 0 {
		return u.samples[0]
	}
	if x >= float64(last) {
		return u.samples[last]
	}
	i := int(x)
	frac := x - float64(i)
	return u.samples[i] + frac*(u.samples[i+1]-u.samples[i])
}

// EvalAll evaluates every position in ts. If dst is non-nil it must have
// len(ts) and receives the results; otherwise a new slice is allocated.
func (u *Uniform) EvalAll(ts, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(ts))
	}
	for i, t := range ts {
		dst[i] = u.Eval(t)
	}
	return dst
}
