package traveltime

import (
	"fmt"
	"math"
)

// Axis is the uniform time axis shared by every trace of a run. It spans
// 0 to tmax+dt inclusive at fixed spacing dt (milliseconds), so a mapped
// sample can land one step beyond the deepest travel time without
// truncation. An Axis is immutable after construction and safe to share
// across concurrent per-trace workers.
type Axis struct {
	dt float64
	n  int
}

// NewAxis builds the shared axis for a global maximum travel time tmax
// and sample spacing dt, both in milliseconds.
func NewAxis(tmax, dt float64) (Axis, error) {
	if dt <= 0 || math.IsNaN(dt) {
		return Axis{}, fmt.Errorf("%w: dt = %v", ErrInvalidAxis, dt)
	}
	if tmax < 0 || math.IsNaN(tmax) || math.IsInf(tmax, 0) {
		return Axis{}, fmt.Errorf("%w: tmax = %v", ErrInvalidAxis, tmax)
	}
	n := int(math.Ceil((tmax+dt)/dt)) + 1
	return Axis{dt: dt, n: n}, nil
}

// Dt returns the sample spacing in milliseconds.
func (a Axis) Dt() float64 {
	return a.dt
}

// Len returns the number of axis samples.
func (a Axis) Len() int {
	return a.n
}

// End returns the time of the last axis sample in milliseconds.
func (a Axis) End() float64 {
	return float64(a.n-1) * a.dt
}

// Value returns the time of sample k in milliseconds.
func (a Axis) Value(k int) float64 {
	return float64(k) * a.dt
}

// Values materializes the full axis as a slice.
func (a Axis) Values() []float64 {
	out := make([]float64, a.n)
	for k := range out {
		out[k] = float64(k) * a.dt
	}
	return out
}

// Nearest returns the index of the axis sample closest to t, clamped to
// the valid range. For a uniform axis this is a rounded division, which
// matches an argmin over |axis[k]-t|.
func (a Axis) Nearest(t float64) int {
	k := int(math.Round(t / a.dt))
	if k < 0 {
		return 0
	}
	if k >= a.n {
		return a.n - 1
	}
	return k
}
