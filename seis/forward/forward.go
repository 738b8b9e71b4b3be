package forward

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-seismic/seis/conv"
	"github.com/cwbudde/algo-seismic/seis/grid"
	"github.com/cwbudde/algo-seismic/seis/impedance"
	"github.com/cwbudde/algo-seismic/seis/interp"
	"github.com/cwbudde/algo-seismic/seis/traveltime"
	"github.com/cwbudde/algo-seismic/seis/wavelet"
)

// ErrInput marks invalid input grids.
var ErrInput = errors.New("forward: invalid input")

// Input carries the four aligned grids of a modelling run. X and Y give
// the planar coordinate and depth of every sample; VP and RHOB hold
// velocity and density in the units the configured scales expect. All
// four must share a shape.
type Input struct {
	X, Y, VP, RHOB *grid.Grid
}

// Result bundles the grids a run produces, plus the shared axis and
// wavelet for diagnostic display. Depth-domain grids match the input
// shape; time-domain grids have Axis.Len samples per trace.
type Result struct {
	AI      *grid.Grid // acoustic impedance, depth domain
	RCDepth *grid.Grid // reflection coefficients, depth domain
	TWT     *grid.Grid // two-way travel time curves, ms

	RCTime    *grid.Grid // reflectivity mapped to the shared axis
	SeisTime  *grid.Grid // synthetic seismic, time domain
	SeisDepth *grid.Grid // synthetic seismic back in depth domain

	TMax    float64 // global maximum travel time, ms
	Axis    traveltime.Axis
	Wavelet []float64
}

// Model runs the full forward pipeline: impedance, reflectivity, travel
// times, shared axis, wavelet convolution, and depth back-conversion.
//
// Per-trace stages after the T_max reduction are independent and run in
// parallel across the configured worker count. Any failure aborts the
// whole run with the stage and trace identified; there is no partial
// result.
func Model(in Input, opts ...Option) (*Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if in.X == nil || in.Y == nil || in.VP == nil || in.RHOB == nil {
		return nil, fmt.Errorf("%w: all four grids are required", ErrInput)
	}
	if err := grid.SameShape(in.X, in.Y, in.VP, in.RHOB); err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	if cfg.DepthStep == 0 && in.Y.NumSamples() < 2 {
		return nil, fmt.Errorf("%w: cannot derive depth step from a single sample", ErrInput)
	}

	ai, err := impedance.Impedance(in.VP, in.RHOB, cfg.VPScale, cfg.RHOBScale)
	if err != nil {
		return nil, fmt.Errorf("forward: impedance stage: %w", err)
	}
	rc, err := impedance.ReflectionCoefficients(ai)
	if err != nil {
		return nil, fmt.Errorf("forward: reflectivity stage: %w", err)
	}

	twt, tmax, err := travelTimes(in, cfg)
	if err != nil {
		return nil, err
	}

	ax, err := traveltime.NewAxis(tmax, cfg.Dt)
	if err != nil {
		return nil, fmt.Errorf("forward: axis stage: %w", err)
	}

	gen := cfg.Wavelet
	if gen == nil {
		gen = wavelet.NewGenerator(wavelet.WithFrequency(cfg.Frequency))
	}
	// The wavelet spans the full axis, in seconds.
	pulse, err := gen.Pulse((tmax+cfg.Dt)/1000, cfg.Dt/1000)
	if err != nil {
		return nil, fmt.Errorf("forward: wavelet stage: %w", err)
	}

	convolver, err := conv.NewConvolver(pulse)
	if err != nil {
		return nil, fmt.Errorf("forward: convolution stage: %w", err)
	}

	ntr := in.VP.NumTraces()
	rcTime, err := grid.New(ax.Len(), ntr)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	seisTime, err := grid.New(ax.Len(), ntr)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	seisDepth, err := grid.New(in.VP.NumSamples(), ntr)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}

	var g errgroup.Group
	for _, chunk := range chunks(ntr, cfg.Workers) {
		c := convolver.Clone()
		first, last := chunk[0], chunk[1]
		g.Go(func() error {
			for j := first; j < last; j++ {
				if err := modelTrace(j, rc, twt, ax, c, rcTime, seisTime, seisDepth); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		AI:        ai,
		RCDepth:   rc,
		TWT:       twt,
		RCTime:    rcTime,
		SeisTime:  seisTime,
		SeisDepth: seisDepth,
		TMax:      tmax,
		Axis:      ax,
		Wavelet:   pulse,
	}, nil
}

// modelTrace runs the per-trace tail of the pipeline: map reflectivity
// onto the axis, convolve with the wavelet, and interpolate back onto the
// trace's own depth samples. Each trace writes only its own column, so
// workers need no synchronization.
func modelTrace(j int, rc, twt *grid.Grid, ax traveltime.Axis, c *conv.Convolver, rcTime, seisTime, seisDepth *grid.Grid) error {
	mapped, err := traveltime.MapToAxis(rc.Trace(j), twt.Trace(j), ax)
	if err != nil {
		return fmt.Errorf("forward: map stage, trace %d: %w", j, err)
	}
	copy(rcTime.Trace(j), mapped)

	synth, err := c.Same(mapped)
	if err != nil {
		return fmt.Errorf("forward: convolution stage, trace %d: %w", j, err)
	}
	copy(seisTime.Trace(j), synth)

	ev, err := interp.NewUniform(0, ax.Dt(), seisTime.Trace(j))
	if err != nil {
		return fmt.Errorf("forward: depth stage, trace %d: %w", j, err)
	}
	ev.EvalAll(twt.Trace(j), seisDepth.Trace(j))
	return nil
}

// travelTimes builds the TWT grid and the global maximum, either from a
// fixed depth step or from per-sample Y spacing.
func travelTimes(in Input, cfg Config) (*grid.Grid, float64, error) {
	if cfg.DepthStep > 0 {
		twt, tmax, err := traveltime.Curves(in.VP, cfg.DepthStep)
		if err != nil {
			return nil, 0, fmt.Errorf("forward: traveltime stage: %w", err)
		}
		return twt, tmax, nil
	}

	ns := in.VP.NumSamples()
	twt, err := grid.New(ns, in.VP.NumTraces())
	if err != nil {
		return nil, 0, fmt.Errorf("forward: %w", err)
	}

	tmax := 0.0
	steps := make([]float64, ns-1)
	for j := 0; j < in.VP.NumTraces(); j++ {
		y := in.Y.Trace(j)
		for i := 1; i < ns; i++ {
			steps[i-1] = math.Abs(y[i] - y[i-1])
		}
		curve, err := traveltime.CurveSteps(in.VP.Trace(j), steps)
		if err != nil {
			return nil, 0, fmt.Errorf("forward: traveltime stage, trace %d: %w", j, err)
		}
		copy(twt.Trace(j), curve)
		if last := curve[ns-1]; last > tmax {
			tmax = last
		}
	}
	return twt, tmax, nil
}

// chunks splits n traces into at most workers contiguous [first, last)
// ranges.
func chunks(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	out := make([][2]int, 0, workers)
	size := (n + workers - 1) / workers
	for first := 0; first < n; first += size {
		last := first + size
		if last > n {
			last = n
		}
		out = append(out, [2]int{first, last})
	}
	return out
}
