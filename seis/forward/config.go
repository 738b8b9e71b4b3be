package forward

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-seismic/seis/wavelet"
)

// ErrConfig marks invalid pipeline configuration.
var ErrConfig = errors.New("forward: invalid configuration")

// Config holds the pipeline parameters. Zero values are filled by
// DefaultConfig; use the With* options to override.
type Config struct {
	// Dt is the uniform time-axis spacing in milliseconds.
	Dt float64

	// Frequency is the Ricker peak frequency in hertz, used when no
	// custom wavelet generator is supplied.
	Frequency float64

	// VPScale and RHOBScale convert raw input units before the impedance
	// product. The defaults assume velocity in m/s and density scaled by
	// the reference workflow's factor of 1e3.
	VPScale   float64
	RHOBScale float64

	// DepthStep is the constant depth-sample spacing in meters. When
	// zero, per-sample spacing is derived from the Y grid instead.
	DepthStep float64

	// Workers bounds the parallel per-trace fan-out.
	Workers int

	// Wavelet overrides the default Ricker generator when non-nil.
	Wavelet *wavelet.Generator
}

// Option configures a modelling run.
type Option func(*Config)

// DefaultConfig returns the reference-workflow defaults: dt 0.02 ms,
// 4000 Hz Ricker, m/s velocities and the 1e3 density factor, depth step
// derived from the Y grid, one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Dt:        0.02,
		Frequency: 4000,
		VPScale:   1e-3,
		RHOBScale: 1e3,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// WithDt sets the time-axis spacing in milliseconds.
func WithDt(dt float64) Option {
	return func(c *Config) {
		c.Dt = dt
	}
}

// WithFrequency sets the Ricker peak frequency in hertz.
func WithFrequency(f float64) Option {
	return func(c *Config) {
		c.Frequency = f
	}
}

// WithVPScale sets the velocity unit-conversion factor.
func WithVPScale(s float64) Option {
	return func(c *Config) {
		c.VPScale = s
	}
}

// WithRHOBScale sets the density unit-conversion factor.
func WithRHOBScale(s float64) Option {
	return func(c *Config) {
		c.RHOBScale = s
	}
}

// WithDepthStep fixes the depth-sample spacing in meters instead of
// deriving it from the Y grid.
func WithDepthStep(dz float64) Option {
	return func(c *Config) {
		c.DepthStep = dz
	}
}

// WithWorkers bounds the parallel per-trace fan-out.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithWavelet supplies a custom pulse generator, replacing the default
// Ricker at the configured frequency.
func WithWavelet(g *wavelet.Generator) Option {
	return func(c *Config) {
		c.Wavelet = g
	}
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt = %v", ErrConfig, c.Dt)
	}
	if c.Frequency <= 0 && c.Wavelet == nil {
		return fmt.Errorf("%w: frequency = %v", ErrConfig, c.Frequency)
	}
	if c.VPScale == 0 || c.RHOBScale == 0 {
		return fmt.Errorf("%w: zero unit scale", ErrConfig)
	}
	if c.DepthStep < 0 {
		return fmt.Errorf("%w: depth step = %v", ErrConfig, c.DepthStep)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers = %d", ErrConfig, c.Workers)
	}
	return nil
}
