package wavelet

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Kind selects the pulse shape a Generator produces.
type Kind int

const (
	KindRicker Kind = iota
	KindOrmsby
)

// Generator produces a configured source pulse. The pulse depends only on
// the configuration and the requested sampling, never on trace data, so
// one generated pulse is cached and shared by every trace of a run.
type Generator struct {
	kind  Kind
	freq  float64
	band  [4]float64
	taper bool

	cachedDur float64
	cachedDt  float64
	cached    []float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithKind selects the pulse shape.
func WithKind(kind Kind) Option {
	return func(g *Generator) {
		g.kind = kind
	}
}

// WithFrequency sets the Ricker peak frequency in hertz.
func WithFrequency(f float64) Option {
	return func(g *Generator) {
		if f > 0 {
			g.freq = f
		}
	}
}

// WithOrmsbyBand sets the four Ormsby corner frequencies in hertz and
// switches the generator to the Ormsby shape.
func WithOrmsbyBand(f1, f2, f3, f4 float64) Option {
	return func(g *Generator) {
		g.kind = KindOrmsby
		g.band = [4]float64{f1, f2, f3, f4}
	}
}

// WithTaper applies a raised-cosine taper over the pulse so its edges
// decay smoothly to zero instead of truncating.
func WithTaper() Option {
	return func(g *Generator) {
		g.taper = true
	}
}

// NewGenerator creates a pulse generator. The default shape is a Ricker
// wavelet with a 4000 Hz peak frequency.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		kind: KindRicker,
		freq: 4000,
		band: [4]float64{1000, 2000, 4000, 6000},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Pulse returns the configured pulse sampled at spacing dt over duration,
// both in seconds. Repeated calls with the same sampling return the same
// cached slice; callers must treat it as read-only.
func (g *Generator) Pulse(duration, dt float64) ([]float64, error) {
	if g.cached != nil && g.cachedDur == duration && g.cachedDt == dt {
		return g.cached, nil
	}

	var (
		out []float64
		err error
	)
	switch g.kind {
	case KindOrmsby:
		out, err = Ormsby(duration, dt, g.band[0], g.band[1], g.band[2], g.band[3])
	default:
		out, err = Ricker(duration, dt, g.freq)
	}
	if err != nil {
		return nil, err
	}

	if g.taper {
		vecmath.MulBlockInPlace(out, raisedCosine(len(out)))
	}

	g.cachedDur = duration
	g.cachedDt = dt
	g.cached = out
	return out, nil
}

// raisedCosine returns Hann taper coefficients of length n.
func raisedCosine(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return out
}
