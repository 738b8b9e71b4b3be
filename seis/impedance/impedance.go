package impedance

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seismic/seis/grid"
)

// Default unit conversion factors for the common field units:
// velocity in m/s scaled to km/s, density in kg/m^3 scaled by 1e3.
const (
	DefaultVPScale   = 1e-3
	DefaultRHOBScale = 1e3
)

// Impedance computes the acoustic impedance grid AI = (vp*vpScale) * (rhob*rhobScale).
// vp and rhob must share a shape. Non-positive velocities or densities are
// the caller's responsibility; the resulting NaN/Inf values propagate so
// that QC of the output reveals bad input data.
func Impedance(vp, rhob *grid.Grid, vpScale, rhobScale float64) (*grid.Grid, error) {
	if err := grid.SameShape(vp, rhob); err != nil {
		return nil, fmt.Errorf("impedance: %w", err)
	}

	out, err := grid.New(vp.NumSamples(), vp.NumTraces())
	if err != nil {
		return nil, fmt.Errorf("impedance: %w", err)
	}

	vecmath.MulBlock(out.Data(), vp.Data(), rhob.Data())

	scale := vpScale * rhobScale
	if scale != 1 {
		data := out.Data()
		for i := range data {
			data[i] *= scale
		}
	}
	return out, nil
}

// ReflectionCoefficients computes normal-incidence reflection coefficients
// per trace from an impedance grid:
//
//	RC[0]   = 0
//	RC[i]   = (AI[i] - AI[i-1]) / (AI[i] + AI[i-1])   for i >= 1
//
// The top sample of every trace is zero; there is no reflector above the
// first sample. A zero impedance sum yields an explicit NaN rather than a
// runtime fault. For strictly positive impedance all coefficients lie in
// (-1, 1).
func ReflectionCoefficients(ai *grid.Grid) (*grid.Grid, error) {
	if err := grid.SameShape(ai); err != nil {
		return nil, fmt.Errorf("impedance: %w", err)
	}

	out, err := grid.New(ai.NumSamples(), ai.NumTraces())
	if err != nil {
		return nil, fmt.Errorf("impedance: %w", err)
	}

	for j := 0; j < ai.NumTraces(); j++ {
		a := ai.Trace(j)
		rc := out.Trace(j)
		rc[0] = 0
		for i := 1; i < len(a); i++ {
			sum := a[i] + a[i-1]
			if sum == 0 {
				rc[i] = math.NaN()
				continue
			}
			rc[i] = (a[i] - a[i-1]) / sum
		}
	}
	return out, nil
}
