package wavelet

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by wavelet generation.
var (
	ErrInvalidDuration  = errors.New("wavelet: duration must cover at least one sample")
	ErrInvalidSpacing   = errors.New("wavelet: dt must be > 0")
	ErrInvalidFrequency = errors.New("wavelet: frequency must be > 0")
	ErrInvalidBand      = errors.New("wavelet: corner frequencies must be strictly increasing")
)

// Ricker generates a zero-phase Ricker pulse: the second derivative of a
// Gaussian,
//
//	w(t) = (1 - 2*pi^2*f^2*t^2) * exp(-pi^2*f^2*t^2)
//
// sampled at spacing dt over the given duration, with peak frequency f.
// duration and dt are in seconds, f in hertz. The sample count is rounded
// to the nearest odd number so the unit peak sits exactly at the center
// sample and the pulse is symmetric.
func Ricker(duration, dt, f float64) ([]float64, error) {
	n, err := sampleCount(duration, dt)
	if err != nil {
		return nil, err
	}
	if f <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, f)
	}

	out := make([]float64, n)
	half := (n - 1) / 2
	for i := range out {
		t := float64(i-half) * dt
		a := math.Pi * math.Pi * f * f * t * t
		out[i] = (1 - 2*a) * math.Exp(-a)
	}
	return out, nil
}

// Ormsby generates a zero-phase trapezoidal band-pass pulse with corner
// frequencies f1 < f2 < f3 < f4 (hertz), flat between f2 and f3.
// duration and dt are in seconds. The result is normalized to unit peak.
func Ormsby(duration, dt, f1, f2, f3, f4 float64) ([]float64, error) {
	n, err := sampleCount(duration, dt)
	if err != nil {
		return nil, err
	}
	if f1 <= 0 {
		return nil, fmt.Errorf("%w: f1 = %v", ErrInvalidFrequency, f1)
	}
	if !(f1 < f2 && f2 < f3 && f3 < f4) {
		return nil, fmt.Errorf("%w: %v, %v, %v, %v", ErrInvalidBand, f1, f2, f3, f4)
	}

	out := make([]float64, n)
	half := (n - 1) / 2
	for i := range out {
		t := float64(i-half) * dt
		hi := (term(f4, t) - term(f3, t)) / (f4 - f3)
		lo := (term(f2, t) - term(f1, t)) / (f2 - f1)
		out[i] = hi - lo
	}

	peak := out[half]
	if peak != 0 {
		for i := range out {
			out[i] /= peak
		}
	}
	return out, nil
}

// term is (pi*f)^2 * sinc^2(f*t) with the normalized sinc convention.
func term(f, t float64) float64 {
	s := sinc(f * t)
	return math.Pi * math.Pi * f * f * s * s
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func sampleCount(duration, dt float64) (int, error) {
	if dt <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSpacing, dt)
	}
	if duration <= 0 || duration < dt {
		return 0, fmt.Errorf("%w: duration %v at dt %v", ErrInvalidDuration, duration, dt)
	}
	n := int(math.Round(duration / dt))
	if n%2 == 0 {
		n++
	}
	return n, nil
}
