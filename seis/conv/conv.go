package conv

import (
	"errors"
)

// Errors returned by convolution functions.
var (
	ErrEmptyTrace  = errors.New("conv: empty trace")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Kernels at or below this length run the direct O(N*M) path; longer
// kernels go through the FFT overlap-add path.
const directThreshold = 64

// Full performs linear convolution of trace and kernel, returning the
// full result of length len(trace)+len(kernel)-1. The algorithm is picked
// automatically from the kernel length.
func Full(trace, kernel []float64) ([]float64, error) {
	if len(trace) == 0 {
		return nil, ErrEmptyTrace
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(kernel) <= directThreshold {
		return direct(trace, kernel), nil
	}
	return overlapAddConvolve(trace, kernel)
}

// Same convolves trace with kernel and trims the result, centered, to
// len(trace). This is the mode the synthetic pipeline uses: the output
// stays aligned sample-for-sample with the time-mapped reflectivity.
//
// A kernel longer than the trace is legal; full convolution zero-pads
// implicitly, so edge energy is kept rather than truncated.
func Same(trace, kernel []float64) ([]float64, error) {
	full, err := Full(trace, kernel)
	if err != nil {
		return nil, err
	}
	return trimCentered(full, len(trace), len(kernel)), nil
}

// trimCentered extracts the centered len(trace) samples from a full
// convolution of trace and kernel lengths n and m.
func trimCentered(full []float64, n, m int) []float64 {
	start := (m - 1) / 2
	return full[start : start+n]
}

// direct performs time-domain convolution, suitable for short kernels.
func direct(trace, kernel []float64) []float64 {
	out := make([]float64, len(trace)+len(kernel)-1)
	for i, tv := range trace {
		if tv == 0 {
			continue
		}
		for j, kv := range kernel {
			out[i+j] += tv * kv
		}
	}
	return out
}
