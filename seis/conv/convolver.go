package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Convolver convolves many traces against one fixed kernel, caching the
// kernel spectrum across calls. The wavelet of a modelling run is shared
// by every trace, so one Convolver serves the whole run. A Convolver is
// read-only after construction except for its scratch buffers; concurrent
// use requires one Convolver per worker (see Clone).
type Convolver struct {
	kernel    []float64
	kernelFFT []complex128

	blockSize int
	fftSize   int
	plan      *algofft.Plan[complex128]

	scratchIn  []complex128
	scratchOut []complex128
}

// NewConvolver prepares a convolver for the given kernel. Kernels short
// enough for the direct path skip FFT setup entirely.
func NewConvolver(kernel []float64) (*Convolver, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	c := &Convolver{kernel: append([]float64(nil), kernel...)}
	if len(kernel) <= directThreshold {
		return c, nil
	}

	blockSize := nextPowerOf2(len(kernel))
	if blockSize < 256 {
		blockSize = 256
	}
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: FFT plan: %w", err)
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}
	kernelFFT := make([]complex128, fftSize)
	if err := plan.Forward(kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: kernel FFT: %w", err)
	}

	c.kernelFFT = kernelFFT
	c.blockSize = blockSize
	c.fftSize = fftSize
	c.plan = plan
	c.scratchIn = make([]complex128, fftSize)
	c.scratchOut = make([]complex128, fftSize)
	return c, nil
}

// Clone returns a convolver sharing the kernel spectrum but carrying its
// own scratch buffers, for use by a concurrent worker.
func (c *Convolver) Clone() *Convolver {
	out := *c
	if c.plan != nil {
		out.scratchIn = make([]complex128, c.fftSize)
		out.scratchOut = make([]complex128, c.fftSize)
	}
	return &out
}

// KernelLen returns the kernel length.
func (c *Convolver) KernelLen() int {
	return len(c.kernel)
}

// Same convolves trace with the cached kernel and returns the centered
// len(trace) samples, matching the package-level Same function.
func (c *Convolver) Same(trace []float64) ([]float64, error) {
	full, err := c.Full(trace)
	if err != nil {
		return nil, err
	}
	return trimCentered(full, len(trace), len(c.kernel)), nil
}

// Full convolves trace with the cached kernel, returning the full linear
// convolution of length len(trace)+KernelLen()-1.
func (c *Convolver) Full(trace []float64) ([]float64, error) {
	if len(trace) == 0 {
		return nil, ErrEmptyTrace
	}
	if c.plan == nil {
		return direct(trace, c.kernel), nil
	}

	out := make([]float64, len(trace)+len(c.kernel)-1)
	numBlocks := (len(trace) + c.blockSize - 1) / c.blockSize

	for b := 0; b < numBlocks; b++ {
		start := b * c.blockSize
		end := start + c.blockSize
		if end > len(trace) {
			end = len(trace)
		}

		for i := range c.scratchIn {
			c.scratchIn[i] = 0
		}
		for i, v := range trace[start:end] {
			c.scratchIn[i] = complex(v, 0)
		}

		if err := c.plan.Forward(c.scratchIn, c.scratchIn); err != nil {
			return nil, fmt.Errorf("conv: forward FFT: %w", err)
		}
		for i := range c.scratchOut {
			c.scratchOut[i] = c.scratchIn[i] * c.kernelFFT[i]
		}
		if err := c.plan.Inverse(c.scratchOut, c.scratchOut); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT: %w", err)
		}

		blockOut := (end - start) + len(c.kernel) - 1
		for i := 0; i < blockOut && start+i < len(out); i++ {
			out[start+i] += real(c.scratchOut[i])
		}
	}
	return out, nil
}

// overlapAddConvolve is the one-shot FFT path behind Full.
func overlapAddConvolve(trace, kernel []float64) ([]float64, error) {
	c, err := NewConvolver(kernel)
	if err != nil {
		return nil, err
	}
	return c.Full(trace)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
