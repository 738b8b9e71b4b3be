// Package conv convolves time-mapped reflectivity traces with a source
// wavelet.
//
// Two paths are provided behind one interface: direct time-domain
// convolution for short kernels, and FFT overlap-add for long ones. The
// [Convolver] type caches the kernel spectrum so one wavelet can be run
// against every trace of a section without recomputing its FFT.
package conv
