// Package forward orchestrates the convolutional forward-modelling
// pipeline over 2-D velocity and density grids.
//
// The stage order is fixed: unit-scaled acoustic impedance, reflection
// coefficients, per-trace two-way travel times, the shared uniform time
// axis (the single cross-trace reduction), wavelet generation, then a
// parallel per-trace tail of axis mapping, convolution, and depth
// back-conversion. The axis and wavelet are immutable once built and
// shared read-only by every worker.
//
// File and plot I/O stay outside this package; [Model] consumes grids and
// returns grids.
package forward
