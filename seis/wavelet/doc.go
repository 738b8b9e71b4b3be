// Package wavelet generates zero-phase band-limited source pulses for
// convolutional modelling: the classic Ricker shape and the trapezoidal
// Ormsby band-pass.
package wavelet
