// Package impedance converts velocity and density grids into acoustic
// impedance and zero-offset reflection coefficients.
//
// Both operations are pure functions over their input grids: they never
// mutate upstream data and return freshly allocated grids of the same
// shape. Unit scaling is explicit; see [DefaultVPScale] and
// [DefaultRHOBScale] for the factors applied to common field units.
package impedance
