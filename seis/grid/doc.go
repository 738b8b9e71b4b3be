// Package grid provides the 2-D sample container shared by all modelling
// stages: a rectangular block of float64 values indexed by depth sample
// and trace.
//
// Storage is trace-contiguous, so per-trace processing works on dense
// slices via [Grid.Trace] and whole-grid element-wise math works on the
// flat view via [Grid.Data]. Stages never mutate their inputs; each
// produces a fresh grid.
package grid
