// Package traveltime builds per-trace two-way travel time curves, the
// uniform time axis shared by all traces of a run, and the nearest-sample
// mapping of reflectivity onto that axis.
//
// Travel time spacing is non-uniform in depth (it depends on the local
// velocity), which is why a shared uniform [Axis] is constructed from the
// global maximum travel time before any trace can be mapped. The axis
// reduction is the only cross-trace dependency in the whole pipeline.
package traveltime
