// Package testutil provides shared assertions and fixtures for the
// modelling test suites.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-seismic/seis/grid"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample of g is NaN or Inf.
func RequireFinite(t *testing.T, g *grid.Grid) {
	t.Helper()
	for j := 0; j < g.NumTraces(); j++ {
		for i, v := range g.Trace(j) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("trace %d sample %d: non-finite value %v", j, i, v)
			}
		}
	}
}

// ConstantGrid returns an ns x ntr grid filled with v.
func ConstantGrid(t *testing.T, ns, ntr int, v float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(ns, ntr)
	if err != nil {
		t.Fatalf("ConstantGrid: %v", err)
	}
	g.Fill(v)
	return g
}

// DepthGrid returns an ns x ntr grid whose samples hold the depth of each
// row at constant spacing dz, like a regular Y grid.
func DepthGrid(t *testing.T, ns, ntr int, dz float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(ns, ntr)
	if err != nil {
		t.Fatalf("DepthGrid: %v", err)
	}
	for j := 0; j < ntr; j++ {
		for i := 0; i < ns; i++ {
			g.Set(i, j, float64(i)*dz)
		}
	}
	return g
}

// MinMax returns the smallest and largest sample of a trace.
func MinMax(trace []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range trace {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
