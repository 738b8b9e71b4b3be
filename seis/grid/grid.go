package grid

import (
	"errors"
	"fmt"
)

// Errors returned by grid constructors and shape checks.
var (
	ErrEmpty         = errors.New("grid: empty grid")
	ErrRagged        = errors.New("grid: ragged input")
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

// Grid is a rectangular block of float64 samples indexed by
// (depth-sample i, trace j). Storage is trace-contiguous so that
// Trace(j) returns a dense slice without copying.
type Grid struct {
	samples []float64
	ns      int // samples per trace
	ntr     int // number of traces
}

// New returns a zero-filled grid of ns samples per trace and ntr traces.
func New(ns, ntr int) (*Grid, error) {
	if ns <= 0 || ntr <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, ns, ntr)
	}
	return &Grid{
		samples: make([]float64, ns*ntr),
		ns:      ns,
		ntr:     ntr,
	}, nil
}

// FromColumns builds a grid from per-trace columns. Each inner slice is
// one trace; all traces must have equal length. Data is copied.
func FromColumns(cols [][]float64) (*Grid, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmpty
	}
	ns := len(cols[0])
	g, err := New(ns, len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if len(col) != ns {
			return nil, fmt.Errorf("%w: trace %d has %d samples, want %d", ErrRagged, j, len(col), ns)
		}
		copy(g.Trace(j), col)
	}
	return g, nil
}

// FromRows builds a grid from row-major data, one row per depth sample.
// This matches spreadsheet-style layouts where each row spans all traces.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	ntr := len(rows[0])
	g, err := New(len(rows), ntr)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != ntr {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(row), ntr)
		}
		for j, v := range row {
			g.Set(i, j, v)
		}
	}
	return g, nil
}

// NumSamples returns the number of depth samples per trace.
func (g *Grid) NumSamples() int {
	return g.ns
}

// NumTraces returns the number of traces.
func (g *Grid) NumTraces() int {
	return g.ntr
}

// At returns the sample at depth index i of trace j.
// Indices follow slice semantics and panic when out of range.
func (g *Grid) At(i, j int) float64 {
	return g.samples[j*g.ns+i]
}

// Set stores v at depth index i of trace j.
func (g *Grid) Set(i, j int, v float64) {
	g.samples[j*g.ns+i] = v
}

// Trace returns the samples of trace j as a live view.
// Mutations through the slice are visible in the grid.
func (g *Grid) Trace(j int) []float64 {
	return g.samples[j*g.ns : (j+1)*g.ns]
}

// Data returns the full trace-contiguous backing slice as a live view.
func (g *Grid) Data() []float64 {
	return g.samples
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		samples: make([]float64, len(g.samples)),
		ns:      g.ns,
		ntr:     g.ntr,
	}
	copy(out.samples, g.samples)
	return out
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.samples {
		g.samples[i] = v
	}
}

// SameShape reports an error unless all grids are non-nil and share the
// shape of the first. It is the fail-fast entry check for every
// multi-grid operation in this module.
func SameShape(grids ...*Grid) error {
	if len(grids) == 0 || grids[0] == nil {
		return ErrEmpty
	}
	ns, ntr := grids[0].ns, grids[0].ntr
	for k, g := range grids[1:] {
		if g == nil {
			return fmt.Errorf("%w: grid %d is nil", ErrEmpty, k+1)
		}
		if g.ns != ns || g.ntr != ntr {
			return fmt.Errorf("%w: grid %d is %dx%d, want %dx%d", ErrShapeMismatch, k+1, g.ns, g.ntr, ns, ntr)
		}
	}
	return nil
}
