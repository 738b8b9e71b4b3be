package traveltime

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-seismic/seis/grid"
)

// MapToAxis distributes one trace's reflection coefficients onto the
// shared axis by nearest-sample assignment: rc[i] lands on the axis index
// closest to twt[i]. Axis samples that receive no value stay zero.
//
// When two depth samples round to the same axis index the later one
// overwrites the earlier — a deliberate, documented loss of vertical
// resolution that grows as dt becomes coarse relative to the trace's time
// spacing. Non-finite travel times and times beyond the axis end are
// skipped.
func MapToAxis(rc, twt []float64, ax Axis) ([]float64, error) {
	if len(rc) != len(twt) {
		return nil, fmt.Errorf("%w: %d rc values, %d twt values", ErrLengthMismatch, len(rc), len(twt))
	}
	out := make([]float64, ax.Len())
	for i, t := range twt {
		if math.IsNaN(t) || math.IsInf(t, 0) || t > ax.End() {
			continue
		}
		out[ax.Nearest(t)] = rc[i]
	}
	return out, nil
}

// MapGridToAxis maps every trace of rc onto the axis, producing a grid of
// ax.Len() samples per trace. rc and twt must share a shape.
func MapGridToAxis(rc, twt *grid.Grid, ax Axis) (*grid.Grid, error) {
	if err := grid.SameShape(rc, twt); err != nil {
		return nil, fmt.Errorf("traveltime: %w", err)
	}
	out, err := grid.New(ax.Len(), rc.NumTraces())
	if err != nil {
		return nil, fmt.Errorf("traveltime: %w", err)
	}
	for j := 0; j < rc.NumTraces(); j++ {
		mapped, err := MapToAxis(rc.Trace(j), twt.Trace(j), ax)
		if err != nil {
			return nil, fmt.Errorf("traveltime: trace %d: %w", j, err)
		}
		copy(out.Trace(j), mapped)
	}
	return out, nil
}
