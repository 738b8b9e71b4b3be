package interp

import (
	"errors"
	"math"
	"testing"
)

func TestEvalAtSamples(t *testing.T) {
	u, err := NewUniform(0, 0.5, []float64{1, 3, 2, -4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []float64{1, 3, 2, -4} {
		got := u.Eval(float64(i) * 0.5)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Eval at sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestEvalBetweenSamples(t *testing.T) {
	u, _ := NewUniform(0, 1, []float64{0, 10})
	if got := u.Eval(0.25); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Eval(0.25) = %v, want 2.5", got)
	}
	if got := u.Eval(0.5); math.Abs(got-5) > 1e-12 {
		t.Errorf("Eval(0.5) = %v, want 5", got)
	}
}

func TestEvalNonZeroStart(t *testing.T) {
	u, _ := NewUniform(10, 2, []float64{0, 4})
	if got := u.Eval(11); math.Abs(got-2) > 1e-12 {
		t.Errorf("Eval(11) = %v, want 2", got)
	}
}

func TestEvalClamps(t *testing.T) {
	u, _ := NewUniform(0, 1, []float64{7, 1, 9})
	if got := u.Eval(-5); got != 7 {
		t.Errorf("below range: Eval(-5) = %v, want 7", got)
	}
	if got := u.Eval(100); got != 9 {
		t.Errorf("above range: Eval(100) = %v, want 9", got)
	}
}

func TestEvalNeverOvershoots(t *testing.T) {
	samples := []float64{0, 1, -2, 5, 3, -1}
	u, _ := NewUniform(0, 1, samples)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for q := -1.0; q < 7; q += 0.01 {
		v := u.Eval(q)
		if v < lo || v > hi {
			t.Fatalf("Eval(%v) = %v outside [%v, %v]", q, v, lo, hi)
		}
	}
}

func TestEvalNaN(t *testing.T) {
	u, _ := NewUniform(0, 1, []float64{1, 2})
	if !math.IsNaN(u.Eval(math.NaN())) {
		t.Error("NaN position must propagate NaN")
	}
}

func TestEvalAll(t *testing.T) {
	u, _ := NewUniform(0, 1, []float64{0, 2, 4})
	got := u.EvalAll([]float64{0.5, 1.5}, nil)
	want := []float64{1, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("EvalAll[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	dst := make([]float64, 2)
	out := u.EvalAll([]float64{0, 2}, dst)
	if &out[0] != &dst[0] {
		t.Error("EvalAll must write into the provided destination")
	}
}

func TestNewUniformErrors(t *testing.T) {
	if _, err := NewUniform(0, 1, nil); !errors.Is(err, ErrEmptySamples) {
		t.Errorf("expected ErrEmptySamples, got %v", err)
	}
	if _, err := NewUniform(0, 0, []float64{1}); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("expected ErrInvalidSpacing, got %v", err)
	}
}
