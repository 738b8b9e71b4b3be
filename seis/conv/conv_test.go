package conv

import (
	"errors"
	"math"
	"testing"
)

func TestFullDirect(t *testing.T) {
	tests := []struct {
		name   string
		trace  []float64
		kernel []float64
		want   []float64
	}{
		{
			name:   "simple",
			trace:  []float64{1, 2, 3},
			kernel: []float64{1, 1, 1},
			want:   []float64{1, 3, 6, 5, 3},
		},
		{
			name:   "impulse kernel",
			trace:  []float64{1, 2, 3, 4},
			kernel: []float64{1},
			want:   []float64{1, 2, 3, 4},
		},
		{
			name:   "delayed impulse",
			trace:  []float64{1, 2, 3},
			kernel: []float64{0, 0, 1},
			want:   []float64{0, 0, 1, 2, 3},
		},
		{
			name:   "sparse trace",
			trace:  []float64{0, 0.5, 0, 0},
			kernel: []float64{1, -1},
			want:   []float64{0, 0.5, -0.5, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Full(tt.trace, tt.kernel)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("out[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFullErrors(t *testing.T) {
	if _, err := Full(nil, []float64{1}); !errors.Is(err, ErrEmptyTrace) {
		t.Errorf("expected ErrEmptyTrace, got %v", err)
	}
	if _, err := Full([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestSameLengthInvariant(t *testing.T) {
	trace := make([]float64, 37)
	trace[5] = 1
	trace[20] = -0.5
	kernel := []float64{0.25, 0.5, 1, 0.5, 0.25}

	got, err := Same(trace, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(trace) {
		t.Fatalf("length = %d, want %d", len(got), len(trace))
	}
	// Zero-phase kernel peak lands on the spike positions.
	if got[5] != 1 || got[20] != -0.5 {
		t.Errorf("peaks misaligned: got[5]=%v got[20]=%v", got[5], got[20])
	}
}

func TestSameKernelLongerThanTrace(t *testing.T) {
	trace := []float64{0, 1, 0}
	kernel := []float64{1, 2, 3, 4, 5, 6, 7}

	got, err := Same(trace, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(trace) {
		t.Fatalf("length = %d, want %d", len(got), len(trace))
	}
	// Full result is the kernel shifted by one; centered trim starts at
	// index (7-1)/2 = 3 of [0,1,2,3,4,5,6,7,0].
	want := []float64{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFFTPathMatchesDirect(t *testing.T) {
	trace := make([]float64, 500)
	for i := range trace {
		trace[i] = math.Sin(2 * math.Pi * float64(i) / 37)
	}
	kernel := make([]float64, 129) // above the direct threshold
	for i := range kernel {
		x := float64(i-64) / 16
		kernel[i] = math.Exp(-x * x)
	}

	want := direct(trace, kernel)
	got, err := Full(trace, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-8 {
			t.Fatalf("out[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConvolverReuse(t *testing.T) {
	kernel := make([]float64, 200)
	for i := range kernel {
		x := float64(i-100) / 25
		kernel[i] = (1 - 2*x*x) * math.Exp(-x*x)
	}
	c, err := NewConvolver(kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for run := 0; run < 3; run++ {
		trace := make([]float64, 300)
		trace[50+run*40] = 1
		got, err := c.Same(trace)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		want, err := Same(trace, kernel)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Fatalf("run %d: reused convolver diverges at %d", run, i)
			}
		}
	}
}

func TestConvolverClone(t *testing.T) {
	kernel := make([]float64, 150)
	kernel[75] = 1
	c, err := NewConvolver(kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clone := c.Clone()

	trace := make([]float64, 200)
	trace[10] = 2
	a, err := c.Same(trace)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := clone.Same(trace)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Fatalf("clone diverges at %d", i)
		}
	}
}

func TestConvolverEmptyKernel(t *testing.T) {
	if _, err := NewConvolver(nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}
