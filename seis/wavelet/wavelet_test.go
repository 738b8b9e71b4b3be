package wavelet

import (
	"errors"
	"math"
	"testing"
)

func TestRickerShape(t *testing.T) {
	const (
		dt = 0.02e-3 // 0.02 ms
		f  = 4000.0
	)
	w, err := Ricker(2e-3, dt, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w)%2 != 1 {
		t.Fatalf("length = %d, want odd", len(w))
	}
	center := (len(w) - 1) / 2
	if w[center] != 1 {
		t.Errorf("peak = %v, want exactly 1 at the center", w[center])
	}

	// Zero phase: symmetric about the center.
	for i := 1; i <= center; i++ {
		if math.Abs(w[center-i]-w[center+i]) > 1e-12 {
			t.Fatalf("asymmetry at offset %d: %v vs %v", i, w[center-i], w[center+i])
		}
	}

	// Closed form one sample off center: a = (pi*f*dt)^2.
	a := math.Pi * math.Pi * f * f * dt * dt
	want := (1 - 2*a) * math.Exp(-a)
	if math.Abs(w[center+1]-want) > 1e-12 {
		t.Errorf("w[center+1] = %v, want %v", w[center+1], want)
	}
}

func TestRickerErrors(t *testing.T) {
	if _, err := Ricker(1e-3, 0, 4000); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("dt=0: expected ErrInvalidSpacing, got %v", err)
	}
	if _, err := Ricker(0, 1e-5, 4000); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("duration=0: expected ErrInvalidDuration, got %v", err)
	}
	if _, err := Ricker(1e-6, 1e-3, 4000); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("duration<dt: expected ErrInvalidDuration, got %v", err)
	}
	if _, err := Ricker(1e-3, 1e-5, 0); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("f=0: expected ErrInvalidFrequency, got %v", err)
	}
}

func TestOrmsby(t *testing.T) {
	w, err := Ormsby(4e-3, 0.02e-3, 500, 1000, 3000, 4000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	center := (len(w) - 1) / 2
	if w[center] != 1 {
		t.Errorf("peak = %v, want normalized to 1", w[center])
	}
	for i := 1; i <= center; i++ {
		if math.Abs(w[center-i]-w[center+i]) > 1e-9 {
			t.Fatalf("asymmetry at offset %d", i)
		}
	}
}

func TestOrmsbyBadBand(t *testing.T) {
	if _, err := Ormsby(1e-3, 1e-5, 1000, 1000, 3000, 4000); !errors.Is(err, ErrInvalidBand) {
		t.Errorf("expected ErrInvalidBand, got %v", err)
	}
	if _, err := Ormsby(1e-3, 1e-5, 0, 1000, 3000, 4000); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestGeneratorCaching(t *testing.T) {
	g := NewGenerator(WithFrequency(2000))
	a, err := g.Pulse(2e-3, 1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := g.Pulse(2e-3, 1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if &a[0] != &b[0] {
		t.Error("identical sampling must reuse the cached pulse")
	}

	c, err := g.Pulse(4e-3, 1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) == len(a) {
		t.Error("changed duration must regenerate the pulse")
	}
}

func TestGeneratorTaper(t *testing.T) {
	plain, err := NewGenerator().Pulse(2e-3, 1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tapered, err := NewGenerator(WithTaper()).Pulse(2e-3, 1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tapered[0] != 0 || tapered[len(tapered)-1] != 0 {
		t.Error("tapered pulse must decay to zero at the edges")
	}
	center := (len(plain) - 1) / 2
	if math.Abs(tapered[center]-plain[center]) > 1e-12 {
		t.Error("taper must preserve the center peak")
	}
}

func TestGeneratorOrmsbyKind(t *testing.T) {
	g := NewGenerator(WithOrmsbyBand(500, 1000, 3000, 4000))
	w, err := g.Pulse(2e-3, 1e-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := Ormsby(2e-3, 1e-5, 500, 1000, 3000, 4000)
	if len(w) != len(want) {
		t.Fatalf("length %d != %d", len(w), len(want))
	}
	for i := range w {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d differs", i)
		}
	}
}
