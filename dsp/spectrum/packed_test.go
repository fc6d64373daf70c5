package spectrum

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestMagnitudesLayout(t *testing.T) {
	p := Packed{-2, 3, 4, 0, -1, 6, 8, -7}

	mag, err := Magnitudes(p)
	if err != nil {
		t.Fatalf("Magnitudes error: %v", err)
	}

	want := []float64{2, 5, 1, 10, 7}
	if len(mag) != len(want) {
		t.Fatalf("Magnitudes length = %d, want %d", len(mag), len(want))
	}

	for i := range want {
		if math.Abs(mag[i]-want[i]) > 1e-12 {
			t.Fatalf("mag[%d] = %f, want %f", i, mag[i], want[i])
		}
	}
}

func TestMagnitudesBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 50 {
		n := 2 * (2 + rng.Intn(64))
		p := make(Packed, n)
		for i := range p {
			p[i] = rng.NormFloat64() * 10
		}

		mag, err := Magnitudes(p)
		if err != nil {
			t.Fatalf("trial %d: Magnitudes error: %v", trial, err)
		}

		if len(mag) != n/2+1 {
			t.Fatalf("trial %d: length = %d, want %d", trial, len(mag), n/2+1)
		}

		for i, v := range mag {
			if v < 0 || math.IsNaN(v) {
				t.Fatalf("trial %d: mag[%d] = %v, want non-negative", trial, i, v)
			}
		}

		if mag[0] != math.Abs(p[0]) {
			t.Fatalf("trial %d: mag[0] = %v, want %v", trial, mag[0], math.Abs(p[0]))
		}

		if mag[len(mag)-1] != math.Abs(p[n-1]) {
			t.Fatalf("trial %d: mag[last] = %v, want %v", trial, mag[len(mag)-1], math.Abs(p[n-1]))
		}
	}
}

func TestMagnitudesMinimalWindow(t *testing.T) {
	mag, err := Magnitudes(Packed{-1, 2})
	if err != nil {
		t.Fatalf("Magnitudes error: %v", err)
	}

	if len(mag) != 2 || mag[0] != 1 || mag[1] != 2 {
		t.Fatalf("unexpected magnitudes: %v", mag)
	}
}

func TestMagnitudesErrors(t *testing.T) {
	if _, err := Magnitudes(nil); !errors.Is(err, ErrEmptyPacked) {
		t.Fatalf("expected ErrEmptyPacked, got %v", err)
	}

	if _, err := Magnitudes(Packed{1, 2, 3}); !errors.Is(err, ErrOddLength) {
		t.Fatalf("expected ErrOddLength, got %v", err)
	}
}

func TestMagnitudesInto(t *testing.T) {
	p := Packed{1, 3, 4, 2}
	dst := make([]float64, 3)

	if err := MagnitudesInto(dst, p); err != nil {
		t.Fatalf("MagnitudesInto error: %v", err)
	}

	if dst[0] != 1 || math.Abs(dst[1]-5) > 1e-12 || dst[2] != 2 {
		t.Fatalf("unexpected magnitudes: %v", dst)
	}

	if err := MagnitudesInto(make([]float64, 2), p); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestPhase(t *testing.T) {
	p := Packed{-3, 1, 1, 0, -2, 5}

	tests := []struct {
		bin  int
		want float64
	}{
		{bin: 0, want: math.Pi},
		{bin: 1, want: math.Pi / 4},
		{bin: 2, want: -math.Pi / 2},
		{bin: 3, want: 0},
	}

	for _, tt := range tests {
		got, err := p.Phase(tt.bin)
		if err != nil {
			t.Fatalf("Phase(%d) error: %v", tt.bin, err)
		}

		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Phase(%d) = %f, want %f", tt.bin, got, tt.want)
		}
	}

	if _, err := p.Phase(4); !errors.Is(err, ErrBinRange) {
		t.Fatalf("expected ErrBinRange, got %v", err)
	}

	if _, err := p.Phase(-1); !errors.Is(err, ErrBinRange) {
		t.Fatalf("expected ErrBinRange, got %v", err)
	}
}

func TestPackHalfSpectrum(t *testing.T) {
	half := []complex128{4 + 0.5i, 1 + 2i, 3 - 4i, -6 + 0.25i}
	dst := make(Packed, 6)

	if err := PackHalfSpectrum(dst, half); err != nil {
		t.Fatalf("PackHalfSpectrum error: %v", err)
	}

	want := Packed{4, 1, 2, 3, -4, -6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %f, want %f", i, dst[i], want[i])
		}
	}

	if err := PackHalfSpectrum(make(Packed, 4), half); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	if err := PackHalfSpectrum(make(Packed, 0), half[:1]); !errors.Is(err, ErrEmptyPacked) {
		t.Fatalf("expected ErrEmptyPacked, got %v", err)
	}
}
