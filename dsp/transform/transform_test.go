package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tuner/dsp/spectrum"
	"github.com/cwbudde/algo-tuner/internal/testutil"
)

func TestBackendsAgree(t *testing.T) {
	const n = 64

	frame := testutil.DeterministicNoise(7, 1, n)

	var ref spectrum.Packed
	for _, b := range Backends() {
		t.Run(string(b), func(t *testing.T) {
			tr, err := New(b, n)
			if err != nil {
				t.Fatalf("New(%s) error = %v", b, err)
			}

			dst := make(spectrum.Packed, n)
			if err := tr.Forward(dst, frame); err != nil {
				t.Fatalf("Forward() error = %v", err)
			}

			if ref == nil {
				ref = dst
				return
			}
			testutil.RequireSliceNearlyEqual(t, dst, ref, 1e-9)
		})
	}
}

func TestForwardPhaseConvention(t *testing.T) {
	const (
		n     = 64
		bin   = 5
		phase = 0.7
	)

	frame := make([]float64, n)
	for i := range frame {
		frame[i] = math.Cos(2*math.Pi*bin*float64(i)/n + phase)
	}

	for _, b := range Backends() {
		t.Run(string(b), func(t *testing.T) {
			tr, err := New(b, n)
			if err != nil {
				t.Fatalf("New(%s) error = %v", b, err)
			}

			dst := make(spectrum.Packed, n)
			if err := tr.Forward(dst, frame); err != nil {
				t.Fatalf("Forward() error = %v", err)
			}

			got, err := dst.Phase(bin)
			if err != nil {
				t.Fatalf("Phase() error = %v", err)
			}
			testutil.RequireNearlyEqual(t, got, phase, 1e-9)

			mag, err := spectrum.Magnitudes(dst)
			if err != nil {
				t.Fatalf("Magnitudes() error = %v", err)
			}
			testutil.RequireNearlyEqual(t, mag[bin], n/2, 1e-9)
			testutil.RequireNearlyEqual(t, mag[0], 0, 1e-9)
		})
	}
}

func TestForwardDoesNotModifyFrame(t *testing.T) {
	frame := testutil.DeterministicNoise(3, 1, 32)
	orig := append([]float64(nil), frame...)

	for _, b := range Backends() {
		tr, err := New(b, 32)
		if err != nil {
			t.Fatalf("New(%s) error = %v", b, err)
		}
		if err := tr.Forward(make(spectrum.Packed, 32), frame); err != nil {
			t.Fatalf("Forward() error = %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, frame, orig, 0)
	}
}

func TestSizeValidation(t *testing.T) {
	for _, b := range Backends() {
		for _, n := range []int{0, 2, 7} {
			if _, err := New(b, n); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("New(%s, %d) error = %v, want ErrInvalidSize", b, n, err)
			}
		}

		tr, err := New(b, 16)
		if err != nil {
			t.Fatalf("New(%s, 16) error = %v", b, err)
		}
		if tr.Size() != 16 {
			t.Fatalf("Size() = %d, want 16", tr.Size())
		}
		if err := tr.Forward(make(spectrum.Packed, 16), make([]float64, 8)); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("short frame error = %v, want ErrSizeMismatch", err)
		}
		if err := tr.Forward(make(spectrum.Packed, 8), make([]float64, 16)); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("short destination error = %v, want ErrSizeMismatch", err)
		}
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{in: "algofft", want: BackendAlgoFFT},
		{in: " Gonum ", want: BackendGonum},
		{in: "GODSP", want: BackendGoDSP},
		{in: "fftw", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Fatalf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseBackend(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := New("fftw", 16); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("New(fftw) error = %v, want ErrUnknownBackend", err)
	}
}
