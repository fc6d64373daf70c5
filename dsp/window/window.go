// Package window generates analysis windows applied to each frame before
// the forward transform.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
	TypeKaiser
	TypeTukey
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name string
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// CoherentGain is the mean coefficient value.
	CoherentGain float64
}

var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1, CoherentGain: 1},
	TypeHann:                {Name: "Hann", ENBW: 1.5, CoherentGain: 0.5},
	TypeHamming:             {Name: "Hamming", ENBW: 1.3628, CoherentGain: 0.54},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.7268, CoherentGain: 0.42},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris", ENBW: 2.0044, CoherentGain: 0.35875},
	TypeFlatTop:             {Name: "Flat-top", ENBW: 3.7702, CoherentGain: 0.21557895},
	TypeKaiser:              {Name: "Kaiser"},
	TypeTukey:               {Name: "Tukey"},
}

var typesByName = map[string]Type{
	"rectangular": TypeRectangular,
	"rect":        TypeRectangular,
	"none":        TypeRectangular,
	"hann":        TypeHann,
	"hanning":     TypeHann,
	"hamming":     TypeHamming,
	"blackman":    TypeBlackman,
	"bh4":         TypeBlackmanHarris4Term,
	"flattop":     TypeFlatTop,
	"kaiser":      TypeKaiser,
	"tukey":       TypeTukey,
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

func defaultConfig() config {
	return config{alpha: 1}
}

// WithAlpha configures the Kaiser beta or the Tukey taper fraction.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
	}
}

// WithPeriodic selects the periodic form used for FFT framing instead of
// the symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// ParseType resolves a window name as used on command lines.
func ParseType(name string) (Type, error) {
	t, ok := typesByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// String returns the display name of t.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if _, ok := metadataByType[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateAlpha(t, cfg.alpha); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic), cfg)
	}

	return out, nil
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) error {
	coeffs, err := Generate(t, len(buf), opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// ApplyCoefficientsInPlace multiplies samples with precomputed coefficients.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("%w: %d samples, %d coefficients", ErrMismatchedLength, len(samples), len(coeffs))
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineFromCoeffs(x, blackmanHarris4Coeffs)
	case TypeFlatTop:
		return cosineFromCoeffs(x, flatTopCoeffs)
	case TypeKaiser:
		return kaiserAt(x, cfg.alpha)
	case TypeTukey:
		return tukeyAt(x, cfg.alpha)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return cosineFromCoeffs(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}

// besselI0 returns a polynomial approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
