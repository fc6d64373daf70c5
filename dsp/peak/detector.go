package peak

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/dsp/core"
)

const (
	// DefaultMinStrength is the magnitude floor below which a bin is never a peak.
	DefaultMinStrength = 2.0
	// DefaultMinBoundRatioDB is the rival-to-peak ratio at or above which two
	// adjacent bins are reported as one bound peak.
	DefaultMinBoundRatioDB = -2.0
)

// Config holds the detector thresholds.
type Config struct {
	// MinStrength is an absolute magnitude floor.
	MinStrength float64
	// MinBoundRatioDB is compared against 10*log10(rival/peak); it must be <= 0.
	MinBoundRatioDB float64
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		MinStrength:     DefaultMinStrength,
		MinBoundRatioDB: DefaultMinBoundRatioDB,
	}
}

// Validate reports whether cfg is usable.
func (c Config) Validate() error {
	if !core.IsFinite(c.MinStrength) || c.MinStrength < 0 {
		return fmt.Errorf("%w: min strength must be finite and >= 0: %f", ErrInvalidConfig, c.MinStrength)
	}
	if !core.IsFinite(c.MinBoundRatioDB) || c.MinBoundRatioDB > 0 {
		return fmt.Errorf("%w: min bound ratio must be finite and <= 0 dB: %f", ErrInvalidConfig, c.MinBoundRatioDB)
	}
	return nil
}

// Option mutates a Config.
type Option func(*Config)

// WithMinStrength sets the magnitude floor.
func WithMinStrength(v float64) Option {
	return func(c *Config) {
		c.MinStrength = v
	}
}

// WithMinBoundRatioDB sets the bound ratio threshold in dB.
func WithMinBoundRatioDB(db float64) Option {
	return func(c *Config) {
		c.MinBoundRatioDB = db
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// Bound is a peak whose energy straddles two adjacent bins.
// High is always Low+1.
type Bound struct {
	Low  int
	High int
}

// Result holds one spectrum's peaks, each list in ascending bin order.
type Result struct {
	Singles []int
	Bounds  []Bound
}

// Len returns the total number of peaks.
func (r Result) Len() int {
	return len(r.Singles) + len(r.Bounds)
}

// Detector finds single and bound peaks. It holds no per-spectrum state and
// is safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector from the defaults and opts.
func NewDetector(opts ...Option) (*Detector, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Detector{cfg: cfg}, nil
}

// Config returns the detector thresholds.
func (d *Detector) Config() Config { return d.cfg }

// Detect scans mag and returns its peaks.
func (d *Detector) Detect(mag []float64) (Result, error) {
	var res Result
	err := d.DetectInto(&res, mag)
	return res, err
}

// DetectInto is like Detect but appends into res after truncating its
// slices, so a caller can reuse their capacity across frames.
func (d *Detector) DetectInto(res *Result, mag []float64) error {
	res.Singles = res.Singles[:0]
	res.Bounds = res.Bounds[:0]

	n := len(mag)
	if n < 3 {
		return fmt.Errorf("%w: got %d", ErrTooShort, n)
	}

	last := n - 1

	// Bin 1: the DC bin is not a neighbour.
	if d.strong(mag[1]) {
		switch {
		case mag[1] > mag[2]:
			d.classify(res, mag, 1, 2)
		case mag[1] == mag[2] && plateauEnds(mag, 2):
			d.classify(res, mag, 1, 2)
		}
	}

	for f := 2; f < last; f++ {
		cur := mag[f]
		if !d.strong(cur) || !(mag[f-1] < cur) {
			continue
		}

		switch {
		case cur > mag[f+1]:
			rival := f - 1
			if mag[f-1] < mag[f+1] {
				rival = f + 1
			}
			d.classify(res, mag, f, rival)
		case cur == mag[f+1] && plateauEnds(mag, f+1):
			// Two equal bins rising above both outer neighbours: a 0 dB pair.
			d.classify(res, mag, f, f+1)
		}
	}

	if d.strong(mag[last]) && mag[last-1] < mag[last] {
		d.classify(res, mag, last, last-1)
	}

	return nil
}

// plateauEnds reports whether a run of equal bins ending at j drops
// afterwards or reaches the Nyquist bin.
func plateauEnds(mag []float64, j int) bool {
	return j == len(mag)-1 || mag[j] > mag[j+1]
}

func (d *Detector) strong(v float64) bool {
	return v >= d.cfg.MinStrength
}

func (d *Detector) classify(res *Result, mag []float64, f, rival int) {
	if core.RatioDB(mag[rival], mag[f]) >= d.cfg.MinBoundRatioDB {
		res.Bounds = append(res.Bounds, Bound{Low: min(f, rival), High: max(f, rival)})
		return
	}
	res.Singles = append(res.Singles, f)
}

// Detect runs a default-configured detector over mag.
func Detect(mag []float64) (Result, error) {
	d := &Detector{cfg: DefaultConfig()}
	return d.Detect(mag)
}
