package pitch

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/dsp/peak"
	"github.com/cwbudde/algo-tuner/dsp/phase"
	"github.com/cwbudde/algo-tuner/dsp/spectrum"
	"github.com/cwbudde/algo-tuner/note"
)

// BinState is the tracking state of one bin.
type BinState uint8

const (
	// Unseen bins have never been part of a peak.
	Unseen BinState = iota
	// Tracked bins own a phase tracker.
	Tracked
)

func (s BinState) String() string {
	switch s {
	case Unseen:
		return "unseen"
	case Tracked:
		return "tracked"
	default:
		return "BinState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Kind distinguishes single from bound peaks.
type Kind uint8

const (
	KindSingle Kind = iota
	KindBound
)

func (k Kind) String() string {
	if k == KindBound {
		return "bound"
	}
	return "single"
}

// Detection is the outcome for one peak in one frame.
type Detection struct {
	Kind Kind
	// Low and High are the bins the peak covers; equal for single peaks.
	Low  int
	High int
	// Bins is the refined frequency in fractional bin units.
	Bins Estimate
	// Hz is Bins scaled by the resolver's bin width.
	Hz Estimate
	// Note is valid only if HasNote is set.
	Note    note.Mapping
	HasNote bool
}

// Span formats the covered bins as "5" or "5-6".
func (d Detection) Span() string {
	if d.Kind == KindSingle {
		return strconv.Itoa(d.Low)
	}
	return strconv.Itoa(d.Low) + "-" + strconv.Itoa(d.High)
}

type slot struct {
	state   BinState
	tracker phase.Tracker
	// seen is the frame of the last observation and est its outcome, so a
	// bin shared by two bound peaks advances only once per frame.
	seen uint64
	est  Estimate
}

// Resolver tracks per-bin phase across frames and resolves peaks to
// frequency estimates. A Resolver is not safe for concurrent use.
type Resolver struct {
	detector *peak.Detector
	logger   *zap.Logger
	binHz    float64
	slots    []slot
	frame    uint64

	mag   []float64
	peaks peak.Result
}

// NewResolver creates a resolver for spectra of binCount magnitude bins
// (N/2+1 for an N-point transform). binHz converts bin units to Hz.
func NewResolver(binCount int, binHz float64, opts ...Option) (*Resolver, error) {
	if binCount < 3 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBinCount, binCount)
	}
	if !core.IsFinitePositive(binHz) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidBinHz, binHz)
	}

	cfg := applyOptions(opts)

	det, err := cfg.peakDetector()
	if err != nil {
		return nil, err
	}

	return &Resolver{
		detector: det,
		logger:   cfg.logger,
		binHz:    binHz,
		slots:    make([]slot, binCount),
		mag:      make([]float64, binCount),
	}, nil
}

// BinCount returns the number of bins per spectrum.
func (r *Resolver) BinCount() int { return len(r.slots) }

// BinHz returns the bin width in Hz.
func (r *Resolver) BinHz() float64 { return r.binHz }

// Frames returns the number of frames resolved since creation or Reset.
func (r *Resolver) Frames() uint64 { return r.frame }

// Detector returns the peak detector in use.
func (r *Resolver) Detector() *peak.Detector { return r.detector }

// State returns the tracking state of bin. Out-of-range bins are Unseen.
func (r *Resolver) State(bin int) BinState {
	if bin < 0 || bin >= len(r.slots) {
		return Unseen
	}
	return r.slots[bin].state
}

// Tracker returns a copy of bin's tracker, if it has one.
func (r *Resolver) Tracker(bin int) (phase.Tracker, bool) {
	if r.State(bin) != Tracked {
		return phase.Tracker{}, false
	}
	return r.slots[bin].tracker, true
}

// Reset returns every bin to Unseen.
func (r *Resolver) Reset() {
	clear(r.slots)
	r.frame = 0
}

// ProcessFrame extracts magnitudes from p, detects peaks and resolves them.
func (r *Resolver) ProcessFrame(p spectrum.Packed) ([]Detection, error) {
	if err := r.checkSpectrum(p); err != nil {
		return nil, err
	}

	if err := spectrum.MagnitudesInto(r.mag, p); err != nil {
		return nil, err
	}

	if err := r.detector.DetectInto(&r.peaks, r.mag); err != nil {
		return nil, err
	}

	return r.Resolve(p, r.peaks)
}

// Resolve advances the trackers of every bin covered by peaks using the
// phases in p and returns one Detection per peak in ascending bin order.
// Invalid input is rejected before any tracker changes.
func (r *Resolver) Resolve(p spectrum.Packed, peaks peak.Result) ([]Detection, error) {
	if err := r.checkSpectrum(p); err != nil {
		return nil, err
	}
	if err := r.checkPeaks(peaks); err != nil {
		return nil, err
	}

	r.frame++

	out := make([]Detection, 0, peaks.Len())

	singles, bounds := peaks.Singles, peaks.Bounds
	for len(singles) > 0 || len(bounds) > 0 {
		if len(bounds) == 0 || (len(singles) > 0 && singles[0] < bounds[0].Low) {
			out = append(out, r.single(p, singles[0]))
			singles = singles[1:]
			continue
		}

		out = append(out, r.bound(p, bounds[0]))
		bounds = bounds[1:]
	}

	return out, nil
}

func (r *Resolver) single(p spectrum.Packed, bin int) Detection {
	return r.detection(KindSingle, bin, bin, r.observe(p, bin))
}

func (r *Resolver) bound(p spectrum.Packed, b peak.Bound) Detection {
	est1 := r.observe(p, b.Low)
	est2 := r.observe(p, b.High)

	est := ResolveBound(b.Low, b.High, est1, est2)
	if !est.IsDetermined() && est1.IsDetermined() && est2.IsDetermined() {
		r.logger.Debug("bound peak ambiguous",
			zap.Uint64("frame", r.frame),
			zap.Int("low", b.Low),
			zap.Int("high", b.High),
			zap.Stringer("low_estimate", est1),
			zap.Stringer("high_estimate", est2),
		)
	}

	return r.detection(KindBound, b.Low, b.High, est)
}

// observe feeds bin's phase in p to its tracker and returns the bin-unit
// estimate. A repeat observation within the same frame returns the first
// outcome unchanged.
func (r *Resolver) observe(p spectrum.Packed, bin int) Estimate {
	s := &r.slots[bin]
	if s.state == Tracked && s.seen == r.frame {
		return s.est
	}

	// bin was range-checked in checkPeaks.
	ph, _ := p.Phase(bin)

	if s.state == Unseen {
		s.tracker = phase.New(bin, ph)
		s.state = Tracked
		s.est = Undetermined()

		r.logger.Debug("tracking bin",
			zap.Uint64("frame", r.frame),
			zap.Int("bin", bin),
			zap.Float64("phase", ph),
		)
	} else {
		s.tracker.Update(ph)

		bins, err := s.tracker.FrequencyBins()
		if err != nil {
			s.est = Undetermined()
		} else {
			s.est = Determined(bins)
		}
	}

	s.seen = r.frame

	return s.est
}

func (r *Resolver) detection(kind Kind, low, high int, bins Estimate) Detection {
	d := Detection{
		Kind: kind,
		Low:  low,
		High: high,
		Bins: bins,
		Hz:   bins.Scale(r.binHz),
	}

	if hz, ok := d.Hz.Value(); ok {
		if m, err := note.FrequencyToNote(hz); err == nil {
			d.Note = m
			d.HasNote = true
		}
	}

	return d
}

func (r *Resolver) checkSpectrum(p spectrum.Packed) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.BinCount() != len(r.slots) {
		return fmt.Errorf("%w: got %d bins, want %d", ErrSpectrumSize, p.BinCount(), len(r.slots))
	}
	return nil
}

func (r *Resolver) checkPeaks(peaks peak.Result) error {
	last := len(r.slots) - 1

	for _, f := range peaks.Singles {
		if f < 1 || f > last {
			return fmt.Errorf("%w: single %d not in [1, %d]", ErrPeakRange, f, last)
		}
	}

	for _, b := range peaks.Bounds {
		if b.Low < 1 || b.High > last || b.High != b.Low+1 {
			return fmt.Errorf("%w: bound %d-%d not adjacent within [1, %d]", ErrPeakRange, b.Low, b.High, last)
		}
	}

	return nil
}

// ResolveBound reconciles the per-bin estimates of a bound peak spanning
// bins f1 and f2, all in bin units.
//
// A single determined estimate is returned as is. When both are
// determined, the one inside the closed interval [f1, f2] wins; if both or
// neither lie inside, the result is undetermined.
func ResolveBound(f1, f2 int, est1, est2 Estimate) Estimate {
	switch {
	case !est1.IsDetermined() && !est2.IsDetermined():
		return Undetermined()
	case !est2.IsDetermined():
		return est1
	case !est1.IsDetermined():
		return est2
	}

	lo, hi := float64(f1), float64(f2)
	in1 := est1.Within(lo, hi)
	in2 := est2.Within(lo, hi)

	switch {
	case in1 && !in2:
		return est1
	case in2 && !in1:
		return est2
	default:
		return Undetermined()
	}
}
