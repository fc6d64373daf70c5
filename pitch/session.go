package pitch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-tuner/dsp/buffer"
	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/dsp/spectrum"
	"github.com/cwbudde/algo-tuner/dsp/transform"
	"github.com/cwbudde/algo-tuner/dsp/window"
)

// Frame holds the detections of one analysis window.
type Frame struct {
	// Index counts frames from 0 since creation or Reset.
	Index int
	// Time is the start of the window in seconds.
	Time       float64
	Detections []Detection
}

// Session runs samples through framing, windowing, the forward transform
// and a Resolver. Consecutive windows do not overlap.
//
// A Session is not safe for concurrent use.
type Session struct {
	cfg       core.ProcessorConfig
	resolver  *Resolver
	transform transform.Transformer
	framer    *buffer.Framer
	window    []float64
	packed    spectrum.Packed
	logger    *zap.Logger
}

// NewSession creates a session analysing cfg.BlockSize-sample windows of
// audio at cfg.SampleRate.
func NewSession(cfg core.ProcessorConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := applyOptions(opts)

	tr := c.transform
	if tr == nil {
		var err error
		tr, err = transform.New(c.backend, cfg.BlockSize)
		if err != nil {
			return nil, err
		}
	}
	if tr.Size() != cfg.BlockSize {
		return nil, fmt.Errorf("%w: transform %d, block %d", ErrTransformSize, tr.Size(), cfg.BlockSize)
	}

	var coeffs []float64
	if c.window != window.TypeRectangular {
		var err error
		wopts := append(append([]window.Option(nil), c.windowOpt...), window.WithPeriodic())
		coeffs, err = window.Generate(c.window, cfg.BlockSize, wopts...)
		if err != nil {
			return nil, err
		}
	}

	framer, err := buffer.NewFramer(cfg.BlockSize)
	if err != nil {
		return nil, err
	}

	res, err := NewResolver(cfg.BinCount(), cfg.BinHz(), opts...)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("session created",
		zap.Float64("sample_rate", cfg.SampleRate),
		zap.Int("block_size", cfg.BlockSize),
		zap.Float64("bin_hz", cfg.BinHz()),
		zap.Stringer("window", c.window),
	)

	return &Session{
		cfg:       cfg,
		resolver:  res,
		transform: tr,
		framer:    framer,
		window:    coeffs,
		packed:    make(spectrum.Packed, cfg.BlockSize),
		logger:    c.logger,
	}, nil
}

// Config returns the processor configuration.
func (s *Session) Config() core.ProcessorConfig { return s.cfg }

// BinHz returns the bin width in Hz.
func (s *Session) BinHz() float64 { return s.cfg.BinHz() }

// Resolver returns the underlying resolver.
func (s *Session) Resolver() *Resolver { return s.resolver }

// Pending returns the number of buffered samples awaiting a full window.
func (s *Session) Pending() int { return s.framer.Pending() }

// Write feeds samples and returns a Frame for every window completed by
// them. Samples left over are kept for the next call.
func (s *Session) Write(samples []float64) ([]Frame, error) {
	var out []Frame

	err := s.framer.Write(samples, func(frame []float64) error {
		index := s.framer.Frames() - 1

		if s.window != nil {
			if err := window.ApplyCoefficientsInPlace(frame, s.window); err != nil {
				return err
			}
		}

		if err := s.transform.Forward(s.packed, frame); err != nil {
			return fmt.Errorf("frame %d: %w", index, err)
		}

		dets, err := s.resolver.ProcessFrame(s.packed)
		if err != nil {
			return fmt.Errorf("frame %d: %w", index, err)
		}

		out = append(out, Frame{
			Index:      index,
			Time:       float64(index*s.cfg.BlockSize) / s.cfg.SampleRate,
			Detections: dets,
		})

		return nil
	})

	return out, err
}

// Flush discards a partial window and returns the number of dropped samples.
func (s *Session) Flush() int {
	n := s.framer.Flush()
	if n > 0 {
		s.logger.Debug("dropped partial frame", zap.Int("samples", n))
	}
	return n
}

// Reset drops buffered samples and returns every bin to Unseen.
func (s *Session) Reset() {
	s.framer.Reset()
	s.resolver.Reset()
}
