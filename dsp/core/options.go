package core

import "fmt"

// ProcessorConfig defines the analysis session settings shared by the
// framing, transform and resolving stages.
type ProcessorConfig struct {
	// SampleRate is the input sample rate in Hz.
	SampleRate float64
	// BlockSize is the analysis window length in samples. Frames are
	// contiguous, so it is also the hop size.
	BlockSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 48 kHz input analysed in 2048-sample windows.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  2048,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if IsFinitePositive(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the analysis window length.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BinCount returns the number of magnitude bins a window yields,
// DC and Nyquist included.
func (c ProcessorConfig) BinCount() int {
	return c.BlockSize/2 + 1
}

// BinHz returns the factor converting bin units to Hz.
func (c ProcessorConfig) BinHz() float64 {
	return c.SampleRate / float64(c.BlockSize)
}

// Validate reports whether the configuration can drive an analysis session.
// The block size must be even and at least 4 so that a window yields three
// or more magnitude bins.
func (c ProcessorConfig) Validate() error {
	if !IsFinitePositive(c.SampleRate) {
		return fmt.Errorf("sample rate must be positive and finite: %f", c.SampleRate)
	}
	if c.BlockSize < 4 || c.BlockSize%2 != 0 {
		return fmt.Errorf("block size must be even and >= 4: %d", c.BlockSize)
	}
	return nil
}
