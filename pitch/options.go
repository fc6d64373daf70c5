package pitch

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-tuner/dsp/peak"
	"github.com/cwbudde/algo-tuner/dsp/transform"
	"github.com/cwbudde/algo-tuner/dsp/window"
)

// Option configures a Resolver or a Session. Framing options (transform,
// backend, window) only affect sessions.
type Option func(*config)

type config struct {
	detector  *peak.Detector
	peakOpts  []peak.Option
	logger    *zap.Logger
	transform transform.Transformer
	backend   transform.Backend
	window    window.Type
	windowOpt []window.Option
}

func defaultConfig() config {
	return config{
		logger:  zap.NewNop(),
		backend: transform.DefaultBackend,
		window:  window.TypeRectangular,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDetector uses d for peak detection. It takes precedence over
// WithPeakOptions.
func WithDetector(d *peak.Detector) Option {
	return func(c *config) {
		c.detector = d
	}
}

// WithPeakOptions configures the default peak detector.
func WithPeakOptions(opts ...peak.Option) Option {
	return func(c *config) {
		c.peakOpts = append(c.peakOpts, opts...)
	}
}

// WithLogger sets the logger for tracker and disambiguation events.
// Events are logged at debug level. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// WithTransform sets a ready-made transformer. Its size must equal the
// session block size.
func WithTransform(t transform.Transformer) Option {
	return func(c *config) {
		c.transform = t
	}
}

// WithBackend selects the transform backend used when no transformer is set.
func WithBackend(b transform.Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithWindow sets the analysis window applied to each frame.
// The periodic form is always used.
func WithWindow(t window.Type, opts ...window.Option) Option {
	return func(c *config) {
		c.window = t
		c.windowOpt = opts
	}
}

func (c *config) peakDetector() (*peak.Detector, error) {
	if c.detector != nil {
		return c.detector, nil
	}
	return peak.NewDetector(c.peakOpts...)
}
