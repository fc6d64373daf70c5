package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mjibson/go-dsp/wav"
)

// readChunk is the number of frames a source returns per Read.
const readChunk = 4096

const wavFormatPCM = 1

// source yields mono float64 samples until io.EOF. Read may return samples
// together with io.EOF.
type source interface {
	Name() string
	SampleRate() float64
	Read() ([]float64, error)
	Close() error
}

func openSource(o options) (source, error) {
	if o.in != "" {
		return openWAV(o.in)
	}

	return newToneSource(o.tone, o.amplitude, o.rate, o.seconds)
}

type wavSource struct {
	name      string
	f         *os.File
	w         *wav.Wav
	channels  int
	remaining int
}

func openWAV(path string) (*wavSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	w, err := wav.New(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if w.NumChannels == 0 || w.SampleRate == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%s: invalid header (channels=%d rate=%d)", path, w.NumChannels, w.SampleRate)
	}

	return &wavSource{
		name:      path,
		f:         f,
		w:         w,
		channels:  int(w.NumChannels),
		remaining: w.Samples,
	}, nil
}

func (s *wavSource) Name() string { return s.name }
func (s *wavSource) SampleRate() float64 { return float64(s.w.SampleRate) }
func (s *wavSource) Close() error { return s.f.Close() }

// Read returns the first channel of the next chunk. PCM data arrives scaled
// to [0, 1] and is mapped back to [-1, 1].
func (s *wavSource) Read() ([]float64, error) {
	n := min(readChunk*s.channels, s.remaining)
	n -= n % s.channels
	if n <= 0 {
		return nil, io.EOF
	}

	raw, err := s.w.ReadFloats(n)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	s.remaining -= n

	out := make([]float64, len(raw)/s.channels)
	pcm := s.w.AudioFormat == wavFormatPCM
	for i := range out {
		v := float64(raw[i*s.channels])
		if pcm {
			v = 2*v - 1
		}
		out[i] = v
	}

	if s.remaining < s.channels {
		return out, io.EOF
	}

	return out, nil
}

type toneSource struct {
	name    string
	rate    float64
	samples []float64
	pos     int
}

func newToneSource(freq, amplitude, rate, seconds float64) (*toneSource, error) {
	switch {
	case !(rate > 0) || math.IsInf(rate, 0):
		return nil, fmt.Errorf("invalid sample rate %v", rate)
	case !(seconds > 0) || math.IsInf(seconds, 0):
		return nil, fmt.Errorf("invalid duration %v", seconds)
	case freq >= rate/2:
		return nil, fmt.Errorf("tone %v Hz is not below Nyquist (%v Hz)", freq, rate/2)
	}

	samples := make([]float64, int(math.Round(seconds*rate)))
	for i := range samples {
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}

	return &toneSource{
		name:    fmt.Sprintf("sine %g Hz", freq),
		rate:    rate,
		samples: samples,
	}, nil
}

func (s *toneSource) Name() string { return s.name }
func (s *toneSource) SampleRate() float64 { return s.rate }
func (s *toneSource) Close() error { return nil }

func (s *toneSource) Read() ([]float64, error) {
	end := min(s.pos+readChunk, len(s.samples))
	out := s.samples[s.pos:end]
	s.pos = end

	if s.pos == len(s.samples) {
		return out, io.EOF
	}

	return out, nil
}
