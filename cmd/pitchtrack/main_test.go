package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeWAV(t *testing.T, rate, channels int, samples []int16) string {
	t.Helper()

	var buf bytes.Buffer
	dataSize := uint32(2 * len(samples))
	le := binary.LittleEndian

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, le, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, le, uint32(16))
	_ = binary.Write(&buf, le, uint16(1))
	_ = binary.Write(&buf, le, uint16(channels))
	_ = binary.Write(&buf, le, uint32(rate))
	_ = binary.Write(&buf, le, uint32(rate*channels*2))
	_ = binary.Write(&buf, le, uint16(channels*2))
	_ = binary.Write(&buf, le, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, le, dataSize)
	_ = binary.Write(&buf, le, samples)

	path := filepath.Join(t.TempDir(), "in.wav")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no input", args: nil, want: "one of -in or -tone"},
		{name: "both inputs", args: []string{"-in", "x.wav", "-tone", "440"}, want: "mutually exclusive"},
		{name: "unknown flag", args: []string{"-nope"}, want: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, io.Discard)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "Usage: pitchtrack") {
		t.Fatalf("usage not printed:\n%s", stderr.String())
	}
}

func TestRunTone(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"-tone", "440", "-seconds", "0.2", "-size", "2048", "-summary"}, &stdout, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"Freq [Hz]", "A4", "Estimates", "Note"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "odd size", args: []string{"-tone", "440", "-size", "2047"}},
		{name: "unknown window", args: []string{"-tone", "440", "-window", "triangle"}},
		{name: "unknown backend", args: []string{"-tone", "440", "-backend", "fftw"}},
		{name: "positive bound ratio", args: []string{"-tone", "440", "-bound-db", "3"}},
		{name: "tone above nyquist", args: []string{"-tone", "30000"}},
		{name: "bad log level", args: []string{"-tone", "440", "-log-level", "loud"}},
		{name: "missing file", args: []string{"-in", filepath.Join(t.TempDir(), "none.wav")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, io.Discard, io.Discard); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestWAVSourceFirstChannel(t *testing.T) {
	// Interleaved stereo: the right channel must be ignored.
	path := writeWAV(t, 8000, 2, []int16{
		0, 100,
		16384, 100,
		-16384, 100,
		32767, 100,
		-32768, 100,
	})

	src, err := openWAV(path)
	if err != nil {
		t.Fatalf("openWAV: %v", err)
	}
	defer func() { _ = src.Close() }()

	if src.SampleRate() != 8000 {
		t.Fatalf("SampleRate = %v, want 8000", src.SampleRate())
	}

	got, err := src.Read()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF with the last chunk", err)
	}

	want := []float64{0, 0.5, -0.5, 1, -1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-4 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := src.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("second Read err = %v, want io.EOF", err)
	}
}

func TestRunWAV(t *testing.T) {
	const rate = 48000

	samples := make([]int16, rate/5)
	for i := range samples {
		samples[i] = int16(16000 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}
	path := writeWAV(t, rate, 1, samples)

	var stdout bytes.Buffer
	if err := run([]string{"-in", path, "-window", "hann"}, &stdout, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "A4") {
		t.Fatalf("output missing A4:\n%s", stdout.String())
	}
}

func TestToneSourceChunks(t *testing.T) {
	src, err := newToneSource(100, 1, 1000, 10)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for {
		chunk, err := src.Read()
		total += len(chunk)
		if len(chunk) > readChunk {
			t.Fatalf("chunk of %d samples exceeds %d", len(chunk), readChunk)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if total != 10000 {
		t.Fatalf("total = %d, want 10000", total)
	}
}
