package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-tuner/pitch"
)

type printer struct {
	tw        *tabwriter.Writer
	all       bool
	harmonics *pitch.Harmonics
	// fundamentals collects every determined estimate with harmonic index 0.
	fundamentals []float64
}

func newPrinter(w io.Writer, all bool, h *pitch.Harmonics) *printer {
	return &printer{
		tw:        tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		all:       all,
		harmonics: h,
	}
}

func (p *printer) header() error {
	if _, err := fmt.Fprintf(p.tw, "Frame\tTime [s]\tBins\tKind\tFreq [Hz]\tNote\tHarm\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.tw, "-----\t--------\t----\t----\t---------\t----\t----\n")
	return err
}

func (p *printer) frames(frames []pitch.Frame) error {
	for _, f := range frames {
		p.harmonics.Clear()

		for _, d := range f.Detections {
			hz, ok := d.Hz.Value()
			if !ok {
				if !p.all {
					continue
				}
				if _, err := fmt.Fprintf(p.tw, "%d\t%.3f\t%s\t%s\t-\t-\t-\n", f.Index, f.Time, d.Span(), d.Kind); err != nil {
					return err
				}
				continue
			}

			harm := p.harmonics.Index(hz)
			if harm == 0 {
				p.fundamentals = append(p.fundamentals, hz)
			}

			name := "-"
			if d.HasNote {
				name = d.Note.String()
			}

			if _, err := fmt.Fprintf(p.tw, "%d\t%.3f\t%s\t%s\t%.2f\t%s\t%d\n",
				f.Index, f.Time, d.Span(), d.Kind, hz, name, harm); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *printer) flush() error {
	return p.tw.Flush()
}
