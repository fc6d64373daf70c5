// Package spectrum provides helpers for packed real-transform spectra.
//
// The package intentionally does not implement the transform itself. It
// consumes the packed half-complex layout produced by real FFT backends,
//
//	[c0, re1, im1, re2, im2, ..., re(N/2-1), im(N/2-1), cN/2]
//
// where c0 is the DC coefficient, cN/2 the Nyquist coefficient and each
// interior pair holds the cosine and sine components of one bin. Helpers
// extract per-bin magnitudes and phases from that layout.
package spectrum
