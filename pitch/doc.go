// Package pitch turns a sequence of packed spectra into refined frequency
// estimates and notes.
//
// A Resolver owns one phase tracker slot per spectral bin. Every frame it
// detects single and bound peaks, advances the trackers of the bins those
// peaks cover, and reports one Detection per peak. The first observation
// of a bin has no phase history and yields an undetermined estimate. For a
// bound peak the two per-bin estimates are reconciled by ResolveBound.
//
// A Session adds framing, windowing and the forward transform on top of a
// Resolver so that raw samples can be fed directly. Frames must be
// processed in temporal order; neither type is safe for concurrent use.
package pitch
