// Package peak finds dominant bins in a magnitude spectrum.
//
// A bin qualifies when it is at least MinStrength and strictly greater than
// its neighbours. Each qualifying bin is compared with its stronger
// neighbour (its rival): when the rival is within MinBoundRatioDB of it the
// pair is reported as a Bound peak, otherwise the bin is reported as a
// Single peak. Bin 0 (DC) is never a candidate; bin 1 and the Nyquist bin
// have only one eligible neighbour.
package peak
