// Package note maps frequencies to equal-tempered notes and back.
//
// Notes are indexed from C0 in semitones; A4 (index 57) is tuned to 440 Hz.
// A Mapping splits a frequency into the nearest note and a cents offset in
// (-50, +50].
package note

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// NotesPerOctave is the number of semitones in an octave.
	NotesPerOctave = 12
	// CentsPerNote is the number of cents in a semitone.
	CentsPerNote = 100
	// A4Index is the semitone index of A4 counted from C0.
	A4Index = 4*NotesPerOctave + 9
	// A4Frequency is the reference pitch in Hz.
	A4Frequency = 440.0
)

var (
	// ErrUndetermined is returned for frequencies without a defined note
	// (zero, negative, NaN or infinite).
	ErrUndetermined = errors.New("cannot determine note for frequency")
	// ErrUnknownName is returned by ParseName for unrecognised note names.
	ErrUnknownName = errors.New("unknown note name")
)

// NoteNames lists the semitone names from C upwards.
var NoteNames = [NotesPerOctave]string{
	"C", "C#", "D", "Eb", "E", "F", "F#", "G", "G#", "A", "Bb", "B",
}

// aliases accepts the enharmonic spellings NoteNames does not use.
var aliases = map[string]int{
	"Db": 1,
	"D#": 3,
	"Gb": 6,
	"Ab": 8,
	"A#": 10,
}

// Mapping is a note plus a cents offset.
type Mapping struct {
	Octave int
	// Note is the semitone within the octave, 0 (C) to 11 (B).
	Note int
	// Cents is the offset from the note in (-50, +50].
	Cents float64
}

// FrequencyToNote returns the note nearest to hz.
func FrequencyToNote(hz float64) (Mapping, error) {
	if !(hz > 0) || math.IsInf(hz, 1) {
		return Mapping{}, fmt.Errorf("%w: %v Hz", ErrUndetermined, hz)
	}

	index := A4Index + NotesPerOctave*math.Log2(hz/A4Frequency)

	whole := math.Floor(index)
	cents := CentsPerNote * (index - whole)
	n := int(whole)

	if cents > CentsPerNote/2 {
		n++
		cents -= CentsPerNote
	}

	octave := floorDiv(n, NotesPerOctave)

	return Mapping{
		Octave: octave,
		Note:   n - octave*NotesPerOctave,
		Cents:  cents,
	}, nil
}

// NoteToFrequency returns the frequency in Hz of a note plus cents offset.
func NoteToFrequency(octave, note int, cents float64) float64 {
	index := float64(octave*NotesPerOctave+note) + cents/CentsPerNote
	return A4Frequency * math.Pow(2, (index-A4Index)/NotesPerOctave)
}

// Frequency returns the frequency in Hz of m.
func (m Mapping) Frequency() float64 {
	return NoteToFrequency(m.Octave, m.Note, m.Cents)
}

// Name returns the note name with octave, for example "C#3".
func (m Mapping) Name() string {
	return NoteNames[m.Note] + strconv.Itoa(m.Octave)
}

// String formats m as name, octave and signed cents, for example "A4.+00.0".
func (m Mapping) String() string {
	return fmt.Sprintf("%s%d.%+05.1f", NoteNames[m.Note], m.Octave, m.Cents)
}

// ParseName parses a note name such as "A4", "C#3", "Bb2" or "E-1"
// into a Mapping with zero cents.
func ParseName(name string) (Mapping, error) {
	name = strings.TrimSpace(name)

	split := 1
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		split = 2
	}

	if len(name) <= split {
		return Mapping{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	pitch := strings.ToUpper(name[:1]) + name[1:split]
	semitone, ok := lookup(pitch)
	if !ok {
		return Mapping{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	octave, err := strconv.Atoi(name[split:])
	if err != nil {
		return Mapping{}, fmt.Errorf("%w: %q: %v", ErrUnknownName, name, err)
	}

	return Mapping{Octave: octave, Note: semitone}, nil
}

func lookup(pitch string) (int, bool) {
	for i, n := range NoteNames {
		if n == pitch {
			return i, true
		}
	}

	i, ok := aliases[pitch]
	return i, ok
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
