package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/interval"
)

var (
	ErrInvalidName     = errors.New("invalid note name")
	ErrUnsupportedRoot = errors.New("note is reachable but not supported as the base of an interval")
	ErrUnreachable     = errors.New("interval would result in an unsupported note")
	ErrKeyOutOfRange   = errors.New("MIDI key out of range")
)

// Note is a pitch spelling plus an octave offset relative to the note it was
// derived from.
type Note struct {
	name      string
	relOctave int
}

func New(name string, relOctave int) (Note, error) {
	if !IsReachable(name) {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return Note{name: name, relOctave: relOctave}, nil
}

func MustNew(name string, relOctave int) Note {
	n, err := New(name, relOctave)
	if err != nil {
		panic(err)
	}
	return n
}

// Roots returns every note that intervals can be added to, sorted by name.
func Roots() []Note {
	names := RootNames()
	res := make([]Note, 0, len(names))
	for _, n := range names {
		res = append(res, Note{name: n})
	}
	return res
}

func (n Note) Name() string {
	return n.name
}

func (n Note) RelOctave() int {
	return n.relOctave
}

// PitchClass counts semitones up from C, ignoring the octave.
func (n Note) PitchClass() int {
	return pitchClasses[n.name]
}

func (n Note) IsRoot() bool {
	return IsRoot(n.name)
}

// Add spells the note found i above n. It fails for double sharp/flat bases
// and for results such as E## or Cbb.
func (n Note) Add(i interval.Interval) (Note, error) {
	if !n.IsRoot() {
		return Note{}, fmt.Errorf("%w: %v", ErrUnsupportedRoot, n)
	}

	i, octaves := i.NormalizeOctave()
	name := relativeNames[n.name][i.Degree()-1]
	for rel := i.RelSemitones(); rel < 0; rel++ {
		name = flatten(name)
	}
	for rel := i.RelSemitones(); rel > 0; rel-- {
		name = sharpen(name)
	}

	if !IsReachable(name) {
		return Note{}, fmt.Errorf("%w: %v interval %v would be %v", ErrUnreachable, n, i, name)
	}
	return Note{name: name, relOctave: n.relOctave + octaves}, nil
}

func (n Note) EnharmonicNames() []string {
	names := reachableNames[n.PitchClass()]
	res := make([]string, len(names))
	copy(res, names)
	return res
}

func (n Note) EnharmonicNotes() []Note {
	var res []Note
	for _, name := range n.EnharmonicNames() {
		res = append(res, Note{name: name, relOctave: n.relOctave})
	}
	return res
}

func (n Note) String() string {
	if n.relOctave > 0 {
		return n.name + strings.Repeat("↑", n.relOctave)
	}
	if n.relOctave < 0 {
		return n.name + strings.Repeat("↓", -n.relOctave)
	}
	return n.name
}

// ForPitchClass returns the root note spelling a pitch class, preferring
// naturals, then sharps.
func ForPitchClass(pc int) Note {
	pc = ((pc % 12) + 12) % 12
	var res Note
	for _, name := range reachableNames[pc] {
		if !IsRoot(name) {
			continue
		}
		if len(name) == 1 {
			return Note{name: name}
		}
		if res.name == "" {
			res = Note{name: name}
		}
	}
	return res
}

// MaxKey is the highest MIDI key.
const MaxKey = 127

// Key returns the MIDI key i above n, where base is the key of the C at or
// below n.
func (n Note) Key(base uint8, i interval.Interval) (uint8, error) {
	k := int(base) + n.PitchClass() + n.relOctave*interval.SemitonesPerOctave + i.Semitones()
	if k < 0 || k > MaxKey {
		return 0, fmt.Errorf("%w: %v interval %v from key %d would be %d", ErrKeyOutOfRange, n, i, base, k)
	}
	return uint8(k), nil
}
