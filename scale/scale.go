package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/scalelabel"
)

// Scale is a scale label placed on a root note.
type Scale struct {
	Root  note.Note
	Label *scalelabel.ScaleLabel
	Notes []note.Note
}

func New(root note.Note, label *scalelabel.ScaleLabel) (Scale, error) {
	s := Scale{Root: root, Label: label}
	for _, i := range label.Intervals() {
		n, err := root.Add(i)
		if err != nil {
			return Scale{}, fmt.Errorf("scale %v %v: %w", root.Name(), label.Name(), err)
		}
		s.Notes = append(s.Notes, n)
	}
	return s, nil
}

func (s Scale) Name() string {
	return s.Root.Name() + " " + s.Label.Name()
}

func (s Scale) String() string {
	names := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		names[i] = n.String()
	}
	return fmt.Sprintf("%v (%v)", s.Name(), strings.Join(names, ", "))
}

// ContainsNoteOrEnharmonic reports whether a note of the scale is spelled
// name, or sounds the same as name.
func (s Scale) ContainsNoteOrEnharmonic(name string) bool {
	for _, n := range s.Notes {
		for _, e := range n.EnharmonicNames() {
			if e == name {
				return true
			}
		}
	}
	return false
}

// NoteInterval pairs a note of the scale with the interval producing it.
// Keys returns the MIDI keys of the scale, where base is the key of the C
// at or below the root. It fails when any key is above 127.
func (s Scale) Keys(base uint8) ([]uint8, error) {
	res := make([]uint8, 0, s.Label.Len())
	for _, i := range s.Label.Intervals() {
		k, err := s.Root.Key(base, i)
		if err != nil {
			return nil, fmt.Errorf("scale %v: %w", s.Name(), err)
		}
		res = append(res, k)
	}
	return res, nil
}

type NoteInterval struct {
	Note     note.Note
	Interval interval.Interval
}

func (s Scale) NoteIntervals() []NoteInterval {
	intervals := s.Label.Intervals()
	res := make([]NoteInterval, len(s.Notes))
	for i, n := range s.Notes {
		res[i] = NoteInterval{Note: n, Interval: intervals[i]}
	}
	return res
}
