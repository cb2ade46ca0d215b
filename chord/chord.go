package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/note"
)

// Chord is a chord label placed on a root note.
type Chord struct {
	Root  note.Note
	Label *chordlabel.ChordLabel
	Notes []note.Note
}

// New spells every interval of label from root. It fails when one of the
// notes is not reachable, e.g. D# with a #9.
func New(root note.Note, label *chordlabel.ChordLabel) (Chord, error) {
	c := Chord{Root: root, Label: label}
	for _, i := range label.Intervals() {
		n, err := root.Add(i)
		if err != nil {
			return Chord{}, fmt.Errorf("chord %v%v: %w", root.Name(), label.Name(), err)
		}
		c.Notes = append(c.Notes, n)
	}
	return c, nil
}

func (c Chord) Name() string {
	return c.Root.String() + c.Label.Name()
}

func (c Chord) String() string {
	names := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		names[i] = n.String()
	}
	return fmt.Sprintf("%v (%v)", c.Name(), strings.Join(names, ", "))
}

// Keys returns the MIDI keys of the chord, where base is the key of the C
// at or below the root. It fails when any key is above 127.
func (c Chord) Keys(base uint8) ([]uint8, error) {
	return keys(base, c.Root, c.Label.Set)
}

func keys(base uint8, root note.Note, s interval.Set) ([]uint8, error) {
	res := make([]uint8, 0, s.Len())
	for _, i := range s.Intervals() {
		k, err := root.Key(base, i)
		if err != nil {
			return nil, err
		}
		res = append(res, k)
	}
	return res, nil
}

func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, n := range notes {
		res += fmt.Sprintf("%v", n)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}
