package dump

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/relationship"
	"github.com/jsphweid/chordex/scale"
)

// Format renders registry values as dump lines. Sym is applied to every
// symbol (note names, intervals, chord names) but never to words.
type Format struct {
	Sym func(string) string
}

func (f Format) Notes(notes []note.Note) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = f.Sym(n.String())
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func (f Format) Intervals(s interval.Set) string {
	names := make([]string, s.Len())
	for i, v := range s.Intervals() {
		names[i] = f.Sym(v.Name())
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// NoteInterval renders "C interval b3 = Eb".
func (f Format) NoteInterval(n note.Note, i interval.Interval, res note.Note) string {
	return fmt.Sprintf("%v interval %v = %v", f.Sym(n.String()), f.Sym(i.Name()), f.Sym(res.String()))
}

// Scale renders "C ionian (C, D, E, F, G, A, B)".
func (f Format) Scale(s scale.Scale) string {
	return fmt.Sprintf("%v %v %v", f.Sym(s.Root.String()), s.Label.Name(), f.Notes(s.Notes))
}

// ChordLabel renders "m7 (1, b3, 5, b7)".
func (f Format) ChordLabel(c *chordlabel.ChordLabel) string {
	return f.Sym(c.Name()) + " " + f.Intervals(c.Set)
}

// Chord renders "Cm7 (C, Eb, G, Bb)".
func (f Format) Chord(c chord.Chord) string {
	return f.Sym(c.Name()) + " " + f.Notes(c.Notes)
}

func (f Format) Relationship(r relationship.Relationship) string {
	return fmt.Sprintf("%v   %v  ->  %v", r.Type.Name, f.ChordLabel(r.From), f.ChordLabel(r.To))
}
