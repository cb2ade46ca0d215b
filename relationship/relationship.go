package relationship

import (
	"fmt"

	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/interval"
)

type Type struct {
	Name        string
	InverseName string
}

func (t Type) Inverse() Type {
	return Type{Name: t.InverseName, InverseName: t.Name}
}

var (
	MakeMajor   = Type{"neutralize", "make major"}
	MakeMinor   = Type{"neutralize", "make minor"}
	Sparser     = Type{"sparser", "denser"}
	DeExtend    = Type{"de-extend", "extend"}
	Interchange = Type{"interchange", "interchange"}
)

// Relationship is a directed edge From -> To.
type Relationship struct {
	Type Type
	From *chordlabel.ChordLabel
	To   *chordlabel.ChordLabel
}

func (r Relationship) String() string {
	return fmt.Sprintf("%v   %v  ->  %v", r.Type.Name, r.From, r.To)
}

// Relationships is an append-only list of edges between the labels of one
// index. Every edge is stored together with its inverse.
type Relationships struct {
	chords *chordlabel.Index
	values []Relationship
}

func New(chords *chordlabel.Index) *Relationships {
	return &Relationships{chords: chords}
}

func (r *Relationships) Add(t Type, c1, c2 *chordlabel.ChordLabel) {
	r.values = append(r.values,
		Relationship{Type: t, From: c1, To: c2},
		Relationship{Type: t.Inverse(), From: c2, To: c1},
	)
}

// AddWithIntervalsOmitted links c to the label made of c's intervals minus
// ii, if c has all of ii and such a label is registered.
func (r *Relationships) AddWithIntervalsOmitted(t Type, c *chordlabel.ChordLabel, ii ...interval.Interval) bool {
	s, ok := c.Without(ii...)
	if !ok {
		return false
	}
	c2, ok := r.chords.ByIntervals(s)
	if !ok {
		return false
	}
	r.Add(t, c, c2)
	return true
}

// AddWithIntervalChanged links c to the label with i1 swapped for i2.
func (r *Relationships) AddWithIntervalChanged(t Type, c *chordlabel.ChordLabel, i1, i2 interval.Interval) bool {
	s, ok := c.Replace(i1, i2)
	if !ok {
		return false
	}
	c2, ok := r.chords.ByIntervals(s)
	if !ok {
		return false
	}
	r.Add(t, c, c2)
	return true
}

func (r *Relationships) Values() []Relationship {
	res := make([]Relationship, len(r.values))
	copy(res, r.values)
	return res
}

func (r *Relationships) Len() int {
	return len(r.values)
}

// From returns the edges leaving c.
func (r *Relationships) From(c *chordlabel.ChordLabel) []Relationship {
	var res []Relationship
	for _, v := range r.values {
		if v.From == c {
			res = append(res, v)
		}
	}
	return res
}
