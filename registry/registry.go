package registry

import (
	"fmt"

	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/relationship"
	"github.com/jsphweid/chordex/scalelabel"
)

// Registry holds every table the generators read. It is built once and not
// modified afterwards.
type Registry struct {
	Intervals     *interval.Index
	ChordLabels   *chordlabel.Index
	ScaleLabels   *scalelabel.Index
	Roots         []note.Note
	Relationships *relationship.Relationships
}

func Build() (*Registry, error) {
	intervals, err := interval.NewIndex(interval.Canonical())
	if err != nil {
		return nil, fmt.Errorf("building intervals: %w", err)
	}

	chords, err := chordlabel.Build(intervals, chordlabel.Templates)
	if err != nil {
		return nil, fmt.Errorf("building chord labels: %w", err)
	}

	scales, err := scalelabel.Build(intervals, scalelabel.Templates)
	if err != nil {
		return nil, fmt.Errorf("building scale labels: %w", err)
	}

	rels, err := relationship.Build(intervals, chords)
	if err != nil {
		return nil, fmt.Errorf("building relationships: %w", err)
	}

	return &Registry{
		Intervals:     intervals,
		ChordLabels:   chords,
		ScaleLabels:   scales,
		Roots:         note.Roots(),
		Relationships: rels,
	}, nil
}

func MustBuild() *Registry {
	r, err := Build()
	if err != nil {
		panic("Could not build registry: " + err.Error())
	}
	return r
}

// Root looks a root note up by name.
func (r *Registry) Root(name string) (note.Note, error) {
	for _, n := range r.Roots {
		if n.Name() == name {
			return n, nil
		}
	}
	return note.Note{}, fmt.Errorf("%w: %q", note.ErrUnsupportedRoot, name)
}
