package scalelabel

import (
	"fmt"

	"github.com/jsphweid/chordex/interval"
)

type Template struct {
	Name      string
	Intervals []string
}

var Templates = []Template{
	{"lydian", []string{"1", "2", "3", "#4", "5", "6", "7"}},
	{"ionian", []string{"1", "2", "3", "4", "5", "6", "7"}},
	{"mixolydian", []string{"1", "2", "3", "4", "5", "6", "b7"}},
	{"dorian", []string{"1", "2", "b3", "4", "5", "6", "b7"}},
	{"aeolian", []string{"1", "2", "b3", "4", "5", "b6", "b7"}},
	{"phrygian", []string{"1", "b2", "b3", "4", "5", "b6", "b7"}},
	{"locrian", []string{"1", "b2", "b3", "4", "b5", "b6", "b7"}},
	{"pentatonic", []string{"1", "2", "4", "5", "6"}},
	{"minor pentatonic", []string{"1", "b3", "4", "5", "b7"}},
	// NOTE: keeps both b7 and 7
	{"harmonic minor", []string{"1", "2", "b3", "4", "5", "b6", "b7", "7"}},
}

func FromTemplate(intervals *interval.Index, t Template) (*ScaleLabel, error) {
	s, err := intervals.ParseSet(t.Intervals...)
	if err != nil {
		return nil, fmt.Errorf("scale label %q: %w", t.Name, err)
	}
	return &ScaleLabel{Set: s, name: t.Name}, nil
}

func Build(intervals *interval.Index, templates []Template) (*Index, error) {
	idx := NewIndex()
	for _, t := range templates {
		s, err := FromTemplate(intervals, t)
		if err != nil {
			return nil, err
		}
		if err := idx.Add(s); err != nil {
			return nil, err
		}
	}
	return idx, nil
}
