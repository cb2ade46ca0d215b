package scalelabel

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordex/interval"
)

var (
	ErrDuplicate         = errors.New("duplicate scale label")
	ErrUnknownScaleLabel = errors.New("unknown scale label")
)

// ScaleLabel is a named scale template, e.g. "dorian" = (1, 2, b3, 4, 5, 6, b7).
type ScaleLabel struct {
	interval.Set
	name string
}

func New(name string, intervals ...interval.Interval) *ScaleLabel {
	return &ScaleLabel{Set: interval.NewSet(intervals...), name: name}
}

func (s *ScaleLabel) Name() string {
	return s.name
}

func (s *ScaleLabel) String() string {
	return s.name + " " + s.Set.String()
}

// Extended adds a copy one octave up of every interval below the 5th, so the
// scale can be compared against chords reaching the 9th, 10th and 11th.
func (s *ScaleLabel) Extended() *ScaleLabel {
	var upper []interval.Interval
	for _, i := range s.Intervals() {
		if i.Degree() < 5 {
			upper = append(upper, i.UpOctave())
		}
	}
	return &ScaleLabel{Set: s.With(upper...), name: s.name}
}

// RelativeTo re-roots the scale on one of its degrees, e.g. ionian relative
// to 2 is dorian.
func (s *ScaleLabel) RelativeTo(root interval.Interval) *ScaleLabel {
	return &ScaleLabel{Set: s.Set.RelativeTo(root), name: fmt.Sprintf("%v/%v", s.name, root)}
}
