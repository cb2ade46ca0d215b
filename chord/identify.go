package chord

import (
	"sort"

	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/note"
)

// Match is one reading of a set of keys as a chord.
type Match struct {
	Root  note.Note
	Label *chordlabel.ChordLabel
	// Inversion is set when the lowest key is not the root.
	Inversion bool
}

func (m Match) Name() string {
	return m.Root.Name() + m.Label.Name()
}

// Identify names the keys with every chord label matching their pitch
// classes, trying each sounding pitch class as the root. Root position
// readings come first, then fewer intervals.
func Identify(labels *chordlabel.Index, keys []uint8) []Match {
	if len(keys) == 0 {
		return nil
	}

	bass := keys[0]
	semitones := make([]int, len(keys))
	for i, k := range keys {
		semitones[i] = int(k)
		if k < bass {
			bass = k
		}
	}
	set := interval.NewSemitoneSet(semitones...)
	bassClass := int(bass) % interval.SemitonesPerOctave

	var res []Match
	for _, pc := range set.Semitones() {
		for _, c := range labels.BySemitones(set.Transpose(-pc)) {
			res = append(res, Match{
				Root:      note.ForPitchClass(pc),
				Label:     c,
				Inversion: pc != bassClass,
			})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Inversion != res[j].Inversion {
			return !res[i].Inversion
		}
		return res[i].Label.Len() < res[j].Label.Len()
	})
	return res
}

// KeyName spells a MIDI key, e.g. 61 is "C#".
func KeyName(key uint8) string {
	return note.ForPitchClass(int(key)).Name()
}
