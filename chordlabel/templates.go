package chordlabel

import (
	"fmt"

	"github.com/jsphweid/chordex/interval"
)

type Template struct {
	Name      string
	Intervals []string
}

// Templates are the base chord labels, before any 9th or 11th is added.
var Templates = []Template{
	{"", []string{"1", "3", "5"}},
	{"m", []string{"1", "b3", "5"}},
	// power
	{"5", []string{"1", "5"}},
	// no5
	{"(no5)", []string{"1", "3"}},
	{"m(no5)", []string{"1", "b3"}},
	{"dim", []string{"1", "b3", "b5"}},
	{"+", []string{"1", "3", "#5"}},
	{"sus2", []string{"1", "2", "5"}},
	{"sus4", []string{"1", "4", "5"}},

	{"6", []string{"1", "3", "5", "6"}},
	{"m6", []string{"1", "b3", "5", "6"}},
	{"6sus2", []string{"1", "2", "5", "6"}},
	{"6sus4", []string{"1", "4", "5", "6"}},

	{"7", []string{"1", "3", "5", "b7"}},
	{"m7", []string{"1", "b3", "5", "b7"}},
	{"M7", []string{"1", "3", "5", "7"}},
	{"mM7", []string{"1", "b3", "5", "7"}},
	{"57", []string{"1", "5", "b7"}},
	{"5M7", []string{"1", "5", "7"}},
	{"(no5)7", []string{"1", "3", "b7"}},
	{"m(no5)7", []string{"1", "b3", "b7"}},
	{"(no5)M7", []string{"1", "3", "7"}},
	{"m(no5)M7", []string{"1", "b3", "7"}},
	// 6 stands in for bb7
	{"dim7", []string{"1", "b3", "b5", "6"}},
	{"h7", []string{"1", "b3", "b5", "b7"}},
	{"hM7", []string{"1", "b3", "b5", "7"}},
	{"+7", []string{"1", "3", "#5", "b7"}},
	{"+M7", []string{"1", "3", "#5", "7"}},
	{"7sus2", []string{"1", "2", "5", "b7"}},
	{"7sus4", []string{"1", "4", "5", "b7"}},
	{"M7sus2", []string{"1", "2", "5", "7"}},
	{"M7sus4", []string{"1", "4", "5", "7"}},
}

func FromTemplate(intervals *interval.Index, t Template) (*ChordLabel, error) {
	s, err := intervals.ParseSet(t.Intervals...)
	if err != nil {
		return nil, fmt.Errorf("chord label %q: %w", t.Name, err)
	}
	return &ChordLabel{Set: s, name: t.Name}, nil
}

// Build registers the templates, then the 9th and the 11th chords, and
// returns the frozen index. Each pass works on the labels registered before
// it started, so the 11th pass also extends the 9th chords.
func Build(intervals *interval.Index, templates []Template) (*Index, error) {
	idx := NewIndex()
	for _, t := range templates {
		c, err := FromTemplate(intervals, t)
		if err != nil {
			return nil, err
		}
		if err := idx.Add(c); err != nil {
			return nil, err
		}
	}

	if err := addNinths(intervals, idx); err != nil {
		return nil, err
	}
	if err := addElevenths(intervals, idx); err != nil {
		return nil, err
	}

	idx.Freeze()
	return idx, nil
}

func extend(idx *Index, c *ChordLabel, exts []interval.Interval) error {
	for _, ext := range exts {
		if err := idx.Add(c.ExtendWith(ext)); err != nil {
			return err
		}
	}
	return nil
}

func addNinths(intervals *interval.Index, idx *Index) error {
	ii, err := intervals.GetAll("2", "b5", "b9", "9", "#9")
	if err != nil {
		return err
	}
	second, flatFifth, exts := ii[0], ii[1], ii[2:]

	for _, c := range idx.Values() {
		// 9 is an octave above 2, so sus2 chords already carry it
		if c.Has(second) {
			continue
		}
		// diminished chords are left alone
		if c.Has(flatFifth) {
			continue
		}
		if err := extend(idx, c, exts); err != nil {
			return err
		}
	}
	return nil
}

func addElevenths(intervals *interval.Index, idx *Index) error {
	ii, err := intervals.GetAll("b3", "3", "4", "b5", "5", "11", "#11")
	if err != nil {
		return err
	}
	minorThird, majorThird, fourth, flatFifth, fifth := ii[0], ii[1], ii[2], ii[3], ii[4]
	eleven, sharpEleven := ii[5], ii[6]

	for _, c := range idx.Values() {
		// 11ths only go on chords without a 5, a 4 or a b5
		if c.Has(fifth) || c.Has(fourth) || c.Has(flatFifth) {
			continue
		}

		var exts []interval.Interval
		if !c.Has(majorThird) {
			exts = append(exts, eleven)
		}
		if !c.Has(minorThird) {
			exts = append(exts, sharpEleven)
		}
		if err := extend(idx, c, exts); err != nil {
			return err
		}
	}
	return nil
}
