package relationship

import (
	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/interval"
)

var (
	extensionSymbols = []string{"b7", "7", "b9", "9", "#9", "11", "#11"}

	interchangeSymbols = [][2]string{
		{"b3", "3"},
		{"b7", "7"},
		{"b9", "9"},
		{"b9", "#9"},
		{"9", "#9"},
		{"11", "#11"},
	}
)

type omission struct {
	t       Type
	symbols []string
}

func omissions() []omission {
	res := []omission{
		{MakeMajor, []string{"3"}},
		{MakeMinor, []string{"b3"}},
		{Sparser, []string{"5"}},
	}
	for _, third := range []string{"b3", "3"} {
		res = append(res,
			omission{Sparser, []string{third}},
			omission{Sparser, []string{third, "5"}},
			omission{Sparser, []string{third, "b9"}},
		)
	}
	for _, s := range extensionSymbols {
		res = append(res, omission{DeExtend, []string{s}})
	}
	return res
}

type resolvedOmission struct {
	t         Type
	intervals []interval.Interval
}

// Build links every label of chords to the labels one omission or one
// alteration away.
func Build(intervals *interval.Index, chords *chordlabel.Index) (*Relationships, error) {
	var omitted []resolvedOmission
	for _, o := range omissions() {
		ii, err := intervals.GetAll(o.symbols...)
		if err != nil {
			return nil, err
		}
		omitted = append(omitted, resolvedOmission{o.t, ii})
	}

	var changed [][2]interval.Interval
	for _, pair := range interchangeSymbols {
		ii, err := intervals.GetAll(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		changed = append(changed, [2]interval.Interval{ii[0], ii[1]})
	}

	r := New(chords)
	for _, c := range chords.Values() {
		for _, o := range omitted {
			r.AddWithIntervalsOmitted(o.t, c, o.intervals...)
		}
		for _, pair := range changed {
			r.AddWithIntervalChanged(Interchange, c, pair[0], pair[1])
		}
	}
	return r, nil
}
