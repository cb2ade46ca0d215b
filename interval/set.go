package interval

import (
	"sort"
	"strings"
)

// Set is an immutable, sorted collection of intervals. Duplicates are kept
// as given.
type Set struct {
	intervals []Interval
	semitones SemitoneSet
}

func NewSet(intervals ...Interval) Set {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})

	s := Set{intervals: sorted}
	for _, i := range sorted {
		s.semitones |= NewSemitoneSet(i.Semitones())
	}
	return s
}

func (s Set) Intervals() []Interval {
	res := make([]Interval, len(s.intervals))
	copy(res, s.intervals)
	return res
}

func (s Set) Len() int {
	return len(s.intervals)
}

func (s Set) At(n int) Interval {
	return s.intervals[n]
}

func (s Set) Semitones() SemitoneSet {
	return s.semitones
}

func (s Set) Has(i Interval) bool {
	for _, v := range s.intervals {
		if v == i {
			return true
		}
	}
	return false
}

// Key identifies the interval tuple, e.g. "1,b3,5,b7".
func (s Set) Key() string {
	names := make([]string, len(s.intervals))
	for n, i := range s.intervals {
		names[n] = i.Name()
	}
	return strings.Join(names, ",")
}

func (s Set) Equal(other Set) bool {
	return s.Key() == other.Key()
}

func (s Set) ContainsEnharmonics(other Set) bool {
	return s.semitones.Contains(other.semitones)
}

// RelativeTo re-expresses every interval as seen from root, raising
// intervals that fall below root by an octave first.
func (s Set) RelativeTo(root Interval) Set {
	root, _ = root.NormalizeOctave()

	res := make([]Interval, 0, len(s.intervals))
	for _, i := range s.intervals {
		for Less(i, root) {
			i = i.UpOctave()
		}
		res = append(res, i.Sub(root))
	}
	return NewSet(res...)
}

func (s Set) NormalizeOctave() Set {
	res := make([]Interval, 0, len(s.intervals))
	for _, i := range s.intervals {
		n, _ := i.NormalizeOctave()
		res = append(res, n)
	}
	return NewSet(res...)
}

// With returns a new set with the intervals added.
func (s Set) With(intervals ...Interval) Set {
	return NewSet(append(s.Intervals(), intervals...)...)
}

// Without removes one occurrence of each interval. It reports false, and
// returns s unchanged, when any of them is missing.
func (s Set) Without(intervals ...Interval) (Set, bool) {
	res := s.Intervals()
	for _, i := range intervals {
		pos := -1
		for n, v := range res {
			if v == i {
				pos = n
				break
			}
		}
		if pos < 0 {
			return s, false
		}
		res = append(res[:pos], res[pos+1:]...)
	}
	return NewSet(res...), true
}

// Replace swaps the first occurrence of a for b.
func (s Set) Replace(a, b Interval) (Set, bool) {
	res := s.Intervals()
	for n, v := range res {
		if v == a {
			res[n] = b
			return NewSet(res...), true
		}
	}
	return s, false
}

// CompareSets orders sets lexicographically by interval, a shorter prefix
// first.
func CompareSets(a, b Set) int {
	for n := 0; n < len(a.intervals) && n < len(b.intervals); n++ {
		if c := Compare(a.intervals[n], b.intervals[n]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.intervals) < len(b.intervals):
		return -1
	case len(a.intervals) > len(b.intervals):
		return 1
	}
	return 0
}

func (s Set) String() string {
	names := make([]string, len(s.intervals))
	for n, i := range s.intervals {
		names[n] = i.Name()
	}
	return "(" + strings.Join(names, ", ") + ")"
}
