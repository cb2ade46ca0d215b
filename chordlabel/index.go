package chordlabel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/chordex/interval"
)

var (
	ErrDuplicate         = errors.New("duplicate chord label")
	ErrFrozen            = errors.New("chord label index is frozen")
	ErrUnknownChordLabel = errors.New("unknown chord label")
)

// Scale is anything able to tell whether it holds a set of intervals
// enharmonically. scalelabel.ScaleLabel satisfies it.
type Scale interface {
	ContainsEnharmonics(other interval.Set) bool
}

// Index registers chord labels, unique both by name and by interval tuple.
type Index struct {
	values      []*ChordLabel
	byName      map[string]*ChordLabel
	byIntervals map[string]*ChordLabel
	frozen      bool
}

func NewIndex() *Index {
	return &Index{
		byName:      make(map[string]*ChordLabel),
		byIntervals: make(map[string]*ChordLabel),
	}
}

func (idx *Index) Add(c *ChordLabel) error {
	if idx.frozen {
		return fmt.Errorf("%w: cannot add %q", ErrFrozen, c.Name())
	}
	if _, ok := idx.byName[c.Name()]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicate, c.Name())
	}
	if other, ok := idx.byIntervals[c.Key()]; ok {
		return fmt.Errorf("%w: %q has the same intervals as %q", ErrDuplicate, c.Name(), other.Name())
	}

	idx.values = append(idx.values, c)
	idx.byName[c.Name()] = c
	idx.byIntervals[c.Key()] = c
	return nil
}

func (idx *Index) MustAdd(c *ChordLabel) {
	if err := idx.Add(c); err != nil {
		panic(err)
	}
}

// Freeze ends the build phase; later Adds fail with ErrFrozen.
func (idx *Index) Freeze() {
	idx.frozen = true
}

func (idx *Index) Frozen() bool {
	return idx.frozen
}

// Values returns the labels in registration order.
func (idx *Index) Values() []*ChordLabel {
	res := make([]*ChordLabel, len(idx.values))
	copy(res, idx.values)
	return res
}

func (idx *Index) Names() []string {
	res := make([]string, 0, len(idx.values))
	for _, c := range idx.values {
		res = append(res, c.Name())
	}
	return res
}

func (idx *Index) Len() int {
	return len(idx.values)
}

func (idx *Index) ByName(name string) (*ChordLabel, bool) {
	c, ok := idx.byName[name]
	return c, ok
}

// Get is ByName for callers that treat a missing label as a lookup failure.
func (idx *Index) Get(name string) (*ChordLabel, error) {
	c, ok := idx.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChordLabel, name)
	}
	return c, nil
}

func (idx *Index) ByIntervals(s interval.Set) (*ChordLabel, bool) {
	return idx.ByKey(s.Key())
}

func (idx *Index) ByKey(key string) (*ChordLabel, bool) {
	c, ok := idx.byIntervals[key]
	return c, ok
}

// BySemitones returns every label whose pitch classes are exactly s.
func (idx *Index) BySemitones(s interval.SemitoneSet) []*ChordLabel {
	var res []*ChordLabel
	for _, c := range idx.values {
		if c.Semitones() == s {
			res = append(res, c)
		}
	}
	return res
}

// Restrict returns a frozen index holding the labels that fit in scale. An
// empty result is valid.
func (idx *Index) Restrict(scale Scale) *Index {
	res := NewIndex()
	for _, c := range idx.values {
		if scale.ContainsEnharmonics(c.Set) {
			res.MustAdd(c)
		}
	}
	res.Freeze()
	return res
}

// Sorted returns the labels ordered by interval tuple.
func (idx *Index) Sorted() []*ChordLabel {
	res := idx.Values()
	sort.SliceStable(res, func(i, j int) bool {
		return interval.CompareSets(res[i].Set, res[j].Set) < 0
	})
	return res
}
