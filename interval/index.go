package interval

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownInterval   = errors.New("unknown interval")
	ErrDuplicateInterval = errors.New("duplicate interval")
)

var canonicalSymbols = []string{
	"1",
	"b2", "2",
	"b3", "3",
	"4", "#4",
	"b5", "5", "#5",
	"b6", "6",
	"b7", "7",
	"8",
	"b9", "9", "#9",
	"b10", "10",
	"b11", "11", "#11",
}

// Canonical returns the intervals every registry is built from, in table order.
func Canonical() []Interval {
	res := make([]Interval, 0, len(canonicalSymbols))
	for _, s := range canonicalSymbols {
		res = append(res, MustParse(s))
	}
	return res
}

// Index looks canonical intervals up by symbol.
type Index struct {
	values []Interval
	byName map[string]Interval
}

func NewIndex(values []Interval) (*Index, error) {
	idx := &Index{byName: make(map[string]Interval)}
	for _, v := range values {
		if _, ok := idx.byName[v.Name()]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateInterval, v)
		}
		idx.byName[v.Name()] = v
		idx.values = append(idx.values, v)
	}
	return idx, nil
}

func NewCanonicalIndex() *Index {
	idx, err := NewIndex(Canonical())
	if err != nil {
		panic("Could not build canonical interval index: " + err.Error())
	}
	return idx
}

// Get looks an interval up by symbol. Lookup checks an Interval value
// instead.
func (idx *Index) Get(symbol string) (Interval, error) {
	i, ok := idx.byName[symbol]
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q", ErrUnknownInterval, symbol)
	}
	return i, nil
}

// Lookup returns i when the index holds it, so an interval already in hand
// goes through the same check as a symbol.
func (idx *Index) Lookup(i Interval) (Interval, error) {
	return idx.Get(i.Name())
}

func (idx *Index) MustGet(symbol string) Interval {
	i, err := idx.Get(symbol)
	if err != nil {
		panic(err)
	}
	return i
}

func (idx *Index) GetAll(symbols ...string) ([]Interval, error) {
	res := make([]Interval, 0, len(symbols))
	for _, s := range symbols {
		i, err := idx.Get(s)
		if err != nil {
			return nil, err
		}
		res = append(res, i)
	}
	return res, nil
}

// ParseSet builds a Set from canonical symbols.
func (idx *Index) ParseSet(symbols ...string) (Set, error) {
	intervals, err := idx.GetAll(symbols...)
	if err != nil {
		return Set{}, err
	}
	return NewSet(intervals...), nil
}

func (idx *Index) MustParseSet(symbols ...string) Set {
	s, err := idx.ParseSet(symbols...)
	if err != nil {
		panic(err)
	}
	return s
}

func (idx *Index) Values() []Interval {
	res := make([]Interval, len(idx.values))
	copy(res, idx.values)
	return res
}

func (idx *Index) Len() int {
	return len(idx.values)
}
