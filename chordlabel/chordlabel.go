package chordlabel

import (
	"strings"

	"github.com/jsphweid/chordex/interval"
)

var (
	ninth         = interval.New(9, 0)
	flatNinth     = interval.New(9, -1)
	sharpNinth    = interval.New(9, 1)
	seventh       = interval.New(7, 0)
	flatSeventh   = interval.New(7, -1)
	eleventh      = interval.New(11, 0)
	sharpEleventh = interval.New(11, 1)
)

// ChordLabel is a named set of intervals independent of any root, e.g.
// "m7" = (1, b3, 5, b7).
type ChordLabel struct {
	interval.Set
	name string
}

func New(name string, intervals ...interval.Interval) *ChordLabel {
	return &ChordLabel{Set: interval.NewSet(intervals...), name: name}
}

func (c *ChordLabel) Name() string {
	return c.name
}

func (c *ChordLabel) String() string {
	return c.name + " " + c.Set.String()
}

// ExtendWith returns a new label with ext added, named by ExtendedName.
func (c *ChordLabel) ExtendWith(ext interval.Interval) *ChordLabel {
	return &ChordLabel{
		Set:  c.Set.With(ext),
		name: ExtendedName(c.name, c.Has, ext),
	}
}

// ExtendedName names the chord obtained by adding ext to the chord called
// name, whose intervals are reported by has.
//
// Without a seventh the interval is simply added ("add6"). With a seventh:
//   - a 9th replaces the 7 ("m7" + 9 = "m9"),
//   - an 11th replaces a natural 9 ("m9" + 11 = "m11"),
//   - an 11 on an altered 9th keeps the alteration visible ("7b9" style
//     names become "11(b9)"),
//   - a #11 on any 9th is appended ("b9" + #11 = "b9#11").
//
// The first matching rule wins.
func ExtendedName(name string, has func(interval.Interval) bool, ext interval.Interval) string {
	fallback := name + "add" + ext.Name()
	if !has(flatSeventh) && !has(seventh) {
		return fallback
	}

	switch {
	case strings.Contains(ext.Name(), "9"):
		return strings.ReplaceAll(name, "7", ext.Name())
	case has(ninth) && strings.Contains(ext.Name(), "11"):
		return strings.ReplaceAll(name, "9", ext.Name())
	case ext == eleventh:
		if has(flatNinth) {
			return strings.ReplaceAll(name, "b9", "11(b9)")
		}
		if has(sharpNinth) {
			return strings.ReplaceAll(name, "#9", "11(#9)")
		}
	case ext == sharpEleventh && (has(flatNinth) || has(ninth) || has(sharpNinth)):
		return name + ext.Name()
	}
	return fallback
}
