package interval

import "math/bits"

const pitchClassMask = 1<<SemitonesPerOctave - 1

// SemitoneSet is a bitmask of pitch classes; bit n is set when some member
// reduces to n semitones mod 12.
type SemitoneSet uint16

func pitchClass(semitones int) int {
	return ((semitones % SemitonesPerOctave) + SemitonesPerOctave) % SemitonesPerOctave
}

func NewSemitoneSet(semitones ...int) SemitoneSet {
	var s SemitoneSet
	for _, v := range semitones {
		s |= 1 << pitchClass(v)
	}
	return s
}

func (s SemitoneSet) Contains(other SemitoneSet) bool {
	return s&other == other
}

func (s SemitoneSet) Has(semitones int) bool {
	return s&(1<<pitchClass(semitones)) != 0
}

// Transpose rotates every pitch class up by n semitones.
func (s SemitoneSet) Transpose(n int) SemitoneSet {
	n = pitchClass(n)
	wide := uint32(s) << n
	return SemitoneSet((wide | wide>>SemitonesPerOctave) & pitchClassMask)
}

func (s SemitoneSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

func (s SemitoneSet) Semitones() []int {
	var res []int
	for i := 0; i < SemitonesPerOctave; i++ {
		if s.Has(i) {
			res = append(res, i)
		}
	}
	return res
}
