package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DegreesPerOctave   = 7
	SemitonesPerOctave = 12
)

var ErrInvalidSymbol = errors.New("invalid interval symbol")

var majorScaleSemitones = [DegreesPerOctave]int{0, 2, 4, 5, 7, 9, 11}

// Interval is a distance from a reference note, expressed as a degree of the
// major scale plus a chromatic alteration.
type Interval struct {
	degree int
	rel    int
}

func New(degree int, rel int) Interval {
	if degree < 1 {
		panic(fmt.Sprintf("Could not create interval with major scale degree %v", degree))
	}
	return Interval{degree: degree, rel: rel}
}

// Parse reads symbols such as "1", "b3", "#11" or "bb7".
func Parse(symbol string) (Interval, error) {
	digits := strings.TrimLeft(symbol, "b#")
	accidentals := symbol[:len(symbol)-len(digits)]
	if strings.Contains(accidentals, "b") && strings.Contains(accidentals, "#") {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	degree, err := strconv.Atoi(digits)
	if err != nil || degree < 1 || strconv.Itoa(degree) != digits {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	rel := strings.Count(accidentals, "#") - strings.Count(accidentals, "b")
	return New(degree, rel), nil
}

func MustParse(symbol string) Interval {
	i, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return i
}

func diatonicSemitones(degree int) int {
	octave := (degree - 1) / DegreesPerOctave
	return majorScaleSemitones[(degree-1)%DegreesPerOctave] + SemitonesPerOctave*octave
}

// halfStepBelow reports whether the degree sits a half step above the one
// before it (3->4 and 7->8, repeating every octave).
func halfStepBelow(degree int) bool {
	if degree <= 1 {
		return false
	}
	d := (degree - 1) % DegreesPerOctave
	return d == 3 || d == 0
}

func (i Interval) Degree() int {
	return i.degree
}

func (i Interval) RelSemitones() int {
	return i.rel
}

func (i Interval) Semitones() int {
	return diatonicSemitones(i.degree) + i.rel
}

func (i Interval) Name() string {
	var accidentals string
	if i.rel < 0 {
		accidentals = strings.Repeat("b", -i.rel)
	} else if i.rel > 0 {
		accidentals = strings.Repeat("#", i.rel)
	}
	return accidentals + strconv.Itoa(i.degree)
}

func (i Interval) String() string {
	return i.Name()
}

// Compare orders by semitones, then by name.
func Compare(a, b Interval) int {
	if a.Semitones() != b.Semitones() {
		if a.Semitones() < b.Semitones() {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name(), b.Name())
}

func Less(a, b Interval) bool {
	return Compare(a, b) < 0
}

// Sub returns the interval from `from` up to i. from must not sit on a
// higher degree than i.
func (i Interval) Sub(from Interval) Interval {
	if from.degree > i.degree {
		panic(fmt.Sprintf("Could not subtract %v from %v: degree is higher", from, i))
	}

	degree := 1
	rel := 0
	for d := from.degree + 1; d <= i.degree; d++ {
		if halfStepBelow(d) {
			rel--
		}
		degree++
		if halfStepBelow(degree) {
			rel++
		}
	}

	rel += i.rel - from.rel
	return New(degree, rel)
}

// Add stacks d on top of i.
func (i Interval) Add(d Interval) Interval {
	degree := i.degree + d.degree - 1
	rel := i.Semitones() + d.Semitones() - diatonicSemitones(degree)
	return New(degree, rel)
}

func (i Interval) UpOctave() Interval {
	return New(i.degree+DegreesPerOctave, i.rel)
}

func (i Interval) DownOctave() Interval {
	return New(i.degree-DegreesPerOctave, i.rel)
}

// NormalizeOctave moves the interval into the first octave (degrees 1..7)
// and returns how many octaves it was moved down.
func (i Interval) NormalizeOctave() (Interval, int) {
	degree := i.degree
	octaves := 0
	for degree > DegreesPerOctave {
		degree -= DegreesPerOctave
		octaves++
	}
	return New(degree, i.rel), octaves
}
