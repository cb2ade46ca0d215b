package note

import (
	"testing"

	"github.com/jsphweid/chordex/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var majorScaleSemitones = []int{0, 2, 4, 5, 7, 9, 11}

func TestAddPerfectFifth(t *testing.T) {
	n, err := MustNew("C", 0).Add(interval.New(5, 0))
	require.NoError(t, err)
	assert.Equal(t, MustNew("G", 0), n)
}

func TestAddMinorSeventh(t *testing.T) {
	n, err := MustNew("C", 0).Add(interval.New(7, -1))
	require.NoError(t, err)
	assert.Equal(t, MustNew("Bb", 0), n)
}

func TestAdd(t *testing.T) {
	cases := []struct {
		root     string
		interval string
		want     string
		octave   int
	}{
		{"A", "b3", "C", 0},
		{"A", "3", "C#", 0},
		{"Bb", "#4", "E", 0},
		{"F#", "7", "E#", 0},
		{"Db", "b6", "Bbb", 0},
		{"G#", "7", "F##", 0},
		{"C", "9", "D", 1},
		{"E", "#11", "A#", 1},
		{"Eb", "b9", "Fb", 1},
		{"A#", "#4", "D##", 0},
		{"Gb", "4", "Cb", 0},
	}

	for _, tc := range cases {
		t.Run(tc.root+" + "+tc.interval, func(t *testing.T) {
			n, err := MustNew(tc.root, 0).Add(interval.MustParse(tc.interval))
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Name())
			assert.Equal(t, tc.octave, n.RelOctave())
		})
	}
}

func TestAddRejectsAbominations(t *testing.T) {
	cases := []struct {
		root     string
		interval string
	}{
		{"D#", "#9"},
		{"A#", "#5"},
		{"A#", "#9"},
	}

	for _, tc := range cases {
		t.Run(tc.root+" + "+tc.interval, func(t *testing.T) {
			_, err := MustNew(tc.root, 0).Add(interval.MustParse(tc.interval))
			assert.ErrorIs(t, err, ErrUnreachable)
		})
	}

	// one level of doubling is still fine
	n, err := MustNew("C#", 0).Add(interval.MustParse("#9"))
	require.NoError(t, err)
	assert.Equal(t, "D##", n.Name())
}

func TestAddRejectsNonRoots(t *testing.T) {
	for _, name := range []string{"B#", "Fb", "C##", "Ebb"} {
		_, err := MustNew(name, 0).Add(interval.New(3, 0))
		assert.ErrorIs(t, err, ErrUnsupportedRoot, name)
	}
}

func TestNewRejectsUnreachableNames(t *testing.T) {
	for _, name := range []string{"E##", "Cbb", "H", "C###", ""} {
		_, err := New(name, 0)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestRoots(t *testing.T) {
	roots := Roots()
	assert.Len(t, roots, 17)
	assert.Equal(t, "A", roots[0].Name())
	assert.Equal(t, "Gb", roots[len(roots)-1].Name())
}

func TestReachableNames(t *testing.T) {
	assert.Len(t, ReachableNames(), 31)
}

// every spelled scale degree must sit at the major scale's pitch class
func TestRelativeNamesSpellMajorScales(t *testing.T) {
	for root, names := range relativeNames {
		base := MustNew(root, 0).PitchClass()
		assert.Equal(t, root, names[0])
		for degree, name := range names {
			require.True(t, IsReachable(name), "%v degree %v: %v", root, degree+1, name)
			want := (base + majorScaleSemitones[degree]) % 12
			assert.Equal(t, want, MustNew(name, 0).PitchClass(), "%v degree %v: %v", root, degree+1, name)
			assert.Equal(t, string("ABCDEFG"[(int(root[0]-'A')+degree)%7]), name[:1])
		}
	}
}

func TestAddKeepsPitchClass(t *testing.T) {
	for _, root := range Roots() {
		for _, i := range interval.Canonical() {
			n, err := root.Add(i)
			if err != nil {
				assert.ErrorIs(t, err, ErrUnreachable)
				continue
			}
			assert.Equal(t, (root.PitchClass()+i.Semitones())%12, n.PitchClass(), "%v + %v = %v", root, i, n)
		}
	}
}

func TestEnharmonics(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"A#", "Bb"}, MustNew("Bb", 0).EnharmonicNames())
	assert.Equal([]string{"B#", "C", "Dbb"}, MustNew("Dbb", 0).EnharmonicNames())

	notes := MustNew("F#", 2).EnharmonicNotes()
	require.Len(t, notes, 2)
	assert.Equal(MustNew("Gb", 2), notes[1])
}

func TestString(t *testing.T) {
	assert.Equal(t, "C", MustNew("C", 0).String())
	assert.Equal(t, "D↑", MustNew("D", 1).String())
	assert.Equal(t, "Bb↓↓", MustNew("Bb", -2).String())
}

func TestForPitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", ForPitchClass(0).Name())
	assert.Equal("C#", ForPitchClass(1).Name())
	assert.Equal("A#", ForPitchClass(10).Name())
	assert.Equal("B", ForPitchClass(-1).Name())
	for pc := 0; pc < 12; pc++ {
		assert.Equal(pc, ForPitchClass(pc).PitchClass())
		assert.True(ForPitchClass(pc).IsRoot())
	}
}

func TestKey(t *testing.T) {
	assert := assert.New(t)

	k, err := MustNew("C", 0).Key(60, interval.MustParse("5"))
	require.NoError(t, err)
	assert.Equal(uint8(67), k)

	k, err = MustNew("Bb", 1).Key(48, interval.MustParse("b3"))
	require.NoError(t, err)
	assert.Equal(uint8(73), k)

	k, err = MustNew("G", 0).Key(120, interval.MustParse("1"))
	require.NoError(t, err)
	assert.Equal(uint8(127), k)

	_, err = MustNew("G#", 0).Key(120, interval.MustParse("1"))
	assert.ErrorIs(err, ErrKeyOutOfRange)
	_, err = MustNew("C", 0).Key(120, interval.MustParse("11"))
	assert.ErrorIs(err, ErrKeyOutOfRange)
}
