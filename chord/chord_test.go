package chord

import (
	"bytes"
	"testing"

	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func labels(t *testing.T) *chordlabel.Index {
	t.Helper()
	idx, err := chordlabel.Build(interval.NewCanonicalIndex(), chordlabel.Templates)
	require.NoError(t, err)
	return idx
}

func mustChord(t *testing.T, idx *chordlabel.Index, root, label string) Chord {
	t.Helper()
	l, err := idx.Get(label)
	require.NoError(t, err)
	c, err := New(note.MustNew(root, 0), l)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := mustChord(t, labels(t), "C", "m7")

	assert := assert.New(t)
	assert.Equal("Cm7", c.Name())
	assert.Equal("Cm7 (C, Eb, G, Bb)", c.String())
	assert.Len(c.Notes, 4)
}

func TestNewSpellsAboveTheOctave(t *testing.T) {
	c := mustChord(t, labels(t), "D", "9")
	assert.Equal(t, "D9 (D, F#, A, C, E↑)", c.String())
}

func TestNewFailsOnUnreachableNote(t *testing.T) {
	idx := labels(t)
	l, err := idx.Get("#9")
	require.NoError(t, err)

	_, err = New(note.MustNew("D#", 0), l)
	assert.ErrorIs(t, err, note.ErrUnreachable)
}

func TestKeys(t *testing.T) {
	idx := labels(t)
	assert := assert.New(t)

	cases := []struct {
		root, label string
		want        []uint8
	}{
		{"C", "", []uint8{60, 64, 67}},
		{"D", "9", []uint8{62, 66, 69, 72, 76}},
		{"Bb", "m", []uint8{70, 73, 77}},
	}
	for _, tc := range cases {
		keys, err := mustChord(t, idx, tc.root, tc.label).Keys(60)
		if assert.NoError(err, tc.root+tc.label) {
			assert.Equal(tc.want, keys, tc.root+tc.label)
		}
	}
}

func TestKeysAboveRangeFail(t *testing.T) {
	idx := labels(t)

	// C9 at 120: 120, 124, 127 fit, the b7 and 9 do not
	keys, err := mustChord(t, idx, "C", "9").Keys(120)
	assert.ErrorIs(t, err, note.ErrKeyOutOfRange)
	assert.Nil(t, keys)

	keys, err = mustChord(t, idx, "C", "").Keys(120)
	assert.NoError(t, err)
	assert.Equal(t, []uint8{120, 124, 127}, keys)
}

func TestCreateChordKey(t *testing.T) {
	assert.Equal(t, "60-64-67", CreateChordKey([]uint8{67, 60, 64}))
	assert.Equal(t, "", CreateChordKey(nil))
}

func TestIdentify(t *testing.T) {
	idx := labels(t)
	assert := assert.New(t)

	matches := Identify(idx, []uint8{60, 64, 67})
	require.NotEmpty(t, matches)
	assert.Equal("C", matches[0].Name())
	assert.False(matches[0].Inversion)

	matches = Identify(idx, []uint8{64, 67, 72})
	require.NotEmpty(t, matches)
	assert.Equal("C", matches[0].Name())
	assert.True(matches[0].Inversion)

	matches = Identify(idx, []uint8{57, 60, 64, 67})
	require.NotEmpty(t, matches)
	assert.Equal("Am7", matches[0].Name())

	assert.Empty(Identify(idx, nil))
}

func TestGetChords(t *testing.T) {
	s := smf.New()
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(0, midi.NoteOn(0, 67, 100))
	tr.Add(960, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 67))
	tr.Add(0, midi.NoteOn(0, 62, 100))
	// a note on with velocity 0 releases the key
	tr.Add(960, midi.NoteOn(0, 62, 0))
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	read, err := smf.ReadFrom(&buf)
	require.NoError(t, err)

	voicings, err := GetChords(read)
	require.NoError(t, err)
	require.Len(t, voicings, 2)

	assert := assert.New(t)
	assert.Equal([]uint8{60, 64, 67}, voicings[0].Notes)
	assert.Equal([]uint8{62}, voicings[1].Notes)
	assert.Less(voicings[0].Offset, voicings[1].Offset)
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "C", KeyName(60))
	assert.Equal(t, "C#", KeyName(61))
	assert.Equal(t, "B", KeyName(71))
}
