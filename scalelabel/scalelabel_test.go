package scalelabel

import (
	"testing"

	"github.com/jsphweid/chordex/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T) *Index {
	t.Helper()
	idx, err := Build(interval.NewCanonicalIndex(), Templates)
	require.NoError(t, err)
	return idx
}

func TestBuild(t *testing.T) {
	idx := build(t)
	assert := assert.New(t)

	assert.Equal(10, idx.Len())
	assert.Equal("lydian", idx.Names()[0])

	dorian, err := idx.Get("dorian")
	require.NoError(t, err)
	assert.Equal("1,2,b3,4,5,6,b7", dorian.Key())
	assert.Equal("dorian (1, 2, b3, 4, 5, 6, b7)", dorian.String())

	_, err = idx.Get("bebop")
	assert.ErrorIs(err, ErrUnknownScaleLabel)
}

func TestAddRejectsDuplicates(t *testing.T) {
	idx := build(t)
	err := idx.Add(New("dorian", interval.New(1, 0)))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestExtended(t *testing.T) {
	idx := build(t)
	assert := assert.New(t)

	ionian, err := idx.Get("ionian")
	require.NoError(t, err)
	ext := ionian.Extended()
	assert.Equal("ionian", ext.Name())
	assert.Equal("1,2,3,4,5,6,7,8,9,10,11", ext.Key())
	assert.Equal(ionian.Semitones(), ext.Semitones())

	pentatonic, err := idx.Get("minor pentatonic")
	require.NoError(t, err)
	assert.Equal("1,b3,4,5,b7,8,b10,11", pentatonic.Extended().Key())

	// the receiver is untouched
	assert.Equal(7, ionian.Len())
}

func TestRelativeTo(t *testing.T) {
	idx := build(t)
	ionian, err := idx.Get("ionian")
	require.NoError(t, err)
	dorian, err := idx.Get("dorian")
	require.NoError(t, err)

	assert.Equal(t, dorian.Key(), ionian.RelativeTo(interval.New(2, 0)).Key())
	assert.Equal(t, "ionian/2", ionian.RelativeTo(interval.New(2, 0)).Name())
}

func TestContainsChords(t *testing.T) {
	intervals := interval.NewCanonicalIndex()
	idx := build(t)
	mixolydian, err := idx.Get("mixolydian")
	require.NoError(t, err)

	assert.True(t, mixolydian.ContainsEnharmonics(intervals.MustParseSet("1", "3", "5", "b7", "9", "11")))
	assert.False(t, mixolydian.ContainsEnharmonics(intervals.MustParseSet("1", "3", "5", "7")))
}

func TestByName(t *testing.T) {
	idx := build(t)

	s, ok := idx.ByName("locrian")
	assert.True(t, ok)
	assert.Equal(t, "locrian", s.Name())

	s, ok = idx.ByName("bebop")
	assert.False(t, ok)
	assert.Nil(t, s)
}
