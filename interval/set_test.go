package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexGet(t *testing.T) {
	idx := NewCanonicalIndex()
	assert := assert.New(t)

	assert.Equal(23, idx.Len())
	i, err := idx.Get("b7")
	require.NoError(t, err)
	assert.Equal(New(7, -1), i)

	_, err = idx.Get("13")
	assert.ErrorIs(err, ErrUnknownInterval)

	_, err = idx.ParseSet("1", "3", "bogus")
	assert.ErrorIs(err, ErrUnknownInterval)
}

func TestIndexLookup(t *testing.T) {
	idx := NewCanonicalIndex()

	for _, i := range idx.Values() {
		got, err := idx.Lookup(i)
		require.NoError(t, err)
		assert.Equal(t, i, got)

		bySymbol, err := idx.Get(i.Name())
		require.NoError(t, err)
		assert.Equal(t, bySymbol, got)
	}

	_, err := idx.Lookup(New(13, 0))
	assert.ErrorIs(t, err, ErrUnknownInterval)
}

func TestNewIndexRejectsDuplicates(t *testing.T) {
	_, err := NewIndex([]Interval{New(3, 0), New(3, 0)})
	assert.ErrorIs(t, err, ErrDuplicateInterval)
}

func TestSetSortsAndKeepsDuplicates(t *testing.T) {
	idx := NewCanonicalIndex()
	s := idx.MustParseSet("b7", "5", "1", "3", "5")

	assert := assert.New(t)
	assert.Equal("1,3,5,5,b7", s.Key())
	assert.Equal("(1, 3, 5, 5, b7)", s.String())
	assert.Equal(5, s.Len())
	assert.True(s.Has(New(7, -1)))
	assert.False(s.Has(New(7, 0)))
}

func TestSemitoneBitmaskIsPitchClass(t *testing.T) {
	idx := NewCanonicalIndex()
	assert := assert.New(t)

	// 9 and 2 share a pitch class
	assert.Equal(idx.MustParseSet("1", "2").Semitones(), idx.MustParseSet("1", "9").Semitones())
	assert.Equal([]int{0, 4, 7, 10}, idx.MustParseSet("1", "3", "5", "b7").Semitones().Semitones())
}

func TestContainsEnharmonics(t *testing.T) {
	idx := NewCanonicalIndex()
	dorian := idx.MustParseSet("1", "2", "b3", "4", "5", "6", "b7")
	assert := assert.New(t)

	assert.True(dorian.ContainsEnharmonics(dorian))
	assert.True(dorian.ContainsEnharmonics(idx.MustParseSet("1", "b3", "5", "b7", "9", "11")))
	assert.False(dorian.ContainsEnharmonics(idx.MustParseSet("1", "3", "5")))
	// #9 is enharmonic to b3
	assert.True(dorian.ContainsEnharmonics(idx.MustParseSet("1", "#9")))
}

func TestContainsEnharmonicsIsAntitonic(t *testing.T) {
	idx := NewCanonicalIndex()
	scale := idx.MustParseSet("1", "2", "3", "4", "5", "6", "b7")
	chord := idx.MustParseSet("1", "3", "5", "b7", "9")
	require.True(t, scale.ContainsEnharmonics(chord))

	for _, i := range chord.Intervals() {
		smaller, ok := chord.Without(i)
		require.True(t, ok)
		assert.True(t, scale.ContainsEnharmonics(smaller), "without %v", i)
	}
}

func TestWithout(t *testing.T) {
	idx := NewCanonicalIndex()
	s := idx.MustParseSet("1", "b3", "5", "b7")
	assert := assert.New(t)

	res, ok := s.Without(New(3, -1), New(5, 0))
	assert.True(ok)
	assert.Equal("1,b7", res.Key())

	res, ok = s.Without(New(3, -1), New(3, 0))
	assert.False(ok)
	assert.Equal(s.Key(), res.Key())
}

func TestReplaceResorts(t *testing.T) {
	idx := NewCanonicalIndex()
	s := idx.MustParseSet("1", "3", "5", "b7")

	res, ok := s.Replace(New(3, 0), New(3, -1))
	assert.True(t, ok)
	assert.Equal(t, "1,b3,5,b7", res.Key())

	_, ok = s.Replace(New(7, 0), New(7, -1))
	assert.False(t, ok)
}

func TestRelativeTo(t *testing.T) {
	idx := NewCanonicalIndex()
	ionian := idx.MustParseSet("1", "2", "3", "4", "5", "6", "7")

	assert := assert.New(t)
	assert.Equal("1,2,b3,4,5,6,b7", ionian.RelativeTo(New(2, 0)).Key())
	assert.Equal("1,2,3,#4,5,6,7", ionian.RelativeTo(New(4, 0)).Key())
	assert.Equal("1,b2,b3,4,b5,b6,b7", ionian.RelativeTo(New(7, 0)).Key())
	// roots above the first octave are normalized first
	assert.Equal("1,2,b3,4,5,6,b7", ionian.RelativeTo(New(9, 0)).Key())
}

func TestNormalizeOctaveSet(t *testing.T) {
	idx := NewCanonicalIndex()
	s := idx.MustParseSet("1", "3", "b7", "9", "#11")
	assert.Equal(t, "1,2,3,#4,b7", s.NormalizeOctave().Key())
}

func TestCompareSets(t *testing.T) {
	idx := NewCanonicalIndex()
	assert := assert.New(t)

	assert.Equal(-1, CompareSets(idx.MustParseSet("1", "3"), idx.MustParseSet("1", "3", "5")))
	assert.Equal(-1, CompareSets(idx.MustParseSet("1", "b3", "5"), idx.MustParseSet("1", "3")))
	assert.Equal(0, CompareSets(idx.MustParseSet("5", "1"), idx.MustParseSet("1", "5")))
}

func TestSemitoneSetTranspose(t *testing.T) {
	s := NewSemitoneSet(0, 4, 7)
	assert := assert.New(t)

	assert.Equal(NewSemitoneSet(2, 6, 9), s.Transpose(2))
	assert.Equal(NewSemitoneSet(11, 3, 6), s.Transpose(-1))
	assert.Equal(NewSemitoneSet(8, 0, 3), s.Transpose(8))
	assert.Equal(3, s.Len())
	assert.True(s.Has(16))
}
