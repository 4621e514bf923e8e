package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFull(t *testing.T) {
	d, err := NewDim(4, 4, 4)
	require.NoError(t, err)
	f := Full(d)
	assert.Equal(t, 64, f.PopCount())

	d2, err := NewDim(2, 2, 2)
	require.NoError(t, err)
	f2 := Full(d2)
	assert.Equal(t, 8, f2.PopCount())
	assert.False(t, f2.Test(8))
}

func TestFromCoordAndTest(t *testing.T) {
	d, err := NewDim(4, 4, 4)
	require.NoError(t, err)
	b := FromCoord(d, Coord{X: 1, Y: 0, Z: 0})
	assert.True(t, b.Test(1))
	assert.False(t, b.Test(0))
}

func TestUnionIntersectDisjoint(t *testing.T) {
	d, err := NewDim(4, 4, 4)
	require.NoError(t, err)
	a := FromCoords(d, []Coord{{0, 0, 0}, {1, 0, 0}})
	b := FromCoords(d, []Coord{{1, 0, 0}, {2, 0, 0}})

	assert.Equal(t, 3, a.Union(b).PopCount())
	assert.Equal(t, 1, a.Intersect(b).PopCount())
	assert.False(t, a.Disjoint(b))

	c := FromCoords(d, []Coord{{3, 0, 0}})
	assert.True(t, a.Disjoint(c))
}

func TestPopCount(t *testing.T) {
	var b Bitboard = 0b1011
	assert.Equal(t, 3, b.PopCount())
}

func TestFirstUnset(t *testing.T) {
	d, err := NewDim(4, 4, 4)
	require.NoError(t, err)
	var b Bitboard
	assert.Equal(t, 0, b.FirstUnset(d.Cells()))

	b = FromCoords(d, []Coord{{0, 0, 0}, {1, 0, 0}})
	assert.Equal(t, 2, b.FirstUnset(d.Cells()))

	full := Full(d)
	assert.Equal(t, d.Cells(), full.FirstUnset(d.Cells()))
}

func TestFirstUnsetFrom(t *testing.T) {
	d, err := NewDim(4, 4, 4)
	require.NoError(t, err)
	b := FromCoords(d, []Coord{{0, 0, 0}, {1, 0, 0}})
	// starting the scan past the already-filled prefix should not revisit it
	assert.Equal(t, 2, b.FirstUnsetFrom(0, d.Cells()))
	assert.Equal(t, 2, b.FirstUnsetFrom(2, d.Cells()))
	assert.Equal(t, d.Cells(), b.FirstUnsetFrom(d.Cells(), d.Cells()))
}

func TestBitboardString(t *testing.T) {
	var b Bitboard = 1
	s := b.String()
	assert.Equal(t, byte('X'), s[0])
	assert.Equal(t, byte('.'), s[1])
	assert.Len(t, s, 64)
}
