package piece

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/polycube/internal/geom"
)

func mustDim(t *testing.T, x, y, z int) geom.Dim {
	t.Helper()
	d, err := geom.NewDim(x, y, z)
	require.NoError(t, err)
	return d
}

func TestNewRejectsEmptyCellList(t *testing.T) {
	_, err := New("empty", 'X', nil, mustDim(t, 4, 4, 4))
	assert.Error(t, err)
}

func TestNewRejectsDuplicateCells(t *testing.T) {
	cells := []geom.Coord{{0, 0, 0}, {0, 0, 0}}
	_, err := New("dup", 'X', cells, mustDim(t, 4, 4, 4))
	assert.Error(t, err)
}

func TestNewRejectsPieceThatNeverFits(t *testing.T) {
	// a straight pentacube has no orientation that fits inside a 4x4x4 box
	cells := []geom.Coord{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}}
	_, err := New("toolong", 'X', cells, mustDim(t, 4, 4, 4))
	assert.Error(t, err)
}

func TestNewUnitCube(t *testing.T) {
	p, err := New("unit", 'A', []geom.Coord{{0, 0, 0}}, mustDim(t, 4, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, p.CellCount)
	// a unit cube has exactly 64 distinct single-cell placements in a 4x4x4 box
	assert.Len(t, p.Placements, 64)
	for _, pl := range p.Placements {
		assert.Equal(t, 1, pl.PopCount())
	}
}

func TestNewStraightTetracube(t *testing.T) {
	cells := []geom.Coord{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	p, err := New("straight-four", 'I', cells, mustDim(t, 4, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, p.CellCount)
	for _, pl := range p.Placements {
		assert.Equal(t, 4, pl.PopCount())
	}
	// every placement must be unique
	seen := make(map[geom.Bitboard]struct{})
	for _, pl := range p.Placements {
		_, dup := seen[pl]
		assert.False(t, dup, "duplicate placement in piece:\n%s", spew.Sdump(p))
		seen[pl] = struct{}{}
	}
}

func TestNewNormalisesBaseToOrigin(t *testing.T) {
	cells := []geom.Coord{{2, 3, 1}, {3, 3, 1}, {2, 4, 1}}
	p, err := New("flat-ell", 'X', cells, mustDim(t, 4, 4, 4))
	require.NoError(t, err)
	bounds := geom.CoordsBounds(p.Base)
	assert.Equal(t, 0, minCoordComponent(p.Base), "base orientation not normalised to the origin:\n%s", spew.Sdump(p.Base))
	assert.True(t, bounds.X >= 0 && bounds.Y >= 0 && bounds.Z >= 0)
}

func minCoordComponent(o geom.Orientation) int {
	min := o[0].X
	for _, c := range o {
		for _, v := range [3]int{c.X, c.Y, c.Z} {
			if v < min {
				min = v
			}
		}
	}
	return min
}
