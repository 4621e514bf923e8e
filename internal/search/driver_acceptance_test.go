package search_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/polycube/internal/geom"
	"github.com/fkopp/polycube/internal/ioformat"
	"github.com/fkopp/polycube/internal/puzzle"
	"github.com/fkopp/polycube/internal/search"
)

// TestDriverSolvesFullCube runs the full 4x4x4 thirteen-piece puzzle to
// exhaustion. It and TestDriverSeedCornersAgreesOnFullCube are the two
// scenarios in this package expensive enough to skip under -short.
func TestDriverSolvesFullCube(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 4x4x4 search is slow, skipping under -short")
	}

	dim, err := ioformat.ParseDim("4x4x4")
	require.NoError(t, err)

	f, err := os.Open("../../testdata/bedlam_pieces.csv")
	require.NoError(t, err)
	defer f.Close()

	defs, err := ioformat.ParsePieces(f)
	require.NoError(t, err)

	pz, err := puzzle.New(dim, defs)
	require.NoError(t, err)

	params := search.DefaultParams()
	d := search.New(pz, params)

	var count int
	stats, err := d.Run(context.Background(), func(arr *search.Arrangement) {
		count++
		var union geom.Bitboard
		for _, mv := range arr.Stack {
			assert.True(t, union.Disjoint(mv.Placement))
			union = union.Union(mv.Placement)
		}
		assert.Equal(t, geom.Full(dim), union)
	})
	require.NoError(t, err)

	assert.Greater(t, stats.SolutionsFound, uint64(0))
	assert.EqualValues(t, stats.SolutionsFound, count)
}

// TestDriverSeedCornersAgreesOnFullCube cross-checks the corner-seeding
// fast path against plain first-empty-cell search on a puzzle large
// enough to exercise every corner, confirming the search-order change
// does not alter the solution count.
func TestDriverSeedCornersAgreesOnFullCube(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 4x4x4 search is slow, skipping under -short")
	}

	dim, err := ioformat.ParseDim("4x4x4")
	require.NoError(t, err)

	f, err := os.Open("../../testdata/bedlam_pieces.csv")
	require.NoError(t, err)
	defer f.Close()

	defs, err := ioformat.ParsePieces(f)
	require.NoError(t, err)

	pz, err := puzzle.New(dim, defs)
	require.NoError(t, err)

	withCorners := search.DefaultParams()
	withCorners.SeedCorners = true
	statsOn, err := search.New(pz, withCorners).Run(context.Background(), nil)
	require.NoError(t, err)

	withoutCorners := search.DefaultParams()
	withoutCorners.SeedCorners = false
	statsOff, err := search.New(pz, withoutCorners).Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, statsOn.SolutionsFound, statsOff.SolutionsFound)
}
