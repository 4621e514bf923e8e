package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllRotationsCount(t *testing.T) {
	base := Orientation{{0, 0, 0}, {1, 0, 0}}
	assert.Len(t, AllRotations(base), 24)
}

func TestUniqueOrientationsAsymmetricPiece(t *testing.T) {
	// An L-tetracube with no internal symmetry has 24 distinct orientations.
	base := Orientation{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}, {1, 0, 0}}
	assert.Len(t, UniqueOrientations(base), 24)
}

func TestUniqueOrientationsCubeHasOne(t *testing.T) {
	// A single unit cube is invariant under every rotation.
	base := Orientation{{0, 0, 0}}
	assert.Len(t, UniqueOrientations(base), 1)
}

func TestUniqueOrientationsTwoByTwoByTwoBlock(t *testing.T) {
	// A 2x2x2 block is invariant under the full rotation group.
	var base Orientation
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				base = append(base, Coord{X: x, Y: y, Z: z})
			}
		}
	}
	assert.Len(t, UniqueOrientations(base), 1)
}

func TestNormaliseAfterRotationHasNonNegativeCoords(t *testing.T) {
	base := Orientation{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	for _, r := range AllRotations(base) {
		n := r.Normalise()
		for _, c := range n {
			assert.GreaterOrEqual(t, c.X, 0)
			assert.GreaterOrEqual(t, c.Y, 0)
			assert.GreaterOrEqual(t, c.Z, 0)
		}
	}
}
