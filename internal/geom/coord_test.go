package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordAdd(t *testing.T) {
	c := Coord{X: 1, Y: 2, Z: 3}.Add(Coord{X: 10, Y: 10, Z: 10})
	assert.Equal(t, Coord{X: 11, Y: 12, Z: 13}, c)
}

func TestRotationsHaveOrderFour(t *testing.T) {
	// Four applications of any single-axis rotation must return to the
	// starting coordinate: rotations are elements of a finite group of
	// order 24, so every generator has finite order.
	c := Coord{X: 1, Y: 2, Z: 3}
	x := c
	for i := 0; i < 4; i++ {
		x = x.rotateX()
	}
	assert.Equal(t, c, x)

	y := c
	for i := 0; i < 4; i++ {
		y = y.rotateY()
	}
	assert.Equal(t, c, y)

	z := c
	for i := 0; i < 4; i++ {
		z = z.rotateZ()
	}
	assert.Equal(t, c, z)
}

func TestCoordsBounds(t *testing.T) {
	cs := []Coord{{0, 0, 0}, {3, 1, 2}, {1, 4, 0}}
	assert.Equal(t, Coord{X: 3, Y: 4, Z: 2}, CoordsBounds(cs))
}

func TestNormalise(t *testing.T) {
	cs := []Coord{{2, -1, 5}, {3, 0, 6}, {2, -1, 7}}
	n := Normalise(cs)
	for _, c := range n {
		assert.GreaterOrEqual(t, c.X, 0)
		assert.GreaterOrEqual(t, c.Y, 0)
		assert.GreaterOrEqual(t, c.Z, 0)
	}
	assert.Equal(t, Coord{X: 0, Y: 0, Z: 0}, n[0])
	assert.Equal(t, Coord{X: 1, Y: 1, Z: 1}, n[1])
	assert.Equal(t, Coord{X: 0, Y: 0, Z: 2}, n[2])
}
