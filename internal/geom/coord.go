package geom

// Coord is a signed 3-D coordinate. Signed because intermediate rotations
// produce negative values before normalisation.
type Coord struct {
	X, Y, Z int
}

// Add returns the coordinate offset by the given translation.
func (c Coord) Add(t Coord) Coord {
	return Coord{c.X + t.X, c.Y + t.Y, c.Z + t.Z}
}

// rotateX applies the Rx matrix: (x,y,z) -> (x,-z,y).
func (c Coord) rotateX() Coord {
	return Coord{c.X, -c.Z, c.Y}
}

// rotateY applies the Ry matrix: (x,y,z) -> (z,y,-x).
func (c Coord) rotateY() Coord {
	return Coord{c.Z, c.Y, -c.X}
}

// rotateZ applies the Rz matrix: (x,y,z) -> (-y,x,z).
func (c Coord) rotateZ() Coord {
	return Coord{-c.Y, c.X, c.Z}
}

// CoordsBounds returns the per-axis maximum across a list of coordinates.
// Callers must ensure the list is non-empty.
func CoordsBounds(cs []Coord) Coord {
	max := cs[0]
	for _, c := range cs[1:] {
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	return max
}

// Normalise translates cs so that min(x)=min(y)=min(z)=0, returning a new
// slice. The input is not mutated.
func Normalise(cs []Coord) []Coord {
	minC := cs[0]
	for _, c := range cs[1:] {
		if c.X < minC.X {
			minC.X = c.X
		}
		if c.Y < minC.Y {
			minC.Y = c.Y
		}
		if c.Z < minC.Z {
			minC.Z = c.Z
		}
	}
	out := make([]Coord, len(cs))
	for i, c := range cs {
		out[i] = Coord{c.X - minC.X, c.Y - minC.Y, c.Z - minC.Z}
	}
	return out
}
