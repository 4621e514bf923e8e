package geom

// Orientation is an ordered cell list representing one rigid pose of a
// piece, prior to normalisation.
type Orientation []Coord

func rotateAll(cs Orientation, f func(Coord) Coord) Orientation {
	out := make(Orientation, len(cs))
	for i, c := range cs {
		out[i] = f(c)
	}
	return out
}

// RotateX applies Rx to every coordinate.
func RotateX(cs Orientation) Orientation { return rotateAll(cs, Coord.rotateX) }

// RotateY applies Ry to every coordinate.
func RotateY(cs Orientation) Orientation { return rotateAll(cs, Coord.rotateY) }

// RotateZ applies Rz to every coordinate.
func RotateZ(cs Orientation) Orientation { return rotateAll(cs, Coord.rotateZ) }

// Normalise translates the orientation so min(x)=min(y)=min(z)=0.
func (o Orientation) Normalise() Orientation { return Orientation(Normalise(o)) }

// Bitboard realises the orientation against a cuboid dimension, assuming it
// has already been translated in-bounds.
func (o Orientation) Bitboard(d Dim) Bitboard { return FromCoords(d, o) }

// Bounds returns the per-axis maximum coordinate of the orientation.
func (o Orientation) Bounds() Coord { return CoordsBounds(o) }

// AllRotations generates the 24 proper rotations of the cube applied to a
// base orientation, following the same generation order as the reference
// solver: four x-axis turns, each followed by one of six reorienting turns
// (identity, y at +-90deg, z at 90/180/270deg). This walks the rotation
// group exhaustively; pieces with internal symmetry produce repeated
// entries, which callers remove after normalising.
func AllRotations(base Orientation) []Orientation {
	rotations := make([]Orientation, 0, 24)
	current := base
	for i := 0; i < 4; i++ {
		rotations = append(rotations, current)
		rotations = append(rotations, RotateY(current))
		rotations = append(rotations, RotateY(RotateY(RotateY(current))))
		rotations = append(rotations, RotateZ(current))
		rotations = append(rotations, RotateZ(RotateZ(current)))
		rotations = append(rotations, RotateZ(RotateZ(RotateZ(current))))
		current = RotateX(current)
	}
	return rotations
}

// UniqueOrientations normalises every rotation of base and deduplicates by
// shape, returning the distinct orientations a piece can take. The number
// of results divides 24; a piece with richer self-symmetry (e.g. a 2x2x2
// block) yields fewer.
func UniqueOrientations(base Orientation) []Orientation {
	rotations := AllRotations(base)
	out := make([]Orientation, 0, len(rotations))
	keys := make(map[string]struct{}, len(rotations))
	for _, r := range rotations {
		n := r.Normalise()
		k := orientationKey(n)
		if _, dup := keys[k]; dup {
			continue
		}
		keys[k] = struct{}{}
		out = append(out, n)
	}
	return out
}

// orientationKey produces a stable, order-independent key for an
// already-normalised orientation so equal shapes compare equal regardless
// of how their cells were enumerated.
func orientationKey(o Orientation) string {
	buf := make([]byte, 0, len(o)*3)
	for _, c := range sortedCoords(o) {
		buf = append(buf, byte(c.X), byte(c.Y), byte(c.Z))
	}
	return string(buf)
}

func sortedCoords(o Orientation) Orientation {
	out := make(Orientation, len(o))
	copy(out, o)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b Coord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
