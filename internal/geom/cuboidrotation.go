package geom

// CuboidRotation is one proper rotation of the whole cuboid, expressed as a
// signed permutation of axes: output axis j takes the value of input axis
// Perm[j], reflected about the cuboid's centre line when Sign[j] is -1.
// This is the form needed by the symmetry-breaker: unlike a
// piece's own rotation (geom.AllRotations, applied to an unbounded local
// orientation and translated into place afterwards), a cuboid rotation must
// map in-bounds coordinates to in-bounds coordinates directly.
type CuboidRotation struct {
	Perm [3]int
	Sign [3]int
}

// Apply maps a coordinate inside a cuboid of dimension d through the
// rotation.
func (r CuboidRotation) Apply(c Coord, d Dim) Coord {
	src := [3]int{c.X, c.Y, c.Z}
	size := [3]int{d.X, d.Y, d.Z}
	var out [3]int
	for j := 0; j < 3; j++ {
		v := src[r.Perm[j]]
		if r.Sign[j] < 0 {
			v = size[r.Perm[j]] - 1 - v
		}
		out[j] = v
	}
	return Coord{out[0], out[1], out[2]}
}

// ApplyBitboard maps every occupied cell of b through the rotation.
func (r CuboidRotation) ApplyBitboard(b Bitboard, d Dim) Bitboard {
	var out Bitboard
	for i := 0; i < d.Cells(); i++ {
		if b.Test(i) {
			out |= FromCoord(d, r.Apply(d.Coord(i), d))
		}
	}
	return out
}

var permutations3 = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

func permutationParity(p [3]int) int {
	inversions := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}
	return -1
}

// CuboidRotations returns the proper rotation group that maps the cuboid d
// onto itself: the 24 signed-permutation matrices with determinant +1,
// restricted to permutations that only swap axes of equal length (a
// permutation that swaps a length-4 axis with a length-3 axis would not map
// the box back onto itself). For a true cube (Dx=Dy=Dz) this is the full
// order-24 octahedral rotation group; a box with no equal sides has just
// the identity and the three 180-degree rotations through opposite face
// centres (order 4).
func CuboidRotations(d Dim) []CuboidRotation {
	size := [3]int{d.X, d.Y, d.Z}
	out := make([]CuboidRotation, 0, 24)
	for _, perm := range permutations3 {
		if size[perm[0]] != size[0] || size[perm[1]] != size[1] || size[perm[2]] != size[2] {
			continue
		}
		parity := permutationParity(perm)
		for s0 := -1; s0 <= 1; s0 += 2 {
			for s1 := -1; s1 <= 1; s1 += 2 {
				for s2 := -1; s2 <= 1; s2 += 2 {
					if s0*s1*s2*parity != 1 {
						continue
					}
					out = append(out, CuboidRotation{Perm: perm, Sign: [3]int{s0, s1, s2}})
				}
			}
		}
	}
	return out
}
