package geom

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set over cell indices, one bit per cuboid cell.
// Bits above a puzzle's cell range must always be zero.
type Bitboard uint64

// BbZero is the empty cell set.
const BbZero Bitboard = 0

// Full returns the bitboard with the low d.Cells() bits set, representing
// a completely occupied cuboid.
func Full(d Dim) Bitboard {
	n := d.Cells()
	if n >= 64 {
		return ^Bitboard(0)
	}
	return Bitboard(1<<uint(n)) - 1
}

// FromCoord returns the single-bit bitboard for c under dimension d.
func FromCoord(d Dim, c Coord) Bitboard {
	return Bitboard(1) << uint(d.Index(c))
}

// FromCoords returns the union of the single-bit bitboards for cs.
func FromCoords(d Dim, cs []Coord) Bitboard {
	var b Bitboard
	for _, c := range cs {
		b |= FromCoord(d, c)
	}
	return b
}

// Union returns the set union a | b.
func (b Bitboard) Union(o Bitboard) Bitboard { return b | o }

// Intersect returns the set intersection a & b.
func (b Bitboard) Intersect(o Bitboard) Bitboard { return b & o }

// Disjoint reports whether a & b == 0.
func (b Bitboard) Disjoint(o Bitboard) bool { return b&o == 0 }

// Test reports whether bit i is set.
func (b Bitboard) Test(i int) bool { return b&(Bitboard(1)<<uint(i)) != 0 }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// FirstUnset returns the index of the lowest zero bit within [0, cells),
// or cells if every bit in range is set. Used by the search driver to
// pick the next cell the search must address.
func (b Bitboard) FirstUnset(cells int) int {
	return b.FirstUnsetFrom(0, cells)
}

// FirstUnsetFrom is FirstUnset restricted to scanning from a starting
// index onward. The search driver passes the parent node's cursor here:
// since placing a piece only ever fills cells, the next empty cell can
// never be lower than the one just filled.
func (b Bitboard) FirstUnsetFrom(from, cells int) int {
	if from >= cells {
		return cells
	}
	inv := ^uint64(b) >> uint(from)
	if inv == 0 {
		return cells
	}
	idx := from + bits.TrailingZeros64(inv)
	if idx < cells {
		return idx
	}
	return cells
}

// String renders the bitboard as a dense dot/X dump of all 64 bits on a
// single line, lowest bit first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		if b.Test(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
