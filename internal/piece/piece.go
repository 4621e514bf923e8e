//
// polycube - exhaustive polycube packer
//
// Package piece turns a raw cell list into a Piece: its unique
// orientations and the full placement set each orientation produces
// inside a cuboid.
//
package piece

import (
	"fmt"

	"github.com/fkopp/polycube/internal/geom"
)

// Piece is immutable after New returns: its placement set is read-only and
// shared across every goroutine of the search.
type Piece struct {
	Name       string
	Glyph      byte
	Base       geom.Orientation
	CellCount  int
	Placements []geom.Bitboard
}

// New builds a Piece from its display name, glyph and base cell list,
// enumerating every unique orientation and every in-bounds translation of
// each inside the given cuboid.
func New(name string, glyph byte, cells []geom.Coord, dim geom.Dim) (*Piece, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("piece: %q has an empty cell list", name)
	}
	if dup := findDuplicate(cells); dup != nil {
		return nil, fmt.Errorf("piece: %q has duplicate cell %v", name, *dup)
	}

	base := geom.Orientation(cells).Normalise()
	p := &Piece{
		Name:      name,
		Glyph:     glyph,
		Base:      base,
		CellCount: len(cells),
	}

	orientations := geom.UniqueOrientations(base)
	p.Placements = placementsFor(orientations, dim, len(cells))
	if len(p.Placements) == 0 {
		return nil, fmt.Errorf("piece: %q has no valid placement in a %s cuboid", name, dim)
	}
	return p, nil
}

func findDuplicate(cells []geom.Coord) *geom.Coord {
	seen := make(map[geom.Coord]struct{}, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			return &c
		}
		seen[c] = struct{}{}
	}
	return nil
}
