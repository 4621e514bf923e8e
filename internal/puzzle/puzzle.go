//
// polycube - exhaustive polycube packer
//
// Package puzzle ties a cuboid dimension to its ordered list of
// preprocessed pieces.
//
package puzzle

import (
	"fmt"

	"github.com/fkopp/polycube/internal/geom"
	"github.com/fkopp/polycube/internal/piece"
)

// Def is a raw, unprocessed piece definition as read from the piece file.
type Def struct {
	Name  string
	Glyph byte
	Cells []geom.Coord
}

// Puzzle is a cuboid dimension plus its pieces. The piece ordering here is
// only a canonical identity for reporting; the search driver reorders
// dynamically.
type Puzzle struct {
	Dim    geom.Dim
	Pieces []*piece.Piece
}

// New preprocesses every piece definition against dim and validates that
// their total cell count matches the cuboid exactly.
func New(dim geom.Dim, defs []Def) (*Puzzle, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("puzzle: no pieces supplied")
	}
	pieces := make([]*piece.Piece, 0, len(defs))
	total := 0
	for _, d := range defs {
		p, err := piece.New(d.Name, d.Glyph, d.Cells, dim)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
		total += p.CellCount
	}
	if total != dim.Cells() {
		return nil, fmt.Errorf("puzzle: pieces cover %d cells, cuboid %s has %d", total, dim, dim.Cells())
	}
	return &Puzzle{Dim: dim, Pieces: pieces}, nil
}
