package ioformat

import (
	"strings"

	"github.com/fkopp/polycube/internal/geom"
	"github.com/fkopp/polycube/internal/puzzle"
	"github.com/fkopp/polycube/internal/search"
)

// Render renders a completed arrangement as one string per Y row, Z
// slices of X glyphs separated by a space. Cells not
// covered by any move (should not occur in a finished arrangement) render
// as '.'.
func Render(arr *search.Arrangement, pz *puzzle.Puzzle) []string {
	cells := pz.Dim.Cells()
	glyphs := make([]byte, cells)
	for i := range glyphs {
		glyphs[i] = '.'
	}
	for _, mv := range arr.Stack {
		g := pz.Pieces[mv.PieceID].Glyph
		for i := 0; i < cells; i++ {
			if mv.Placement.Test(i) {
				glyphs[i] = g
			}
		}
	}

	lines := make([]string, 0, pz.Dim.Y)
	for y := 0; y < pz.Dim.Y; y++ {
		var row strings.Builder
		for z := 0; z < pz.Dim.Z; z++ {
			if z > 0 {
				row.WriteByte(' ')
			}
			for x := 0; x < pz.Dim.X; x++ {
				idx := pz.Dim.Index(geom.Coord{X: x, Y: y, Z: z})
				row.WriteByte(glyphs[idx])
			}
		}
		lines = append(lines, row.String())
	}
	return lines
}
