package search

import (
	"github.com/fkopp/polycube/internal/geom"
	"github.com/fkopp/polycube/internal/puzzle"
)

// Start is one representative starting placement produced by the
// symmetry-breaker: the chosen piece id placed at one placement, with
// every other placement in its orbit known to produce a
// rotation-equivalent tiling and therefore skipped.
type Start struct {
	PieceID   int
	Placement geom.Bitboard
}

// ChooseSymmetryBreaker picks the piece with the fewest placements, the
// best first choice both because it prunes the branching factor earliest
// and because restricting its first move collapses the 24x (or less, for a
// non-cube box) overcount from the whole-cuboid rotation group.
func ChooseSymmetryBreaker(pz *puzzle.Puzzle) int {
	best := 0
	for i, p := range pz.Pieces {
		if len(p.Placements) < len(pz.Pieces[best].Placements) {
			best = i
		}
	}
	return best
}

// StartingPlacements partitions the chosen piece's placements into orbits
// under the cuboid's rotation group and returns one representative per
// orbit. Within an orbit, the representative is the member whose anchor
// cell (its lowest-indexed occupied cell) is most constrained by the other
// pieces: the fewest of their placements cover that anchor cell. This
// mirrors the reference solver's tie-break, a heuristic that tends to
// trigger deep pruning sooner but is not required for correctness.
func StartingPlacements(pz *puzzle.Puzzle, pieceID int) []Start {
	rotations := geom.CuboidRotations(pz.Dim)
	placements := pz.Pieces[pieceID].Placements

	assigned := make([]bool, len(placements))
	index := make(map[geom.Bitboard]int, len(placements))
	for i, pl := range placements {
		index[pl] = i
	}

	anchorCost := anchorConstraintCosts(pz, pieceID)

	var starts []Start
	for i, pl := range placements {
		if assigned[i] {
			continue
		}
		orbit := []int{i}
		assigned[i] = true
		for _, rot := range rotations {
			rotated := rot.ApplyBitboard(pl, pz.Dim)
			if j, ok := index[rotated]; ok && !assigned[j] {
				assigned[j] = true
				orbit = append(orbit, j)
			}
		}
		rep := bestAnchorRepresentative(orbit, placements, anchorCost)
		starts = append(starts, Start{PieceID: pieceID, Placement: placements[rep]})
	}
	return starts
}

// anchorConstraintCosts returns, for every cell, the number of placements
// (across every piece other than excludeID) that cover that cell. Lower is
// more constrained.
func anchorConstraintCosts(pz *puzzle.Puzzle, excludeID int) []int {
	costs := make([]int, pz.Dim.Cells())
	for id, p := range pz.Pieces {
		if id == excludeID {
			continue
		}
		for _, pl := range p.Placements {
			for i := range costs {
				if pl.Test(i) {
					costs[i]++
				}
			}
		}
	}
	return costs
}

// bestAnchorRepresentative returns the index (into placements) of the
// orbit member whose anchor cell has the lowest constraint cost. Ties go to
// the member that comes first in placement-list order.
func bestAnchorRepresentative(orbit []int, placements []geom.Bitboard, anchorCost []int) int {
	best := orbit[0]
	bestCost := costOf(placements[best], anchorCost)
	for _, idx := range orbit[1:] {
		c := costOf(placements[idx], anchorCost)
		if c < bestCost || (c == bestCost && idx < best) {
			best, bestCost = idx, c
		}
	}
	return best
}

func costOf(pl geom.Bitboard, anchorCost []int) int {
	anchor := anchorCell(pl)
	return anchorCost[anchor]
}

// anchorCell returns the lowest-indexed occupied cell of a placement, used
// as its conventional anchor, the origin corner.
func anchorCell(pl geom.Bitboard) int {
	for i := 0; i < 64; i++ {
		if pl.Test(i) {
			return i
		}
	}
	return -1
}
