package search

import (
	"github.com/fkopp/polycube/internal/geom"
	"github.com/fkopp/polycube/internal/piece"
)

// simdChunk is the lane width the coverage test pipelines placements in,
// mirroring an aligned vector of eight 64-bit words for a SIMD coverage
// kernel. Go has no portable SIMD intrinsics in the standard library, so
// this batches the scalar comparisons eight at a time instead —
// software-pipelined in the same shape a hardware kernel would take,
// without committing to a specific instruction set (see DESIGN.md).
const simdChunk = 8

// Survives runs both pruner tests against a candidate board for the
// given set of remaining piece ids. It reports false as soon
// as either test fails:
//
//	(a) fit:      every remaining piece has >= 1 placement disjoint from board
//	(b) coverage: the union of all surviving placements covers every empty cell
func Survives(pieces []*piece.Piece, remaining []int, board geom.Bitboard, full geom.Bitboard) bool {
	empty := full &^ board
	if empty == 0 {
		return true
	}

	var coverage geom.Bitboard
	coverageDone := false

	for _, id := range remaining {
		placements := pieces[id].Placements
		survivingCount, contributed := coverageChunked(placements, board, coverageDone)
		if survivingCount == 0 {
			return false // (a) fit test: this piece is stuck
		}
		if !coverageDone {
			coverage |= contributed
			if coverage&empty == empty {
				coverageDone = true
			}
		}
	}

	return coverageDone || coverage&empty == empty
}

// coverageChunked scans placements in batches of simdChunk, counting
// placements disjoint from board and OR-reducing them into an accumulator.
// When skipAccumulate is true (the global coverage union is already known
// to be complete) it still counts survivors for the fit test but skips the
// OR-reduce, since the result would be discarded.
func coverageChunked(placements []geom.Bitboard, board geom.Bitboard, skipAccumulate bool) (survivingCount int, acc geom.Bitboard) {
	n := len(placements)
	for base := 0; base < n; base += simdChunk {
		end := base + simdChunk
		if end > n {
			end = n
		}
		chunk := placements[base:end]
		// "intersects = splat(board) & chunk" then "survived = intersects
		// == 0 ? chunk : 0" for every lane before reducing.
		for _, pl := range chunk {
			if pl.Disjoint(board) {
				survivingCount++
				if !skipAccumulate {
					acc |= pl
				}
			}
		}
	}
	return survivingCount, acc
}
