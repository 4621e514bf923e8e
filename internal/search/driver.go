package search

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/op/go-logging"

	"github.com/fkopp/polycube/internal/assert"
	"github.com/fkopp/polycube/internal/geom"
	mylogging "github.com/fkopp/polycube/internal/logging"
	"github.com/fkopp/polycube/internal/puzzle"
)

// Driver is the recursive backtracker, fanned out across a fixed worker
// pool. One Driver runs one puzzle to exhaustion; create a fresh Driver
// per run.
type Driver struct {
	log *logging.Logger

	pz     *puzzle.Puzzle
	params Params

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted
}

// New builds a Driver for pz with the given parameters.
func New(pz *puzzle.Puzzle, params Params) *Driver {
	return &Driver{
		log:           mylogging.GetSearchLog(),
		pz:            pz,
		params:        params,
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
	}
}

// IsSearching reports whether a Run is currently in flight on this Driver.
func (d *Driver) IsSearching() bool {
	if !d.isRunning.TryAcquire(1) {
		return true
	}
	d.isRunning.Release(1)
	return false
}

// Run enumerates every tiling of the puzzle, invoking onSolution once per
// solution found, and emits aggregate statistics once the search is
// exhausted. onSolution may be nil. Run blocks until the
// search is exhausted, the context is cancelled, or SolutionLimit
// solutions have been found.
func (d *Driver) Run(ctx context.Context, onSolution func(*Arrangement)) (Statistics, error) {
	_ = d.initSemaphore.Acquire(ctx, 1)
	_ = d.isRunning.Acquire(ctx, 1)
	defer d.isRunning.Release(1)
	d.initSemaphore.Release(1)

	stats := &Statistics{StartTime: time.Now()}
	sk := newSink(stats, onSolution)

	full := geom.Full(d.pz.Dim)
	pieceID := ChooseSymmetryBreaker(d.pz)
	starts := StartingPlacements(d.pz, pieceID)

	d.log.Infof("search: %d pieces, %d starting placements after symmetry reduction", len(d.pz.Pieces), len(starts))

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workerCount(d.params.Workers)))

	for _, st := range starts {
		st := st
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			return d.runStart(gctx, st, full, stats, sk)
		})
	}

	err := g.Wait()
	stats.Elapsed = time.Since(stats.StartTime)
	d.log.Info(stats.String())
	if err == errSolutionLimit {
		err = nil
	}
	return *stats, err
}

func workerCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// runStart seeds the arrangement with one symmetry-class representative
// and recurses; each call owns an independent Arrangement clone, since
// the arrangement is never shared across workers.
func (d *Driver) runStart(ctx context.Context, st Start, full geom.Bitboard, stats *Statistics, sk *sink) error {
	arr := NewArrangement(len(d.pz.Pieces))
	arr.Push(st.PieceID, st.Placement)
	remaining := removeID(allPieceIDs(len(d.pz.Pieces)), st.PieceID)

	corners := cuboidCorners(d.pz.Dim)
	return d.recurse(ctx, arr, remaining, corners, 0, full, stats, sk)
}

// recurse implements the search node state machine. corners, while
// non-empty and SeedCorners is set, forces the next placement onto the
// next unseeded corner (grounded in the reference solver's two-phase
// solve_corners -> solve_board strategy); once corners are exhausted the
// plain first-empty-cell rule takes over.
func (d *Driver) recurse(ctx context.Context, arr *Arrangement, remaining []int, corners []geom.Coord, cursor int, full geom.Bitboard, stats *Statistics, sk *sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(remaining) == 0 {
		if arr.Occupied == full {
			if d.params.SolutionLimit > 0 && atomic.LoadUint64(&stats.SolutionsFound) >= d.params.SolutionLimit {
				return errSolutionLimit
			}
			sk.emit(arr)
		}
		return nil
	}

	if len(corners) > 0 && d.params.SeedCorners {
		corner := corners[len(corners)-1]
		rest := corners[:len(corners)-1]
		cell := d.pz.Dim.Index(corner)
		if arr.Occupied.Test(cell) {
			// Corner already covered by an earlier (non-corner-seeded)
			// placement; move on to the next corner without branching.
			return d.recurse(ctx, arr, remaining, rest, cursor, full, stats, sk)
		}
		// Corners are not filled in cell-index order, so the first-empty-cell
		// scan that follows the corner phase starts again from cell 0.
		return d.branch(ctx, arr, remaining, cell, rest, 0, full, stats, sk)
	}

	cell := arr.Occupied.FirstUnsetFrom(cursor, d.pz.Dim.Cells())
	return d.branch(ctx, arr, remaining, cell, nil, cell, full, stats, sk)
}

// branch tries every remaining piece's every placement that covers cell,
// applying the pruner before recursing.
func (d *Driver) branch(ctx context.Context, arr *Arrangement, remaining []int, cell int, corners []geom.Coord, nextCursor int, full geom.Bitboard, stats *Statistics, sk *sink) error {
	pieces := d.pz.Pieces
	for i, id := range remaining {
		other := removeAt(remaining, i)
		for _, pl := range pieces[id].Placements {
			if !pl.Test(cell) || !pl.Disjoint(arr.Occupied) {
				continue
			}
			newBoard := arr.Occupied.Union(pl)
			if assert.DEBUG {
				assert.Assert(pl.Disjoint(arr.Occupied), "branch selected a placement overlapping the board")
			}
			stats.addNode()
			if !Survives(pieces, other, newBoard, full) {
				stats.addPruned()
				continue
			}
			arr.Push(id, pl)
			err := d.recurse(ctx, arr, other, corners, nextCursor, full, stats, sk)
			arr.Pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// cuboidCorners returns the eight corner coordinates of the cuboid, one
// per combination of axis extremes, innermost-popped-first ordering
// matching the reference solver's corner list.
func cuboidCorners(d geom.Dim) []geom.Coord {
	var cs []geom.Coord
	for _, x := range [2]int{0, d.X - 1} {
		for _, y := range [2]int{0, d.Y - 1} {
			for _, z := range [2]int{0, d.Z - 1} {
				cs = append(cs, geom.Coord{X: x, Y: y, Z: z})
			}
		}
	}
	return dedupCorners(cs)
}

// dedupCorners removes duplicate corners that arise when an axis has
// extent 1 (so 0 == d.axis-1), which otherwise double-seeds that corner.
func dedupCorners(cs []geom.Coord) []geom.Coord {
	seen := make(map[geom.Coord]struct{}, len(cs))
	out := cs[:0]
	for _, c := range cs {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func allPieceIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func removeID(ids []int, target int) []int {
	out := make([]int, 0, len(ids)-1)
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// removeAt returns a copy of ids with the element at position i removed.
// Cloning on descent is cheap for the small piece counts this solver
// targets.
func removeAt(ids []int, i int) []int {
	out := make([]int, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	out = append(out, ids[i+1:]...)
	return out
}

var errSolutionLimit = &limitError{}

type limitError struct{}

func (*limitError) Error() string { return "search: solution limit reached" }
