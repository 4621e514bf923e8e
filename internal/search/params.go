package search

import "runtime"

// Params controls one run of the search driver. Zero values are not
// useful defaults; callers should start from DefaultParams.
type Params struct {
	// Workers is the size of the fixed worker pool the driver fans the
	// top-level starting placements out across.
	Workers int

	// SeedCorners enables the corner-seeding first phase before falling
	// back to plain first-empty-cell branching. Purely a search-order
	// heuristic: disabling it must not change the reported solution
	// count.
	SeedCorners bool

	// SolutionLimit stops the search once this many solutions have been
	// recorded, or runs to exhaustion when zero.
	SolutionLimit uint64
}

// DefaultParams returns the driver defaults: one worker per logical CPU,
// corner-seeding on, no solution cap.
func DefaultParams() Params {
	return Params{
		Workers:     runtime.NumCPU(),
		SeedCorners: true,
	}
}
