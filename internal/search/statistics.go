package search

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Statistics are the aggregate, extra data reported after a full run.
// Fields mutated from multiple worker goroutines are atomics;
// StartTime/Elapsed are set once by the driver before/after the fan-out
// and are safe to read after Run returns.
type Statistics struct {
	SolutionsFound uint64
	NodesVisited   uint64
	PrunedNodes    uint64

	StartTime time.Time
	Elapsed   time.Duration
}

// addSolution, addNode and addPruned are called from worker goroutines and
// must only use atomic adds: a single shared statistics struct is touched
// by the search hot path from every worker.
func (s *Statistics) addSolution() { atomic.AddUint64(&s.SolutionsFound, 1) }
func (s *Statistics) addNode()     { atomic.AddUint64(&s.NodesVisited, 1) }
func (s *Statistics) addPruned()   { atomic.AddUint64(&s.PrunedNodes, 1) }

// Rate returns solutions found per second of wall time.
func (s *Statistics) Rate() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(atomic.LoadUint64(&s.SolutionsFound)) / secs
}

func (s *Statistics) String() string {
	return out.Sprintf(
		"solutions=%d nodes=%d pruned=%d elapsed=%s rate=%.2f/s",
		atomic.LoadUint64(&s.SolutionsFound),
		atomic.LoadUint64(&s.NodesVisited),
		atomic.LoadUint64(&s.PrunedNodes),
		s.Elapsed,
		s.Rate(),
	)
}

// sink counts each solution with an atomic add and serialises the
// callback through a single mutex, shared by every worker.
type sink struct {
	mu       sync.Mutex
	stats    *Statistics
	callback func(*Arrangement)
}

func newSink(stats *Statistics, callback func(*Arrangement)) *sink {
	return &sink{stats: stats, callback: callback}
}

func (s *sink) emit(arr *Arrangement) {
	s.stats.addSolution()
	if s.callback == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callback(arr)
}
