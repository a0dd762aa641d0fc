package kdtree

import (
	deadlock "github.com/sasha-s/go-deadlock"

	"github.com/katalvlaran/dynkdtree/kdspace"
)

// Guarded wraps a Tree with a reader/writer lock so a single writer
// (Add/SplitOutstanding) and any number of concurrent readers (the Search
// family) can share one tree safely. A bare Tree enforces no such
// discipline itself — Guarded is the synchronized façade to reach for once
// more than one goroutine touches the same tree, the same role core.Graph's
// muVert/muEdgeAdj play for graph mutation.
//
// go-deadlock's RWMutex is a drop-in for sync.RWMutex that additionally
// detects lock-order cycles under race-heavy tests; it costs nothing in a
// production build beyond the import.
type Guarded[P any] struct {
	mu   deadlock.RWMutex
	tree *Tree[P]
}

// NewGuarded builds a synchronized tree over space.
func NewGuarded[P any](dim int, space kdspace.Space, opts ...Option) *Guarded[P] {
	return &Guarded[P]{tree: New[P](dim, space, opts...)}
}

// Add inserts point/payload under the write lock.
func (g *Guarded[P]) Add(point kdspace.Point, payload P) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.Add(point, payload)
}

// SplitOutstanding splits pending buckets under the write lock.
func (g *Guarded[P]) SplitOutstanding() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.SplitOutstanding()
}

// Search answers a single-nearest-neighbor query under a read lock.
func (g *Guarded[P]) Search(query kdspace.Point) (Result[P], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Search(query)
}

// SearchKNN answers a k-nearest query under a read lock.
func (g *Guarded[P]) SearchKNN(query kdspace.Point, k int) []Result[P] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.SearchKNN(query, k)
}

// SearchBall answers a radius query under a read lock.
func (g *Guarded[P]) SearchBall(query kdspace.Point, radius float64) []Result[P] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.SearchBall(query, radius)
}

// SearchCapacityLimitedBall answers a capacity-limited radius query under a
// read lock.
func (g *Guarded[P]) SearchCapacityLimitedBall(query kdspace.Point, radius float64, capacity int) []Result[P] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.SearchCapacityLimitedBall(query, radius, capacity)
}

// Size returns the point count under a read lock.
func (g *Guarded[P]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Size()
}

// Space returns the underlying metric space; safe without locking since it
// never changes after construction.
func (g *Guarded[P]) Space() kdspace.Space { return g.tree.Space() }
