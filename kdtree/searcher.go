package kdtree

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/dynkdtree/kdspace"
)

// candidate is one point under consideration during a query, with its
// distance to the query point already computed.
type candidate[P any] struct {
	point   kdspace.Point
	payload P
	dist    float64
}

// candidateHeap is a max-heap on dist: the root is always the worst
// (largest-distance) candidate currently retained, so Pop discards it when
// a closer candidate arrives and the heap is already at capacity.
type candidateHeap[P any] []candidate[P]

func (h candidateHeap[P]) Len() int            { return len(h) }
func (h candidateHeap[P]) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h candidateHeap[P]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap[P]) Push(x interface{}) { *h = append(*h, x.(candidate[P])) }
func (h *candidateHeap[P]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Searcher holds the bounded max-heap a Tree query traverses against. Reuse
// one across queries to skip the heap's backing-array allocation; Reset
// clears it without releasing the underlying storage.
type Searcher[P any] struct {
	k         int
	maxRadius float64
	heap      candidateHeap[P]
}

// NewSearcher returns an empty Searcher ready for a first query.
func NewSearcher[P any]() *Searcher[P] {
	return &Searcher[P]{}
}

// Reset clears the searcher for reuse, keeping the heap's backing array.
func (s *Searcher[P]) Reset() {
	s.heap = s.heap[:0]
}

func (s *Searcher[P]) reset(k int, maxRadius float64) {
	s.Reset()
	s.k = k
	s.maxRadius = maxRadius
}

// consider folds one candidate point into the bounded result set, keeping
// pt itself (the tree's stored copy) rather than a clone of it. The
// radius bound is strict — { p : distance(q,p) < maxRadius } — matching
// the original port's ball search (main.cpp's `if (d < radius)`); a point
// sitting exactly on the boundary is excluded.
func (s *Searcher[P]) consider(pt kdspace.Point, payload P, dist float64) {
	if dist >= s.maxRadius {
		return
	}
	if s.k <= 0 {
		// Unbounded ball search: every point within radius qualifies.
		heap.Push(&s.heap, candidate[P]{point: pt, payload: payload, dist: dist})
		return
	}
	if len(s.heap) < s.k {
		heap.Push(&s.heap, candidate[P]{point: pt, payload: payload, dist: dist})
		return
	}
	if dist < s.heap[0].dist {
		heap.Pop(&s.heap)
		heap.Push(&s.heap, candidate[P]{point: pt, payload: payload, dist: dist})
	}
}

// tau is the current pruning threshold: a subtree whose DistanceToRect
// lower bound exceeds tau cannot contain anything better than what the
// searcher already retains.
func (s *Searcher[P]) tau() float64 {
	if s.k <= 0 || len(s.heap) < s.k {
		return s.maxRadius
	}
	return s.heap[0].dist
}

func (s *Searcher[P]) shouldExplore(bound float64) bool {
	return bound <= s.tau()
}

// Search drives a full traversal of t against query, reusing s's heap
// storage across calls so a caller issuing many queries (spec's
// million-query workload) pays the heap's backing-array allocation once.
// k <= 0 means no count limit (a ball query); maxRadius caps distance —
// pass math.Inf(1) for an unbounded k-NN query. This is the single entry
// point behind SearchKNNWith, SearchBallWith, and
// SearchCapacityLimitedBallWith; each call still allocates the returned
// result slice.
func (s *Searcher[P]) Search(t *Tree[P], query kdspace.Point, k int, maxRadius float64) []Result[P] {
	t.checkQueryDim(len(query))
	t.search(query, s, k, maxRadius)
	return s.Results()
}

// Results returns the retained candidates ascending by distance.
func (s *Searcher[P]) Results() []Result[P] {
	out := make([]Result[P], len(s.heap))
	for i, c := range s.heap {
		out[i] = Result[P]{Point: c.point, Payload: c.payload, Distance: c.dist}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}
