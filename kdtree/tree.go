package kdtree

import (
	"math"

	"github.com/katalvlaran/dynkdtree/kdspace"
)

// Tree is a dynamic, bucketed k-d tree over a kdspace.Space. Points are
// added with Add; SearchKNN, SearchBall, and SearchCapacityLimitedBall
// answer nearest-neighbor queries.
//
// A Tree is safe for any number of concurrent readers (Search* and the
// accessors) alongside zero writers, or exactly one writer (Add,
// SplitOutstanding) with no concurrent readers. Use Guarded when a writer
// and readers run at the same time.
type Tree[P any] struct {
	space kdspace.Space
	dim   int
	cfg   config

	nodes   []node[P]
	root    nodeIndex
	size    int
	pending []nodeIndex
}

// Dynamic marks a Tree whose point dimension is not fixed at construction
// time; it is instead taken from the first point passed to Add and
// validated on every subsequent Add/Search call, the same way the original
// port lets a runtime-dimensioned space defer to its first point.
const Dynamic = 0

// New builds an empty tree over space. dim fixes the point dimension every
// Add/Search call must match; pass Dynamic (0) to resolve it from the
// first inserted point instead.
func New[P any](dim int, space kdspace.Space, opts ...Option) *Tree[P] {
	if dim < 0 {
		faultf("New: dimension must be non-negative, got %d", dim)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tree[P]{space: space, dim: dim, cfg: cfg, root: noIndex}
}

// Dim returns the point dimension this tree was built with, or Dynamic (0)
// if it was constructed with Dynamic and no point has been added yet.
func (t *Tree[P]) Dim() int { return t.dim }

// checkQueryDim validates a query point's dimension against t.dim, except
// on a Dynamic tree that has not resolved a dimension yet — there is
// nothing to validate against, and the tree is necessarily still empty.
func (t *Tree[P]) checkQueryDim(got int) {
	if t.dim != Dynamic {
		requireDimPoint(t.dim, got)
	}
}

// Size returns the number of points currently stored.
func (t *Tree[P]) Size() int { return t.size }

// Space returns the metric space this tree was built over.
func (t *Tree[P]) Space() kdspace.Space { return t.space }

// Add inserts point with its payload. If WithAutoSplit is enabled (the
// default) and the containing bucket now exceeds the configured bucket
// size, the bucket splits immediately; otherwise it is marked pending and
// SplitOutstanding must be called before the backlog is reflected in query
// results' node structure (the point itself is found by Search either way —
// an oversized, unsplit bucket is just scanned linearly).
func (t *Tree[P]) Add(point kdspace.Point, payload P) {
	if t.dim == Dynamic {
		if len(point) == 0 {
			faultf("Add: dimension must be positive, got %d", len(point))
		}
		t.dim = len(point)
	} else {
		requireDimPoint(t.dim, len(point))
	}
	pt := point.Clone()

	if t.root == noIndex {
		t.root = t.newLeaf(pt, pt)
	}

	idx := t.root
	for {
		n := &t.nodes[idx]
		expandRect(n.lo, n.hi, pt)
		if n.left == noIndex && n.right == noIndex {
			n.bucket = append(n.bucket, entry[P]{point: pt, payload: payload})
			t.size++
			if len(n.bucket) > t.cfg.bucketSize {
				if t.cfg.autoSplit {
					t.splitNode(idx, 0)
				} else if !n.pending {
					n.pending = true
					t.pending = append(t.pending, idx)
				}
			}
			return
		}
		if pt[n.splitDim] <= n.splitVal {
			idx = n.left
		} else {
			idx = n.right
		}
	}
}

// SplitOutstanding splits every bucket that exceeded its size limit since
// the last call (or since construction), for trees built with
// WithAutoSplit(false). A no-op on a tree that never deferred a split.
func (t *Tree[P]) SplitOutstanding() {
	pending := t.pending
	t.pending = nil
	for _, idx := range pending {
		t.splitNode(idx, 0)
	}
}

// search fills s by a best-first traversal from the root, bounded to k
// results (k <= 0 means unbounded) within maxRadius.
func (t *Tree[P]) search(query kdspace.Point, s *Searcher[P], k int, maxRadius float64) {
	s.reset(k, maxRadius)
	if t.root == noIndex {
		return
	}
	t.searchNode(t.root, query, s)
}

func (t *Tree[P]) searchNode(idx nodeIndex, query kdspace.Point, s *Searcher[P]) {
	n := &t.nodes[idx]
	if n.left == noIndex && n.right == noIndex {
		for _, e := range n.bucket {
			s.consider(e.point, e.payload, t.space.Distance(query, e.point))
		}
		return
	}

	nearIdx, farIdx := n.left, n.right
	if query[n.splitDim] > n.splitVal {
		nearIdx, farIdx = n.right, n.left
	}
	t.searchNode(nearIdx, query, s)

	far := &t.nodes[farIdx]
	if s.shouldExplore(t.space.DistanceToRect(query, far.lo, far.hi)) {
		t.searchNode(farIdx, query, s)
	}
}

// Search returns the single nearest point to query. ok is false on an
// empty tree, in which case the returned Result carries the sentinel
// distance +Inf and an otherwise unspecified (zero-value) payload.
func (t *Tree[P]) Search(query kdspace.Point) (Result[P], bool) {
	t.checkQueryDim(len(query))
	if t.root == noIndex {
		return Result[P]{Distance: math.Inf(1)}, false
	}
	results := t.Searcher().Search(t, query, 1, math.Inf(1))
	if len(results) == 0 {
		return Result[P]{Distance: math.Inf(1)}, false
	}
	return results[0], true
}

// SearchKNN returns the k nearest points to query, ascending by distance.
// Fewer than k results come back only if the tree holds fewer than k
// points.
func (t *Tree[P]) SearchKNN(query kdspace.Point, k int) []Result[P] {
	if k <= 0 {
		faultf("SearchKNN: k must be positive, got %d", k)
	}
	return t.SearchKNNWith(t.Searcher(), query, k)
}

// SearchKNNWith is SearchKNN reusing s's heap storage across calls, to
// avoid a per-query allocation in a hot query loop.
func (t *Tree[P]) SearchKNNWith(s *Searcher[P], query kdspace.Point, k int) []Result[P] {
	if k <= 0 {
		faultf("SearchKNNWith: k must be positive, got %d", k)
	}
	return s.Search(t, query, k, math.Inf(1))
}

// SearchBall returns every point within radius of query, ascending by
// distance.
func (t *Tree[P]) SearchBall(query kdspace.Point, radius float64) []Result[P] {
	return t.SearchBallWith(t.Searcher(), query, radius)
}

// SearchBallWith is SearchBall reusing s's heap storage across calls.
func (t *Tree[P]) SearchBallWith(s *Searcher[P], query kdspace.Point, radius float64) []Result[P] {
	if radius < 0 {
		faultf("SearchBallWith: radius must be non-negative, got %v", radius)
	}
	return s.Search(t, query, 0, radius)
}

// SearchCapacityLimitedBall returns at most capacity points within radius
// of query — the capacity nearest among them when more than capacity
// points qualify — ascending by distance.
func (t *Tree[P]) SearchCapacityLimitedBall(query kdspace.Point, radius float64, capacity int) []Result[P] {
	return t.SearchCapacityLimitedBallWith(t.Searcher(), query, radius, capacity)
}

// SearchCapacityLimitedBallWith is SearchCapacityLimitedBall reusing s's
// heap storage across calls.
func (t *Tree[P]) SearchCapacityLimitedBallWith(s *Searcher[P], query kdspace.Point, radius float64, capacity int) []Result[P] {
	if radius < 0 {
		faultf("SearchCapacityLimitedBallWith: radius must be non-negative, got %v", radius)
	}
	if capacity <= 0 {
		faultf("SearchCapacityLimitedBallWith: capacity must be positive, got %d", capacity)
	}
	return s.Search(t, query, capacity, radius)
}

// Searcher returns a fresh Searcher sized for repeated queries against t.
func (t *Tree[P]) Searcher() *Searcher[P] { return NewSearcher[P]() }
