// Package kdtree implements a dynamic, bucketed k-d tree over an arbitrary
// github.com/katalvlaran/dynkdtree/kdspace.Space: Euclidean, circular,
// quaternion, or a runtime Cartesian composite of these.
//
// Points are inserted incrementally with Add; a bucket of points becomes two
// child buckets once it exceeds the configured size, split along the axis
// the space itself reports as widest. Insertion never blocks on a full
// rebuild: WithAutoSplit(false) defers splitting to an explicit call to
// SplitOutstanding, useful when bulk-loading a batch of points before the
// first query.
//
// A Tree's point dimension is either fixed at construction or, passing
// Dynamic, resolved from the first point given to Add.
//
// Nearest-neighbor queries (Search, SearchKNN, SearchBall,
// SearchCapacityLimitedBall) share one best-first traversal: descend into
// the child straddling the query point first, then prune the sibling
// subtree whenever the space's DistanceToRect lower bound already exceeds
// the worst distance currently retained. A Searcher holds the bounded
// max-heap that traversal fills; reuse one across queries via Searcher.Reset
// to skip its allocation.
//
// A bare Tree is safe for any number of concurrent readers alongside zero
// writers, or exactly one writer alone — the same rule core.Graph follows.
// Guarded adds the reader/writer lock needed when a writer and readers run
// at the same time.
package kdtree
