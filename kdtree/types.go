package kdtree

import "github.com/katalvlaran/dynkdtree/kdspace"

// Result is one hit from a nearest-neighbor query.
type Result[P any] struct {
	Point    kdspace.Point
	Payload  P
	Distance float64
}

// nodeIndex addresses a node in a Tree's arena. Using an int offset instead
// of a pointer means the arena slice is free to grow (and reallocate) under
// insertion without invalidating any index taken before the growth.
type nodeIndex int32

// noIndex marks an absent child, or the absent root of an empty tree.
const noIndex nodeIndex = -1

// entry is one point stored in a leaf's bucket.
type entry[P any] struct {
	point   kdspace.Point
	payload P
}

// node is one arena slot. A leaf has a non-nil bucket and left == right ==
// noIndex; an internal node has bucket == nil and valid left/right indices.
// lo/hi is the node's axis-aligned bounding rectangle, expanded in place as
// points are inserted beneath it.
type node[P any] struct {
	bucket   []entry[P]
	left     nodeIndex
	right    nodeIndex
	splitDim int
	splitVal float64
	lo, hi   kdspace.Point
	pending  bool
}
