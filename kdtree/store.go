package kdtree

import "github.com/katalvlaran/dynkdtree/kdspace"

// newLeaf appends an empty leaf with the given bounding rectangle and
// returns its index.
func (t *Tree[P]) newLeaf(lo, hi kdspace.Point) nodeIndex {
	idx := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node[P]{left: noIndex, right: noIndex, lo: lo.Clone(), hi: hi.Clone()})
	return idx
}

// newLeafWithBucket appends a leaf pre-populated with entries.
func (t *Tree[P]) newLeafWithBucket(lo, hi kdspace.Point, entries []entry[P]) nodeIndex {
	idx := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node[P]{
		bucket: entries,
		left:   noIndex,
		right:  noIndex,
		lo:     lo.Clone(),
		hi:     hi.Clone(),
	})
	return idx
}

// expandRect grows lo/hi in place so the rectangle they describe also
// covers pt.
func expandRect(lo, hi kdspace.Point, pt kdspace.Point) {
	for i := range pt {
		if pt[i] < lo[i] {
			lo[i] = pt[i]
		}
		if pt[i] > hi[i] {
			hi[i] = pt[i]
		}
	}
}

// boundsOf computes the tight axis-aligned bounding rectangle of entries.
// Called only with a non-empty slice.
func boundsOf[P any](entries []entry[P]) (lo, hi kdspace.Point) {
	lo = entries[0].point.Clone()
	hi = entries[0].point.Clone()
	for _, e := range entries[1:] {
		expandRect(lo, hi, e.point)
	}
	return lo, hi
}
