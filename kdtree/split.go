package kdtree

import "sort"

// splitNode turns an oversized leaf into an internal node with two leaf
// children, splitting along the axis the space reports as widest and at
// that axis's median value (median-of-bucket, not a running median: the
// bucket is fully in memory, so an exact median costs one sort). depth
// guards against runaway recursion on a degenerate space.
//
// A no-op if idx is already internal (already split, e.g. by a prior
// SplitOutstanding pass) or the bucket is within the configured size.
func (t *Tree[P]) splitNode(idx nodeIndex, depth int) {
	n := &t.nodes[idx]
	if n.left != noIndex || n.right != noIndex {
		return
	}
	if len(n.bucket) <= t.cfg.bucketSize {
		n.pending = false
		return
	}
	if depth >= t.cfg.maxDepth {
		// Can't safely recurse further; leave the bucket oversized rather
		// than risk unbounded recursion on a pathological space.
		n.pending = false
		return
	}

	axis, width := t.space.ChooseSplitDimension(n.lo, n.hi)
	if width <= 0 {
		// Every point in this bucket occupies the same position along
		// every axis (e.g. thousands of duplicate points inserted at one
		// location) — nothing to split on.
		n.pending = false
		return
	}

	entries := n.bucket
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].point[axis] < entries[j].point[axis]
	})
	mid := len(entries) / 2
	splitVal := entries[mid].point[axis]
	for mid < len(entries) && entries[mid].point[axis] == splitVal {
		mid++
	}
	if mid == len(entries) {
		// Every point from the median upward ties with splitVal, so a split
		// with ties going left would leave the right child empty; the
		// bucket stays an oversized leaf.
		n.pending = false
		return
	}

	// Cap the left half at its length so a later append to the left child
	// reallocates instead of overwriting the right child's first entry.
	leftEntries, rightEntries := entries[:mid:mid], entries[mid:]
	leftLo, leftHi := boundsOf(leftEntries)
	rightLo, rightHi := boundsOf(rightEntries)

	leftIdx := t.newLeafWithBucket(leftLo, leftHi, leftEntries)
	rightIdx := t.newLeafWithBucket(rightLo, rightHi, rightEntries)

	// newLeafWithBucket may have grown t.nodes and invalidated n.
	n = &t.nodes[idx]
	n.bucket = nil
	n.left = leftIdx
	n.right = rightIdx
	n.splitDim = axis
	n.splitVal = splitVal
	n.pending = false

	if len(leftEntries) > t.cfg.bucketSize {
		t.splitNode(leftIdx, depth+1)
	}
	if len(rightEntries) > t.cfg.bucketSize {
		t.splitNode(rightIdx, depth+1)
	}
}
