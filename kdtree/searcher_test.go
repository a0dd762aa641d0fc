package kdtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dynkdtree/kdspace"
)

func TestSearcherConsiderKeepsKClosest(t *testing.T) {
	s := NewSearcher[int]()
	s.reset(2, math.Inf(1))
	s.consider(kdspace.Point{5}, 5, 5)
	s.consider(kdspace.Point{1}, 1, 1)
	s.consider(kdspace.Point{3}, 3, 3)

	results := s.Results()
	assert.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Payload)
	assert.Equal(t, 3, results[1].Payload)
}

func TestSearcherConsiderRejectsBeyondRadius(t *testing.T) {
	s := NewSearcher[int]()
	s.reset(0, 2.0)
	s.consider(kdspace.Point{0}, 1, 1.5)
	s.consider(kdspace.Point{0}, 2, 3.0)

	results := s.Results()
	assert.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Payload)
}

func TestSearcherTauShrinksAsHeapFills(t *testing.T) {
	s := NewSearcher[int]()
	s.reset(2, math.Inf(1))
	assert.Equal(t, math.Inf(1), s.tau())
	s.consider(kdspace.Point{10}, 1, 10)
	assert.Equal(t, math.Inf(1), s.tau()) // heap not yet at capacity k=2
	s.consider(kdspace.Point{3}, 2, 3)
	assert.Equal(t, 10.0, s.tau()) // now full; tau is the worst retained
}

func TestSearcherResetClearsHeap(t *testing.T) {
	s := NewSearcher[int]()
	s.reset(1, math.Inf(1))
	s.consider(kdspace.Point{0}, 1, 1)
	assert.Len(t, s.Results(), 1)
	s.Reset()
	assert.Len(t, s.Results(), 0)
}
