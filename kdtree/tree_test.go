package kdtree_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynkdtree/kdspace"
	"github.com/katalvlaran/dynkdtree/kdtree"
)

// George/Harold/Melvin: the textbook three-point example, 2-D squared-
// Euclidean, nearest two neighbors of (6,6).
func TestSearchKNNBasicExample(t *testing.T) {
	space := kdspace.NewL2Squared(2)
	tr := kdtree.New[string](2, space)

	tr.Add(kdspace.Point{1, 2}, "George")
	tr.Add(kdspace.Point{5, 5}, "Harold")
	tr.Add(kdspace.Point{10, 1}, "Melvin")

	results := tr.SearchKNN(kdspace.Point{6, 6}, 2)
	require.Len(t, results, 2)
	assert.Equal(t, "Harold", results[0].Payload)
	assert.Equal(t, "Melvin", results[1].Payload)
	assert.Less(t, results[0].Distance, results[1].Distance)
}

func TestSearchKNNRequestingMoreThanStoredReturnsAll(t *testing.T) {
	space := kdspace.NewL2Squared(2)
	tr := kdtree.New[int](2, space)
	tr.Add(kdspace.Point{0, 0}, 1)
	tr.Add(kdspace.Point{1, 1}, 2)

	results := tr.SearchKNN(kdspace.Point{0, 0}, 10)
	assert.Len(t, results, 2)
}

// 5000 points at the same location: the bucket never finds a positive
// split width, so it stays one oversized leaf — searchKNN must still
// return the requested count by scanning it.
func TestDuplicatePointsStillReturnRequestedCount(t *testing.T) {
	space := kdspace.NewL2Squared(3)
	tr := kdtree.New[int](3, space, kdtree.WithBucketSize(32))

	p := kdspace.Point{1, 1, 1}
	for i := 0; i < 5000; i++ {
		tr.Add(p, i)
	}

	results := tr.SearchKNN(kdspace.Point{1, 1, 1}, 80)
	assert.Len(t, results, 80)
	for _, r := range results {
		assert.Zero(t, r.Distance)
	}
}

// Deferred build: insert with auto-split disabled, then call
// SplitOutstanding once before querying; results must match a brute-force
// scan over the same points.
func TestDeferredSplitMatchesBruteForce(t *testing.T) {
	const n, dim = 2000, 4
	space := kdspace.NewL2Squared(dim)
	tr := kdtree.New[int](dim, space, kdtree.WithAutoSplit(false))

	rng := rand.New(rand.NewSource(11))
	points := make([]kdspace.Point, n)
	for i := 0; i < n; i++ {
		p := make(kdspace.Point, dim)
		for d := 0; d < dim; d++ {
			p[d] = rng.Float64() * 100
		}
		points[i] = p
		tr.Add(p, i)
	}
	tr.SplitOutstanding()

	query := kdspace.Point{50, 50, 50, 50}
	got := tr.SearchKNN(query, 5)
	require.Len(t, got, 5)

	type scored struct {
		idx  int
		dist float64
	}
	brute := make([]scored, n)
	for i, p := range points {
		brute[i] = scored{i, space.Distance(query, p)}
	}
	sort.Slice(brute, func(i, j int) bool { return brute[i].dist < brute[j].dist })

	for i, r := range got {
		assert.InDelta(t, brute[i].dist, r.Distance, 1e-9)
	}
}

func TestSearchBallReturnsEverythingWithinRadius(t *testing.T) {
	space := kdspace.NewL2(2)
	tr := kdtree.New[int](2, space)
	for i := 0; i < 20; i++ {
		tr.Add(kdspace.Point{float64(i), 0}, i)
	}

	results := tr.SearchBall(kdspace.Point{0, 0}, 5.5)
	assert.Len(t, results, 6) // points 0..5
	for _, r := range results {
		assert.Less(t, r.Distance, 5.5)
	}
}

// The radius bound is strict: a point sitting exactly on the boundary is
// excluded, matching the original port's ball search.
func TestSearchBallExcludesPointExactlyOnRadius(t *testing.T) {
	space := kdspace.NewL2(2)
	tr := kdtree.New[int](2, space)
	tr.Add(kdspace.Point{5, 0}, 1)

	results := tr.SearchBall(kdspace.Point{0, 0}, 5)
	assert.Empty(t, results)

	results = tr.SearchBall(kdspace.Point{0, 0}, 5.0001)
	assert.Len(t, results, 1)
}

func TestSearchCapacityLimitedBallCapsCount(t *testing.T) {
	space := kdspace.NewL2(2)
	tr := kdtree.New[int](2, space)
	for i := 0; i < 20; i++ {
		tr.Add(kdspace.Point{float64(i), 0}, i)
	}

	results := tr.SearchCapacityLimitedBall(kdspace.Point{0, 0}, 100, 3)
	require.Len(t, results, 3)
	assert.Equal(t, 0, results[0].Payload)
	assert.Equal(t, 1, results[1].Payload)
	assert.Equal(t, 2, results[2].Payload)
}

func TestSO2CompositeSearchRespectsWraparound(t *testing.T) {
	space, err := kdspace.ParseComposite("SO2")
	require.NoError(t, err)
	tr := kdtree.New[string](1, space)

	tr.Add(kdspace.Point{3.1}, "near +pi")
	tr.Add(kdspace.Point{-3.1}, "near -pi")
	tr.Add(kdspace.Point{0}, "zero")

	results := tr.SearchKNN(kdspace.Point{3.13}, 1)
	require.Len(t, results, 1)
	assert.Equal(t, "near +pi", results[0].Payload)
}

func TestSE3CompositeQuaternionAntipodalEquivalence(t *testing.T) {
	space, err := kdspace.ParseComposite("R3SO3")
	require.NoError(t, err)
	tr := kdtree.New[string](7, space)

	q := kdspace.Point{0, 0, 0, 1, 0, 0, 0}
	negQ := kdspace.Point{0, 0, 0, -1, 0, 0, 0}
	tr.Add(q, "identity")

	results := tr.SearchKNN(negQ, 1)
	require.Len(t, results, 1)
	assert.InDelta(t, 0, results[0].Distance, 1e-9)
}

func TestAddWrongDimensionPanics(t *testing.T) {
	space := kdspace.NewL2(3)
	tr := kdtree.New[int](3, space)
	assert.Panics(t, func() { tr.Add(kdspace.Point{0, 0}, 1) })
}

func TestSizeTracksInsertedCount(t *testing.T) {
	space := kdspace.NewL2(2)
	tr := kdtree.New[int](2, space)
	assert.Equal(t, 0, tr.Size())
	tr.Add(kdspace.Point{0, 0}, 1)
	tr.Add(kdspace.Point{1, 1}, 2)
	assert.Equal(t, 2, tr.Size())
}

func TestSearchOnEmptyTreeReturnsInfiniteSentinel(t *testing.T) {
	space := kdspace.NewL2(2)
	tr := kdtree.New[int](2, space)

	result, ok := tr.Search(kdspace.Point{0, 0})
	assert.False(t, ok)
	assert.True(t, math.IsInf(result.Distance, 1))
}

func TestSearchReturnsSingleNearest(t *testing.T) {
	space := kdspace.NewL2Squared(2)
	tr := kdtree.New[string](2, space)
	tr.Add(kdspace.Point{1, 2}, "George")
	tr.Add(kdspace.Point{5, 5}, "Harold")
	tr.Add(kdspace.Point{10, 1}, "Melvin")

	result, ok := tr.Search(kdspace.Point{6, 6})
	require.True(t, ok)
	assert.Equal(t, "Harold", result.Payload)
}

// Dynamic trees take their dimension from the first inserted point and
// enforce it on every subsequent Add/query.
func TestDynamicDimensionResolvedFromFirstPoint(t *testing.T) {
	space := kdspace.NewL2(3)
	tr := kdtree.New[int](kdtree.Dynamic, space)
	assert.Equal(t, kdtree.Dynamic, tr.Dim())

	tr.Add(kdspace.Point{1, 2, 3}, 1)
	assert.Equal(t, 3, tr.Dim())

	assert.Panics(t, func() { tr.Add(kdspace.Point{1, 2}, 2) })

	results := tr.SearchKNN(kdspace.Point{1, 2, 3}, 1)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Payload)
}

// A reusable Searcher drives all three bounded modes (kNN, ball, and
// capacity-limited ball) through Searcher.Search, sharing one heap
// allocation across calls.
func TestSearcherSearchCoversAllBoundedModes(t *testing.T) {
	space := kdspace.NewL2(2)
	tr := kdtree.New[int](2, space)
	for i := 0; i < 10; i++ {
		tr.Add(kdspace.Point{float64(i), 0}, i)
	}
	s := tr.Searcher()

	knn := s.Search(tr, kdspace.Point{0, 0}, 3, math.Inf(1))
	require.Len(t, knn, 3)

	ball := s.Search(tr, kdspace.Point{0, 0}, 0, 2.5)
	require.Len(t, ball, 3) // points 0,1,2

	capped := s.Search(tr, kdspace.Point{0, 0}, 2, 2.5)
	require.Len(t, capped, 2)
}

func TestSearchBallWithAndCapacityLimitedBallWithReuseSearcher(t *testing.T) {
	space := kdspace.NewL2(2)
	tr := kdtree.New[int](2, space)
	for i := 0; i < 10; i++ {
		tr.Add(kdspace.Point{float64(i), 0}, i)
	}
	s := tr.Searcher()

	ball := tr.SearchBallWith(s, kdspace.Point{0, 0}, 2.5)
	assert.Len(t, ball, 3)

	capped := tr.SearchCapacityLimitedBallWith(s, kdspace.Point{0, 0}, 100, 4)
	assert.Len(t, capped, 4)
}
