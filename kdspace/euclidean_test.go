package kdspace

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL2SquaredDistance(t *testing.T) {
	sp := NewL2Squared(2)
	d := sp.Distance(Point{0, 0}, Point{3, 4})
	assert.Equal(t, 25.0, d)
}

func TestL2Distance(t *testing.T) {
	sp := NewL2(2)
	d := sp.Distance(Point{0, 0}, Point{3, 4})
	assert.Equal(t, 5.0, d)
}

func TestL1Distance(t *testing.T) {
	sp := NewL1(2)
	d := sp.Distance(Point{0, 0}, Point{3, 4})
	assert.Equal(t, 7.0, d)
}

func TestDistanceToRectZeroInside(t *testing.T) {
	sp := NewL2Squared(2)
	d := sp.DistanceToRect(Point{1, 1}, Point{0, 0}, Point{2, 2})
	assert.Zero(t, d)
}

func TestDistanceToRectIsLowerBound(t *testing.T) {
	sp := NewL2Squared(3)
	x := Point{10, 10, 10}
	lo, hi := Point{0, 0, 0}, Point{1, 1, 1}
	bound := sp.DistanceToRect(x, lo, hi)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		y := Point{lo[0] + rng.Float64(), lo[1] + rng.Float64(), lo[2] + rng.Float64()}
		assert.LessOrEqual(t, bound, sp.Distance(x, y))
	}
}

func TestSampleUniformStaysInBounds(t *testing.T) {
	sp := NewL2(3)
	lo, hi := Point{-1, -1, -1}, Point{1, 1, 1}
	require.NoError(t, sp.SetBounds(lo, hi))

	rng := rand.New(rand.NewSource(42))
	out := make(Point, 3)
	for i := 0; i < 1000; i++ {
		sp.SampleUniform(rng, out)
		for d := 0; d < 3; d++ {
			assert.GreaterOrEqual(t, out[d], lo[d])
			assert.LessOrEqual(t, out[d], hi[d])
		}
	}
}

func TestSampleUniformPanicsBeforeSetBounds(t *testing.T) {
	sp := NewL1(2)
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { sp.SampleUniform(rng, make(Point, 2)) })
}

func TestInterpolateMidpoint(t *testing.T) {
	sp := NewL2(2)
	out := make(Point, 2)
	require.NoError(t, sp.Interpolate(Point{0, 0}, Point{2, 4}, 0.5, out))
	assert.Equal(t, Point{1, 2}, out)
}

func TestWrongDimensionPanics(t *testing.T) {
	sp := NewL2(3)
	assert.Panics(t, func() { sp.Distance(Point{0, 0}, Point{0, 0, 0}) })
}
