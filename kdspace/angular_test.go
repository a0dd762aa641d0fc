package kdspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSO2Wraparound(t *testing.T) {
	sp := NewSO2()
	d := sp.Distance(Point{math.Pi - 0.01}, Point{-math.Pi + 0.01})
	assert.InDelta(t, 0.02, d, 1e-9)
}

func TestSO2DistanceNeverExceedsPi(t *testing.T) {
	sp := NewSO2()
	d := sp.Distance(Point{-math.Pi}, Point{0})
	assert.LessOrEqual(t, d, math.Pi+1e-9)
}

func TestSO2AngleOutOfRangePanics(t *testing.T) {
	sp := NewSO2()
	assert.Panics(t, func() { sp.Distance(Point{4}, Point{0}) })
}

func TestSO2SetBoundsUnsupported(t *testing.T) {
	sp := NewSO2()
	assert.Panics(t, func() { sp.SetBounds(Point{-1}, Point{1}) })
}

func TestSO2SquaredMatchesSquareOfSO2(t *testing.T) {
	plain := NewSO2()
	sq := NewSO2Squared()
	x, y := Point{0.3}, Point{-0.4}
	d := plain.Distance(x, y)
	assert.InDelta(t, d*d, sq.Distance(x, y), 1e-12)
}

func TestSO2InterpolateShortestArc(t *testing.T) {
	sp := NewSO2()
	out := make(Point, 1)
	assert.NoError(t, sp.Interpolate(Point{math.Pi - 0.1}, Point{-math.Pi + 0.1}, 1.0, out))
	assert.InDelta(t, -math.Pi+0.1, out[0], 1e-9)
}
