package kdspace

import (
	"math"
	"math/rand"
)

// Time models a single scheduling axis where "no time travel" applies: you
// cannot reach a point in time that is earlier than you left. Distance(x, y)
// is y-x when y >= x, and +Inf otherwise, so a planner using Time never
// routes a query backward through the axis.
//
// Time is always one-dimensional; ChooseSplitDimension and Interpolate fall
// back to ordinary Euclidean behavior since there is only one axis to split
// or walk along.
type Time struct {
	lo, hi Point
	bounds bool
}

// NewTime returns a one-dimensional directed time space.
func NewTime() *Time { return &Time{} }

func (s *Time) Dim() int { return 1 }

func (s *Time) Distance(x, y Point) float64 {
	requireDim("Time", 1, len(x))
	requireDim("Time", 1, len(y))
	if y[0] < x[0] {
		return math.Inf(1)
	}
	return y[0] - x[0]
}

// DistanceToRect returns a lower bound on the time needed to reach any point
// in [lo, hi] from x. The rectangle's lower edge is treated as inclusive
// (x[0] == lo[0] counts as reachable at distance 0): the original C++ port
// used a strict "<" here, which rejected the left boundary of its own
// bucket during pruning. See DESIGN.md for the resolution.
func (s *Time) DistanceToRect(x, lo, hi Point) float64 {
	requireDim("Time", 1, len(x))
	if x[0] <= hi[0] {
		if x[0] >= lo[0] {
			return 0
		}
		return lo[0] - x[0]
	}
	return math.Inf(1)
}

func (s *Time) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return 0, hi[0] - lo[0]
}

func (s *Time) SetBounds(lo, hi Point) error {
	requireDim("Time", 1, len(lo))
	requireDim("Time", 1, len(hi))
	s.lo, s.hi = lo.Clone(), hi.Clone()
	s.bounds = true
	return nil
}

func (s *Time) SampleUniform(rng *rand.Rand, out Point) {
	if !s.bounds {
		faultf("Time: SampleUniform called before SetBounds")
	}
	requireDim("Time", 1, len(out))
	u := rng.Float64()*2 - 1
	out[0] = s.lo[0] + (s.hi[0]-s.lo[0])*(u+1)/2
}

func (s *Time) Interpolate(from, to Point, t float64, out Point) error {
	requireDim("Time", 1, len(out))
	out[0] = from[0] + t*(to[0]-from[0])
	return nil
}
