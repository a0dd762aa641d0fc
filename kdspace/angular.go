package kdspace

import (
	"math"
	"math/rand"
)

const twoPi = 2 * math.Pi

// wrapDiff returns the signed shortest angular difference b-a, in [-pi, pi].
func wrapDiff(a, b float64) float64 {
	d := math.Mod(b-a, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d < -math.Pi {
		d += twoPi
	}
	return d
}

// SO2 is the circle: angles in [-pi, pi] with wraparound, so pi and -pi are
// the same point and distance never exceeds pi. SetBounds is rejected; the
// circle has no proper sub-rectangle to bound sampling by (see
// SO2Squared for the same restriction).
type SO2 struct{}

// NewSO2 returns a circular angular space.
func NewSO2() *SO2 { return &SO2{} }

func (s *SO2) Dim() int { return 1 }

func (s *SO2) Distance(x, y Point) float64 {
	requireDim("SO2", 1, len(x))
	requireDim("SO2", 1, len(y))
	requireAngle("SO2", x[0])
	requireAngle("SO2", y[0])
	return math.Abs(wrapDiff(x[0], y[0]))
}

// DistanceToRect treats [lo, hi] as a non-wrapping sub-interval of the
// bucket's angular range (buckets never straddle the -pi/pi seam because
// ChooseSplitDimension only ever splits within the range a batch of points
// actually occupies) and returns the circular distance from x to its
// nearest edge.
func (s *SO2) DistanceToRect(x, lo, hi Point) float64 {
	requireDim("SO2", 1, len(x))
	if x[0] >= lo[0] && x[0] <= hi[0] {
		return 0
	}
	dLo := math.Abs(wrapDiff(x[0], lo[0]))
	dHi := math.Abs(wrapDiff(x[0], hi[0]))
	if dLo < dHi {
		return dLo
	}
	return dHi
}

func (s *SO2) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return 0, hi[0] - lo[0]
}

func (s *SO2) SetBounds(lo, hi Point) error {
	unsupportedf("SO2", "SetBounds")
	return nil
}

// supportsBounds lets Composite.SetBounds skip angular sub-spaces instead
// of tripping their fatal-precondition panic.
func (s *SO2) supportsBounds() bool { return false }

func (s *SO2) SampleUniform(rng *rand.Rand, out Point) {
	requireDim("SO2", 1, len(out))
	out[0] = rng.Float64()*twoPi - math.Pi
}

// Interpolate walks the shortest arc from `from` to `to`.
func (s *SO2) Interpolate(from, to Point, t float64, out Point) error {
	requireDim("SO2", 1, len(out))
	d := wrapDiff(from[0], to[0])
	a := from[0] + t*d
	if a > math.Pi {
		a -= twoPi
	} else if a < -math.Pi {
		a += twoPi
	}
	out[0] = a
	return nil
}

// SO2Squared is SO2's squared-distance sibling: Distance and DistanceToRect
// return the squares of SO2's values, so it pairs with L2Squared in a
// composite squared space such as R2SO2Squared.
type SO2Squared struct {
	base SO2
}

// NewSO2Squared returns the squared-distance circular angular space.
func NewSO2Squared() *SO2Squared { return &SO2Squared{} }

func (s *SO2Squared) Dim() int { return 1 }

func (s *SO2Squared) Distance(x, y Point) float64 {
	d := s.base.Distance(x, y)
	return d * d
}

func (s *SO2Squared) DistanceToRect(x, lo, hi Point) float64 {
	d := s.base.DistanceToRect(x, lo, hi)
	return d * d
}

func (s *SO2Squared) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return s.base.ChooseSplitDimension(lo, hi)
}

func (s *SO2Squared) SetBounds(lo, hi Point) error {
	unsupportedf("SO2Squared", "SetBounds")
	return nil
}

func (s *SO2Squared) supportsBounds() bool { return false }

func (s *SO2Squared) SampleUniform(rng *rand.Rand, out Point) { s.base.SampleUniform(rng, out) }

func (s *SO2Squared) Interpolate(from, to Point, t float64, out Point) error {
	return s.base.Interpolate(from, to, t, out)
}
