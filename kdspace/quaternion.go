package kdspace

import (
	"math"
	"math/rand"
)

// SO3 is the space of 3-D rotations represented as unit quaternions
// (x, y, z, w). Since q and -q represent the same rotation, Distance uses
// the chord-distance surrogate min(||x-y||, ||x+y||) rather than the true
// geodesic angle — cheaper to compute and monotonic in the true angle, which
// is all a kd-tree's ordering and pruning need.
//
// SetBounds and Interpolate are not supported: SO(3) has no natural
// axis-aligned bounding rectangle, and shortest-path interpolation between
// two quaternions is slerp, which this package does not implement (see
// DESIGN.md's Open Question resolution). Both panic via the fatal-
// precondition path rather than silently returning a wrong answer.
type SO3 struct{}

// NewSO3 returns a unit-quaternion rotation space.
func NewSO3() *SO3 { return &SO3{} }

func (s *SO3) Dim() int { return 4 }

func (s *SO3) Distance(x, y Point) float64 {
	requireDim("SO3", 4, len(x))
	requireDim("SO3", 4, len(y))
	return math.Sqrt(antipodalChordSquared(x, y))
}

func (s *SO3) DistanceToRect(x, lo, hi Point) float64 {
	requireDim("SO3", 4, len(x))
	return math.Sqrt(antipodalChordSquaredToRect(x, lo, hi))
}

func (s *SO3) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return chooseSplitDimensionDefault(lo, hi)
}

func (s *SO3) SetBounds(lo, hi Point) error {
	unsupportedf("SO3", "SetBounds")
	return nil
}

// supportsBounds lets Composite.SetBounds skip rotation sub-spaces instead
// of tripping their fatal-precondition panic.
func (s *SO3) supportsBounds() bool { return false }

// SampleUniform draws a uniformly random unit quaternion by normalizing
// four independent standard-normal coordinates (Marsaglia's method).
func (s *SO3) SampleUniform(rng *rand.Rand, out Point) {
	requireDim("SO3", 4, len(out))
	for {
		var n float64
		for i := 0; i < 4; i++ {
			v := rng.NormFloat64()
			out[i] = v
			n += v * v
		}
		if n > 1e-12 {
			n = math.Sqrt(n)
			for i := 0; i < 4; i++ {
				out[i] /= n
			}
			return
		}
	}
}

func (s *SO3) Interpolate(from, to Point, t float64, out Point) error {
	unsupportedf("SO3", "Interpolate")
	return nil
}

// SO3Squared is SO3's squared-distance sibling.
type SO3Squared struct {
	base SO3
}

// NewSO3Squared returns the squared-chord-distance rotation space.
func NewSO3Squared() *SO3Squared { return &SO3Squared{} }

func (s *SO3Squared) Dim() int { return 4 }

func (s *SO3Squared) Distance(x, y Point) float64 {
	requireDim("SO3Squared", 4, len(x))
	requireDim("SO3Squared", 4, len(y))
	return antipodalChordSquared(x, y)
}

func (s *SO3Squared) DistanceToRect(x, lo, hi Point) float64 {
	requireDim("SO3Squared", 4, len(x))
	return antipodalChordSquaredToRect(x, lo, hi)
}

func (s *SO3Squared) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return s.base.ChooseSplitDimension(lo, hi)
}

func (s *SO3Squared) SetBounds(lo, hi Point) error {
	unsupportedf("SO3Squared", "SetBounds")
	return nil
}

func (s *SO3Squared) supportsBounds() bool { return false }

func (s *SO3Squared) SampleUniform(rng *rand.Rand, out Point) { s.base.SampleUniform(rng, out) }

func (s *SO3Squared) Interpolate(from, to Point, t float64, out Point) error {
	unsupportedf("SO3Squared", "Interpolate")
	return nil
}

// antipodalChordSquared returns min(||x-y||^2, ||x+y||^2). It panics via
// faultf if x or y is not unit length (|norm - 1| above about 1e-6).
func antipodalChordSquared(x, y Point) float64 {
	var dMinus, dPlus, nx, ny float64
	for i := 0; i < 4; i++ {
		m := x[i] - y[i]
		p := x[i] + y[i]
		dMinus += m * m
		dPlus += p * p
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}
	const unitSquaredTol = 2e-6
	if math.Abs(nx-1) > unitSquaredTol || math.Abs(ny-1) > unitSquaredTol {
		faultf("SO3: quaternion is not unit length (squared norms %v, %v)", nx, ny)
	}
	if dPlus < dMinus {
		return dPlus
	}
	return dMinus
}

// antipodalChordSquaredToRect lower-bounds antipodalChordSquared(x, y) for
// any unit quaternion y inside the coordinate-wise box [lo, hi], by taking
// the ordinary Euclidean box bound under both the +y and -y identification
// and keeping the smaller. It is a valid (if looser) lower bound: the true
// minimum over the box is at least the minimum over each half taken alone.
func antipodalChordSquaredToRect(x, lo, hi Point) float64 {
	var dMinus, dPlus float64
	for i := 0; i < 4; i++ {
		xm := clamp(x[i], lo[i], hi[i])
		m := xm - x[i]
		dMinus += m * m

		xp := clamp(-x[i], lo[i], hi[i])
		p := xp + x[i]
		dPlus += p * p
	}
	if dPlus < dMinus {
		return dPlus
	}
	return dMinus
}
