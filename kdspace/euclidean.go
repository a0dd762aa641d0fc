package kdspace

import (
	"math"
	"math/rand"
)

// L2Squared is squared-Euclidean distance: sum((x_i - y_i)^2). It avoids a
// sqrt per comparison and is the space kdtree's hot loop should prefer;
// L2 (a thin wrapper over L2Squared) and L1 (a separate space) are provided
// for callers that need true metric distances (e.g. reporting a radius in
// the caller's native units).
type L2Squared struct {
	dim    int
	lo, hi Point
	bounds bool
}

// NewL2Squared returns a squared-Euclidean space of the given dimension.
func NewL2Squared(dim int) *L2Squared {
	if dim <= 0 {
		faultf("L2Squared: dimension must be positive, got %d", dim)
	}
	return &L2Squared{dim: dim}
}

func (s *L2Squared) Dim() int { return s.dim }

func (s *L2Squared) Distance(x, y Point) float64 {
	requireDim("L2Squared", s.dim, len(x))
	requireDim("L2Squared", s.dim, len(y))
	var d float64
	for i := 0; i < s.dim; i++ {
		diff := x[i] - y[i]
		d += diff * diff
	}
	return d
}

func (s *L2Squared) DistanceToRect(x, lo, hi Point) float64 {
	requireDim("L2Squared", s.dim, len(x))
	var d float64
	for i := 0; i < s.dim; i++ {
		xx := clamp(x[i], lo[i], hi[i])
		diff := xx - x[i]
		d += diff * diff
	}
	return d
}

func (s *L2Squared) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return chooseSplitDimensionDefault(lo, hi)
}

func (s *L2Squared) SetBounds(lo, hi Point) error {
	requireDim("L2Squared", s.dim, len(lo))
	requireDim("L2Squared", s.dim, len(hi))
	s.lo, s.hi = lo.Clone(), hi.Clone()
	s.bounds = true
	return nil
}

// SampleUniform fills out with a uniform sample in [lo, hi], using
// u = 2*rand()-1 in [-1, 1] and x = lo + (hi-lo)*(u+1)/2. This is the fix
// to the `x /= .2` bug noted in spec.md §9 ("Open Questions"): the original
// C++ source scaled by 1/0.2 = 5 instead of 1/2, which pushes samples well
// outside [lo, hi]. See DESIGN.md for the resolution.
func (s *L2Squared) SampleUniform(rng *rand.Rand, out Point) {
	if !s.bounds {
		faultf("L2Squared: SampleUniform called before SetBounds")
	}
	requireDim("L2Squared", s.dim, len(out))
	for i := 0; i < s.dim; i++ {
		u := rng.Float64()*2 - 1
		out[i] = s.lo[i] + (s.hi[i]-s.lo[i])*(u+1)/2
	}
}

func (s *L2Squared) Interpolate(from, to Point, t float64, out Point) error {
	requireDim("L2Squared", s.dim, len(out))
	for i := 0; i < s.dim; i++ {
		out[i] = from[i] + t*(to[i]-from[i])
	}
	return nil
}

// L2 is true Euclidean distance; it dispatches to L2Squared and takes a
// sqrt, per spec.md §4.1's "dispatches to L2²" note.
type L2 struct {
	sq *L2Squared
}

// NewL2 returns a Euclidean space of the given dimension.
func NewL2(dim int) *L2 { return &L2{sq: NewL2Squared(dim)} }

func (s *L2) Dim() int { return s.sq.dim }

func (s *L2) Distance(x, y Point) float64 { return math.Sqrt(s.sq.Distance(x, y)) }

func (s *L2) DistanceToRect(x, lo, hi Point) float64 {
	return math.Sqrt(s.sq.DistanceToRect(x, lo, hi))
}

func (s *L2) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return s.sq.ChooseSplitDimension(lo, hi)
}

func (s *L2) SetBounds(lo, hi Point) error { return s.sq.SetBounds(lo, hi) }

func (s *L2) SampleUniform(rng *rand.Rand, out Point) { s.sq.SampleUniform(rng, out) }

func (s *L2) Interpolate(from, to Point, t float64, out Point) error {
	return s.sq.Interpolate(from, to, t, out)
}

// L1 is the Manhattan (taxicab) distance: sum(|x_i - y_i|).
type L1 struct {
	dim    int
	lo, hi Point
	bounds bool
}

// NewL1 returns an L1 space of the given dimension.
func NewL1(dim int) *L1 {
	if dim <= 0 {
		faultf("L1: dimension must be positive, got %d", dim)
	}
	return &L1{dim: dim}
}

func (s *L1) Dim() int { return s.dim }

func (s *L1) Distance(x, y Point) float64 {
	requireDim("L1", s.dim, len(x))
	requireDim("L1", s.dim, len(y))
	var d float64
	for i := 0; i < s.dim; i++ {
		d += abs(x[i] - y[i])
	}
	return d
}

func (s *L1) DistanceToRect(x, lo, hi Point) float64 {
	requireDim("L1", s.dim, len(x))
	var d float64
	for i := 0; i < s.dim; i++ {
		xx := clamp(x[i], lo[i], hi[i])
		d += abs(xx - x[i])
	}
	return d
}

func (s *L1) ChooseSplitDimension(lo, hi Point) (int, float64) {
	return chooseSplitDimensionDefault(lo, hi)
}

func (s *L1) SetBounds(lo, hi Point) error {
	requireDim("L1", s.dim, len(lo))
	requireDim("L1", s.dim, len(hi))
	s.lo, s.hi = lo.Clone(), hi.Clone()
	s.bounds = true
	return nil
}

func (s *L1) SampleUniform(rng *rand.Rand, out Point) {
	if !s.bounds {
		faultf("L1: SampleUniform called before SetBounds")
	}
	requireDim("L1", s.dim, len(out))
	for i := 0; i < s.dim; i++ {
		u := rng.Float64()*2 - 1
		out[i] = s.lo[i] + (s.hi[i]-s.lo[i])*(u+1)/2
	}
}

func (s *L1) Interpolate(from, to Point, t float64, out Point) error {
	requireDim("L1", s.dim, len(out))
	for i := 0; i < s.dim; i++ {
		out[i] = from[i] + t*(to[i]-from[i])
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
