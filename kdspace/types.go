package kdspace

import "math/rand"

// Point is a zero-copy view over a state's scalar coordinates. Callers own
// the backing array; Space implementations never retain a Point beyond the
// call in which it was passed.
type Point []float64

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// Space is the contract a metric space provides to package kdtree: a
// distance function, a lower bound on distance to an axis-aligned
// rectangle, a rule for picking the widest split axis, and the sampling /
// interpolation helpers used by planners that embed the tree.
//
// Implementations need not be a true metric — L2Squared violates the
// triangle inequality as stated but satisfies the weaker axiom the tree
// actually relies on: Distance(x, y) >= DistanceToRect(x, lo, hi) for every
// y in [lo, hi].
type Space interface {
	// Dim returns the number of scalar coordinates this space expects. Every
	// space in this package reports a fixed, positive Dim; a Composite
	// reports the sum of its sub-spaces' dimensions.
	Dim() int

	// Distance returns a non-negative scalar; Distance(x, x) == 0.
	Distance(x, y Point) float64

	// DistanceToRect returns a lower bound on Distance(x, y) for every y in
	// the axis-aligned rectangle [lo, hi]. Must be 0 when x is inside the
	// rectangle.
	DistanceToRect(x, lo, hi Point) float64

	// ChooseSplitDimension returns the axis with the greatest hi[i]-lo[i],
	// ties broken by smallest index, along with that width.
	ChooseSplitDimension(lo, hi Point) (axis int, width float64)

	// SetBounds installs a sampling rectangle. Spaces without a natural
	// notion of bounds (SO2, SO3, and their squared variants) reject this.
	SetBounds(lo, hi Point) error

	// SampleUniform fills out with a uniform sample from the space, using
	// rng as the source of randomness. Callers needing determinism own and
	// seed rng themselves (see SPEC_FULL.md §4.1).
	SampleUniform(rng *rand.Rand, out Point)

	// Interpolate fills out with the state at parameter t in [0, 1] along
	// the path from `from` to `to`. Spaces without a defined interpolation
	// (SO3, SO3Squared) panic via the fatal-precondition path.
	Interpolate(from, to Point, t float64, out Point) error
}

// chooseSplitDimensionDefault implements the widest-axis rule shared by
// every concrete space: scan lo/hi and return the axis of greatest width,
// ties going to the smallest index (a strict ">" comparison, not ">=").
func chooseSplitDimensionDefault(lo, hi Point) (axis int, width float64) {
	for i := 0; i < len(lo); i++ {
		w := hi[i] - lo[i]
		if w > width {
			axis = i
			width = w
		}
	}
	return axis, width
}

// clamp returns x restricted to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
