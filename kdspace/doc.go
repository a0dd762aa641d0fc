// Package kdspace defines the metric-space contract consumed by package
// kdtree, plus the concrete state spaces a motion planner or any other
// nearest-neighbor client typically needs:
//
//	L1, L2, L2Squared  — Euclidean spaces of fixed or runtime dimension
//	Time               — a directed one-dimensional "no time travel" metric
//	SO2, SO2Squared    — angles on the circle, with wraparound
//	SO3, SO3Squared    — unit quaternions, antipodally identified
//	Composite          — a runtime-built Cartesian product of the above
//
// A Space never allocates in its Distance/DistanceToRect hot path; callers
// own the Point slices and pass them by reference.
//
// L2, SO2 and SO3 each have a squared-distance sibling (L2Squared,
// SO2Squared, SO3Squared); L1 and Time have none. L2Squared and SO3Squared
// skip the sqrt per comparison that L2 and SO3 take, so a kdtree built over
// one of them avoids that sqrt in its inner loop, matching the original C++
// port's inner-loop optimization (see DESIGN.md).
package kdspace
