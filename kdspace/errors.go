// errors.go — sentinel errors and fatal-precondition helpers for kdspace.
//
// Error policy, following lvlath's builder/errors.go convention:
//   - Recoverable failures (descriptor parsing) return a sentinel wrapped
//     with github.com/pkg/errors for caller context; branch with errors.Is.
//   - Unrecoverable failures (a caller violating a documented precondition:
//     wrong dimension, non-unit quaternion, angle outside [-pi, pi], a
//     SetBounds call on an unbounded space, Interpolate on SO3) are
//     programming errors per spec §7 and are reported as a typed panic via
//     github.com/gomlx/exceptions, not as an error return.
package kdspace

import (
	"errors"

	"github.com/gomlx/exceptions"
	pkgerrors "github.com/pkg/errors"
)

// ErrUnknownToken indicates a composite descriptor token did not match any
// known space kind ("SO2", "SO2Squared", "SO3", "SO3Squared", "RnL1:<d>",
// "Rn:<d>", "RnSquared:<d>", or the supplemental "R2SO2"/"R2SO2Squared"/
// "R3SO3"/"R3SO3Squared" aliases).
var ErrUnknownToken = errors.New("kdspace: unknown composite token")

// ErrMissingDimension indicates an "Rn*"-family token was missing its
// ":<d>" dimension suffix, or the suffix was not a positive integer.
var ErrMissingDimension = errors.New("kdspace: missing or invalid dimension suffix")

// ErrEmptyDescriptor indicates ParseComposite was given an empty string.
var ErrEmptyDescriptor = errors.New("kdspace: empty composite descriptor")

// wrapToken attaches the offending token to ErrUnknownToken with context.
func wrapToken(token string) error {
	return pkgerrors.Wrapf(ErrUnknownToken, "token %q", token)
}

// wrapDimension attaches the offending token to ErrMissingDimension.
func wrapDimension(token string) error {
	return pkgerrors.Wrapf(ErrMissingDimension, "token %q", token)
}

// faultf raises a fatal precondition violation. It never returns; callers
// use it in places the original C++ port would assert() or throw.
func faultf(format string, args ...interface{}) {
	exceptions.Panicf("kdspace: "+format, args...)
}

// requireDim panics via faultf if got != want, naming the offending space.
func requireDim(space string, want, got int) {
	if got != want {
		faultf("%s: expected dimension %d, got %d", space, want, got)
	}
}

// requireAngle panics via faultf if a is outside [-pi, pi].
func requireAngle(label string, a float64) {
	const pi = 3.14159265358979323846
	if a < -pi-1e-9 || a > pi+1e-9 {
		faultf("%s: angle %v outside [-pi, pi]", label, a)
	}
}

// unsupportedf formats a message for an operation a space does not
// implement (e.g. Interpolate on SO3, SetBounds on SO2/SO3).
func unsupportedf(space, op string) {
	faultf("%s: %s is not supported", space, op)
}
