// errors.go — fatal-precondition helpers for kdtree, following the same
// policy as kdspace/errors.go: a caller violating a documented precondition
// (wrong point dimension, a non-positive bucket size or search count) is a
// programming error, reported as a typed panic via github.com/gomlx/exceptions
// rather than an error return.
package kdtree

import "github.com/gomlx/exceptions"

func faultf(format string, args ...interface{}) {
	exceptions.Panicf("kdtree: "+format, args...)
}

// requireDimPoint panics via faultf if got != want.
func requireDimPoint(want, got int) {
	if got != want {
		faultf("expected point of dimension %d, got %d", want, got)
	}
}
