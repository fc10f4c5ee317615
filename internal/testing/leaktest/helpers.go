// Package leaktest wraps goleak with the conventions used by this module's tests.
package leaktest

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyTestMain runs the package's tests and fails the run when goroutines
// are still alive after the last test.
func VerifyTestMain(m *testing.M, opts ...goleak.Option) {
	goleak.VerifyTestMain(m, opts...)
}

// Check snapshots the running goroutines and returns a function that fails t
// if anything started after the snapshot is still running. Use as
// defer leaktest.Check(t)().
func Check(t testing.TB, opts ...goleak.Option) func() {
	t.Helper()
	ignore := goleak.IgnoreCurrent()
	return func() {
		t.Helper()
		goleak.VerifyNone(t, append([]goleak.Option{ignore}, opts...)...)
	}
}

// CheckNoGoroutineLeak runs fn and fails t when fn leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	done := Check(t)
	fn()
	done()
}
