// Package leaktest detects goroutines left behind by workers and schedulers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline to compare against later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(pollInterval)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until the goroutine count is back within tolerance of the
// baseline and fails the test if it never settles
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	if n, ok := settle(g.before+tolerance, settleTimeout); !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, n, n-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and asserts it leaves no goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle waits until at most target goroutines are running
func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
