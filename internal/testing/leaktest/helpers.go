// Package leaktest holds test helpers that catch goroutines and heap growth
// left behind by long-lived components such as the HTTP server and planner.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
	pollEvery   = 10 * time.Millisecond
	bytesPerMB  = 1024 * 1024
)

func settle() {
	runtime.Gosched()
	time.Sleep(settleDelay)
}

// GoroutineChecker compares the goroutine count before and after a block
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	settle()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check waits up to timeout for the count to return within tolerance of the
// baseline, failing the test otherwise
func (g *GoroutineChecker) Check(tolerance int, timeout time.Duration) {
	g.t.Helper()

	target := g.before + tolerance
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		after := runtime.NumGoroutine()
		if after <= target {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, after, tolerance)
			return
		}
		time.Sleep(pollEvery)
	}
}

// MemoryChecker compares live heap before and after a block
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

// NewMemoryChecker records the live heap after a full collection
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: liveHeap(), t: t}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	time.Sleep(drainDelay)
	after := liveHeap()
	growthMB := (float64(after) - float64(m.before)) / bytesPerMB
	if growthMB > maxGrowthMB {
		m.t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(m.before)/bytesPerMB, float64(after)/bytesPerMB, growthMB, maxGrowthMB)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	settle()
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.HeapAlloc
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit within timeout
func CheckNoGoroutineLeak(t testing.TB, timeout time.Duration, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0, timeout)
}

// CheckNoMemoryLeak runs fn and requires the heap it retains to stay under maxGrowthMB
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
