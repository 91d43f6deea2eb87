package testkit

import (
	"sync"
	"testing"
)

var serialMu sync.Mutex

// Swap points *target at with until the test ends, then restores what
// was there
func Swap[T any](t *testing.T, target *T, with T) {
	t.Helper()
	was := *target
	*target = with
	t.Cleanup(func() { *target = was })
}

// Serial takes a process wide lock for the duration of the test. Tests
// that swap package level seams call it so no two of them run at once.
func Serial(t *testing.T) {
	t.Helper()
	serialMu.Lock()
	t.Cleanup(serialMu.Unlock)
}
