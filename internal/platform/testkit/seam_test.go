package testkit

import (
	"sync"
	"testing"
	"time"
)

var versionSeam = func() string { return "real" }

func TestSwap_RestoresOnCleanup(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &versionSeam, func() string { return "fake" })
		if got := versionSeam(); got != "fake" {
			t.Fatalf("seam = %q, want fake", got)
		}
	})

	// the subtest's cleanup has run by now
	if got := versionSeam(); got != "real" {
		t.Fatalf("seam = %q after cleanup, want real", got)
	}
}

func TestSwap_PlainValue(t *testing.T) {
	limit := 25
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &limit, 100)
		if limit != 100 {
			t.Fatalf("limit = %d, want 100", limit)
		}
	})
	if limit != 25 {
		t.Fatalf("limit = %d after cleanup, want 25", limit)
	}
}

func TestSerial_ExcludesParallelTests(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	active, peak := 0, 0
	enter := func() {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		mu.Unlock()

		time.Sleep(30 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
	}

	// the sequential parent returns only after all parallel children finish
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"first", "second", "third"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				enter()
			})
		}
	})

	mu.Lock()
	defer mu.Unlock()
	if peak != 1 {
		t.Fatalf("peak concurrency = %d under Serial, want 1", peak)
	}
}
