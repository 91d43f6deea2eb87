// Package testkit holds small assertion and seam helpers shared by tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic fails the test when fn returns without panicking
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("fn returned without panicking")
		}
	}()
	fn()
}

// MustContain fails the test when sub does not occur in s. The full s is
// written to a temp file so long output stays inspectable.
func MustContain(t *testing.T, s, sub string) {
	t.Helper()
	if strings.Contains(s, sub) {
		return
	}
	dump := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(dump, []byte(s), 0o600)
	t.Fatalf("output missing %q\n\nfull output: %s", sub, dump)
}
