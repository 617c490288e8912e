// Package testkit provides testing helpers shared across packages
package testkit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// PercentTol is the tolerance for confidences reported with one decimal
const PercentTol = 0.05

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that out contains needle
// on failure the full output lands in a temp file since CLI and log output is often long
func MustContain(t *testing.T, out, needle string) {
	t.Helper()
	if !strings.Contains(out, needle) {
		path := filepath.Join(t.TempDir(), "output.txt")
		_ = os.WriteFile(path, []byte(out), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, path)
	}
}

// Near reports whether a and b differ by less than tol
func Near(a, b, tol float64) bool { return math.Abs(a-b) < tol }

// MustNear fails the test when got is not within tol of want
func MustNear(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	if !Near(got, want, tol) {
		t.Fatalf("%s = %v, want %v (±%v)", what, got, want, tol)
	}
}
