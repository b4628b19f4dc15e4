// Package testutil holds small assertion helpers shared by this module's
// test suites.
package testutil

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// AssertRepr fails t with a unified diff if got != want.  Both strings are
// expected to be ast.Repr() output; the diff makes it obvious which
// sub-expression or statement diverged instead of dumping two long strings.
func AssertRepr(t *testing.T, want, got string) {
	t.Helper()

	if want == got {
		return
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	t.Fatalf("repr mismatch:\n%s", text)
}

// AssertNoError fails t if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

// AssertPanics runs fn and fails t unless it panics.
func AssertPanics(t *testing.T, fn func()) (recovered interface{}) {
	t.Helper()

	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected a panic, got none")
		}
	}()

	fn()
	return nil
}
