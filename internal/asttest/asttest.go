// Package asttest contains test helpers for comparing lowered ASTs.
package asttest

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/minic-lang/minic/ast"
)

// CheckDump renders root with ast.Dump and compares it against want,
// failing the test with a unified diff when they differ.
func CheckDump(t *testing.T, want string, root *ast.Node) {
	t.Helper()
	got := ast.Dump(root)
	if got == want {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("diffing AST dumps: %v", err)
	}
	t.Errorf("AST dump does not match:\n%s", diff)
}
