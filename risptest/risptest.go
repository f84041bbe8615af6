// Package risptest provides a table-driven runner for language behavior
// tests. Expected results are display strings, so tables read the way a
// session transcript does, and errors are asserted the same way values
// are.
package risptest

import (
	"testing"

	"github.com/garbagetrash/risp/lisp"
	"github.com/garbagetrash/risp/lisp/lisplib"
	"github.com/garbagetrash/risp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially in one lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // display text of the evaluated result, or of its error
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, err := lisp.StandardEnv(lisp.WithLibrary(lisplib.LoadLibrary))
		if err != nil {
			t.Fatalf("test %d %q: failed to initialize environment: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			result := evalString(env, expr.Expr)
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// evalString parses and evaluates one expression, rendering the value or
// the error the way the session loop would.
func evalString(env *lisp.LEnv, text string) string {
	v, err := parser.Parse(text)
	if err != nil {
		return err.Error()
	}
	r, err := env.Eval(v)
	if err != nil {
		return err.Error()
	}
	return r.String()
}
