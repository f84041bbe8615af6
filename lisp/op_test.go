package lisp_test

import (
	"testing"

	"github.com/garbagetrash/risp/risptest"
)

func TestIf(t *testing.T) {
	tests := risptest.TestSuite{
		{"branch selection", risptest.TestSequence{
			{"(if true 1 2)", "1"},
			{"(if false 1 2)", "2"},
			{"(if (> 2 1) (+ 1 1) (+ 2 2))", "2"},
			{"(if (if true false true) 1 2)", "2"},
		}},
		{"untaken branch is never evaluated", risptest.TestSequence{
			{"(if true 1 (/ 1))", "1"},
			{"(if false (/ 1) 5)", "5"},
			{"(if (< 10 11 9) asdf (+ 1 (- 3 2)))", "2"},
		}},
		{"extra elements are ignored", risptest.TestSequence{
			{"(if true 1 2 3 4)", "1"},
			{"(if false 1 2 (/ 1))", "2"},
		}},
		{"if errors", risptest.TestSequence{
			{"(if true 1)", "arity-error: `if` expects 3 arguments (got 2)"},
			{"(if 1 2 3)", "type-error: `if` predicate is not a bool: number"},
			{"(if undefined 1 2)", "type-error: `if` predicate is not a bool: symbol"},
		}},
	}
	risptest.RunTestSuite(t, tests)
}

func TestLet(t *testing.T) {
	tests := risptest.TestSuite{
		{"binding", risptest.TestSequence{
			{"(let x 10)", "10"},
			{"x", "10"},
			{"(let x (+ x 1))", "11"},
			{"x", "11"},
			{"(let y x)", "11"},
		}},
		{"extra elements are ignored", risptest.TestSequence{
			{"(let x 6 ignored (/ 1))", "6"},
			{"x", "6"},
		}},
		{"let errors", risptest.TestSequence{
			{"(let x)", "arity-error: `let` expects 2 arguments (got 1)"},
			{"(let (x) 5)", "type-error: `let` name is not a symbol: list"},
			{"(let 5 5)", "type-error: `let` name is not a symbol: number"},
		}},
	}
	risptest.RunTestSuite(t, tests)
}

func TestFn(t *testing.T) {
	tests := risptest.TestSuite{
		{"construction", risptest.TestSequence{
			{"(fn (x) x)", "(x) x"},
			{"(fn (x y) (+ x y))", "(x,y) (+,x,y)"},
			{"(fn () 1)", "() 1"},
		}},
		{"formals validated at application", risptest.TestSequence{
			{"(let f (fn 5 1))", "5 1"},
			{"(f)", "type-error: formal parameters are not a list: number"},
			{"(let g (fn (1) 1))", "(1) 1"},
			{"(g 2)", "type-error: formal parameter is not a symbol: number"},
		}},
		{"fn errors", risptest.TestSequence{
			{"(fn (x))", "arity-error: `fn` expects 2 arguments (got 1)"},
			{"(fn (x) x x)", "arity-error: `fn` expects 2 arguments (got 3)"},
		}},
	}
	risptest.RunTestSuite(t, tests)
}
