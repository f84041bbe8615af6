package risptest

import "testing"

// Lambdas bind formals to raw argument expressions and resolve free symbols
// through the caller's live environment, so a lambda sees redefinitions made
// after it was created.

func TestDynamicScope(t *testing.T) {
	tests := TestSuite{
		{"free symbols track the caller", TestSequence{
			{"(let x 10)", "10"},
			{"(let addx (fn (y) (+ x y)))", "(y) (+,x,y)"},
			{"(addx 1)", "11"},
			{"(let x 99)", "99"},
			{"(addx 1)", "100"},
		}},
		{"formals shadow caller bindings", TestSequence{
			{"(let x 10)", "10"},
			{"(let f (fn (x) (+ x 1)))", "(x) (+,x,1)"},
			{"(f 5)", "6"},
			{"x", "10"},
		}},
		{"call bindings do not leak", TestSequence{
			{"(let f (fn (y) (+ y 1)))", "(y) (+,y,1)"},
			{"(f 2)", "3"},
			{"y", "y"},
		}},
		{"parameters do not pass through nested calls", TestSequence{
			{"(let inc (fn (n) (+ n 1)))", "(n) (+,n,1)"},
			{"(inc 3)", "4"},
			{"(let twice (fn (m) (+ (inc m) (inc m))))", "(m) (+,(inc,m),(inc,m))"},
			{"(twice 3)", "type-error: argument is not a number: symbol"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestCallByNameArguments(t *testing.T) {
	tests := TestSuite{
		{"arguments bind unevaluated", TestSequence{
			{"(let id (fn (x) x))", "(x) x"},
			{"(id (+ 1 2))", "(+,1,2)"},
			{"(id zzz)", "zzz"},
			{"(id 7)", "7"},
		}},
		{"compound arguments defeat numeric coercion", TestSequence{
			{"(let addx (fn (y) (+ 1 y)))", "(y) (+,1,y)"},
			{"(addx 5)", "6"},
			{"(addx (+ 2 3))", "type-error: argument is not a number: list"},
			{"(let five (+ 2 3))", "5"},
			{"(addx five)", "type-error: argument is not a number: symbol"},
		}},
		{"unused arguments are never evaluated", TestSequence{
			{"(let f (fn (a b) a))", "(a,b) a"},
			{"(f 1 (/ 9 0 0))", "1"},
			{"(f 1 zzz)", "1"},
		}},
	}
	RunTestSuite(t, tests)
}
