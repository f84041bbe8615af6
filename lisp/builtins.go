package lisp

import "math"

// LBuiltin is a Go function implementing a lisp procedure. Builtins
// receive their argument expressions unevaluated along with the
// environment of the call site; they evaluate whichever arguments they
// need, which is how control-flow forms avoid evaluating untaken branches.
type LBuiltin func(env *LEnv, args *LVal) (*LVal, error)

// LBuiltinDef is a builtin procedure definition.
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) (*LVal, error)
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) (*LVal, error) {
	return fun.fun(env, args)
}

var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"pow", builtinPow},
	{"cos", unaryMathBuiltin("cos", math.Cos)},
	{"sin", unaryMathBuiltin("sin", math.Sin)},
	{"tan", unaryMathBuiltin("tan", math.Tan)},
	{"acos", unaryMathBuiltin("acos", math.Acos)},
	{"asin", unaryMathBuiltin("asin", math.Asin)},
	{"atan", unaryMathBuiltin("atan", math.Atan)},
	{"log", unaryMathBuiltin("log", math.Log)},
	{"log2", unaryMathBuiltin("log2", math.Log2)},
	{"log10", unaryMathBuiltin("log10", math.Log10)},
	{"sqrt", unaryMathBuiltin("sqrt", math.Sqrt)},
	{"exp", unaryMathBuiltin("exp", math.Exp)},
	{"abs", unaryMathBuiltin("abs", math.Abs)},
	{"=", builtinEq},
	{"!=", builtinNe},
	{">", builtinGT},
	{">=", builtinGE},
	{"<", builtinLT},
	{"<=", builtinLE},
}

// DefaultBuiltins returns the standard procedures registered by
// StandardEnv.
func DefaultBuiltins() []LBuiltinDef {
	defs := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		defs[i] = langBuiltins[i]
	}
	return defs
}

// evalToNumber evaluates v once and requires the result to be a number.
func evalToNumber(env *LEnv, v *LVal) (float64, error) {
	r, err := env.Eval(v)
	if err != nil {
		return 0, err
	}
	if r.Type != LNumber {
		return 0, ErrorConditionf(TypeError, "argument is not a number: %v", r.Type).WithForm(v)
	}
	return r.Num, nil
}

func builtinAdd(env *LEnv, args *LVal) (*LVal, error) {
	sum := 0.0
	for _, c := range args.Cells {
		x, err := evalToNumber(env, c)
		if err != nil {
			return nil, err
		}
		sum += x
	}
	return Number(sum), nil
}

// builtinSub subtracts the sum of the remaining arguments from the first.
func builtinSub(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) < 2 {
		return nil, ErrorConditionf(ArityError, "`-` expects at least 2 arguments (got %d)", len(args.Cells))
	}
	first, err := evalToNumber(env, args.Cells[0])
	if err != nil {
		return nil, err
	}
	rest := 0.0
	for _, c := range args.Cells[1:] {
		x, err := evalToNumber(env, c)
		if err != nil {
			return nil, err
		}
		rest += x
	}
	return Number(first - rest), nil
}

func builtinMul(env *LEnv, args *LVal) (*LVal, error) {
	prod := 1.0
	for _, c := range args.Cells {
		x, err := evalToNumber(env, c)
		if err != nil {
			return nil, err
		}
		prod *= x
	}
	return Number(prod), nil
}

func builtinDiv(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) != 2 {
		return nil, ErrorConditionf(ArityError, "`/` expects 2 arguments (got %d)", len(args.Cells))
	}
	num, err := evalToNumber(env, args.Cells[0])
	if err != nil {
		return nil, err
	}
	den, err := evalToNumber(env, args.Cells[1])
	if err != nil {
		return nil, err
	}
	return Number(num / den), nil
}

func builtinPow(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) != 2 {
		return nil, ErrorConditionf(ArityError, "`pow` expects 2 arguments (got %d)", len(args.Cells))
	}
	base, err := evalToNumber(env, args.Cells[0])
	if err != nil {
		return nil, err
	}
	exp, err := evalToNumber(env, args.Cells[1])
	if err != nil {
		return nil, err
	}
	return Number(math.Pow(base, exp)), nil
}

// unaryMathBuiltin adapts a one-argument float function into a builtin.
func unaryMathBuiltin(name string, fn func(float64) float64) LBuiltin {
	return func(env *LEnv, args *LVal) (*LVal, error) {
		if len(args.Cells) != 1 {
			return nil, ErrorConditionf(ArityError, "`%s` expects 1 argument (got %d)", name, len(args.Cells))
		}
		x, err := evalToNumber(env, args.Cells[0])
		if err != nil {
			return nil, err
		}
		return Number(fn(x)), nil
	}
}

// builtinEq compares its raw first argument against each remaining raw
// argument; sub-expressions are never reduced before comparison.
func builtinEq(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) == 0 {
		return nil, ErrorConditionf(ArityError, "`=` expects at least 1 argument")
	}
	first := args.Cells[0]
	for _, c := range args.Cells[1:] {
		if !first.Equal(c) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func builtinNe(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) == 0 {
		return nil, ErrorConditionf(ArityError, "`!=` expects at least 1 argument")
	}
	first := args.Cells[0]
	for _, c := range args.Cells[1:] {
		if !first.Equal(c) {
			return Bool(true), nil
		}
	}
	return Bool(false), nil
}

// builtinGT and builtinGE evaluate every argument to a number before
// checking pairwise descending order.
func builtinGT(env *LEnv, args *LVal) (*LVal, error) {
	return compareNumeric(env, args, ">", func(a, b float64) bool { return a > b })
}

func builtinGE(env *LEnv, args *LVal) (*LVal, error) {
	return compareNumeric(env, args, ">=", func(a, b float64) bool { return a >= b })
}

// builtinLT and builtinLE never evaluate their arguments; the raw
// expressions are ordered structurally, which coincides with numeric order
// only when every operand is already a number literal.
func builtinLT(env *LEnv, args *LVal) (*LVal, error) {
	return compareStructural(args, "<", func(cmp int) bool { return cmp < 0 })
}

func builtinLE(env *LEnv, args *LVal) (*LVal, error) {
	return compareStructural(args, "<=", func(cmp int) bool { return cmp <= 0 })
}

func compareNumeric(env *LEnv, args *LVal, name string, ordered func(a, b float64) bool) (*LVal, error) {
	if len(args.Cells) == 0 {
		return nil, ErrorConditionf(ArityError, "`%s` expects at least 1 argument", name)
	}
	nums := make([]float64, len(args.Cells))
	for i, c := range args.Cells {
		x, err := evalToNumber(env, c)
		if err != nil {
			return nil, err
		}
		nums[i] = x
	}
	for i := 1; i < len(nums); i++ {
		if !ordered(nums[i-1], nums[i]) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func compareStructural(args *LVal, name string, ordered func(cmp int) bool) (*LVal, error) {
	if len(args.Cells) == 0 {
		return nil, ErrorConditionf(ArityError, "`%s` expects at least 1 argument", name)
	}
	for i := 1; i < len(args.Cells); i++ {
		cmp, ok := args.Cells[i-1].Compare(args.Cells[i])
		if !ok || !ordered(cmp) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}
