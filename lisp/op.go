package lisp

var langSpecialOps = []*langBuiltin{
	{"if", opIf},
	{"let", opLet},
	{"fn", opLambda},
}

// DefaultSpecialOps returns the control-flow and binding forms registered
// by StandardEnv. Like every procedure they receive raw arguments; they
// are kept in their own table because they exist for their evaluation
// behavior rather than their results.
func DefaultSpecialOps() []LBuiltinDef {
	defs := make([]LBuiltinDef, len(langSpecialOps))
	for i := range langSpecialOps {
		defs[i] = langSpecialOps[i]
	}
	return defs
}

// opIf evaluates the predicate and then exactly one branch, leaving the
// other branch untouched. Elements beyond the first three are ignored.
func opIf(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) < 3 {
		return nil, ErrorConditionf(ArityError, "`if` expects 3 arguments (got %d)", len(args.Cells))
	}
	pred, err := env.Eval(args.Cells[0])
	if err != nil {
		return nil, err
	}
	if pred.Type != LBool {
		return nil, ErrorConditionf(TypeError, "`if` predicate is not a bool: %v", pred.Type).WithForm(args.Cells[0])
	}
	if pred.Bool {
		return env.Eval(args.Cells[1])
	}
	return env.Eval(args.Cells[2])
}

// opLet evaluates its second argument and binds the result in the current
// scope, returning the bound value. The name is taken literally, never
// evaluated. Elements beyond the second are ignored.
func opLet(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) < 2 {
		return nil, ErrorConditionf(ArityError, "`let` expects 2 arguments (got %d)", len(args.Cells))
	}
	name := args.Cells[0]
	if name.Type != LSymbol {
		return nil, ErrorConditionf(TypeError, "`let` name is not a symbol: %v", name.Type).WithForm(name)
	}
	v, err := env.Eval(args.Cells[1])
	if err != nil {
		return nil, err
	}
	env.DefineVariable(name.Str, v)
	return v, nil
}

// opLambda builds a lambda from a formal parameter expression and a single
// body expression. The formals are not inspected until application.
func opLambda(env *LEnv, args *LVal) (*LVal, error) {
	if len(args.Cells) != 2 {
		return nil, ErrorConditionf(ArityError, "`fn` expects 2 arguments (got %d)", len(args.Cells))
	}
	return Lambda(args.Cells[0], args.Cells[1]), nil
}
