package lisp

// LEnv is one scope in the environment chain. Symbol values and builtin
// procedures live in separate tables because a procedure name also binds
// itself as a symbol value.
type LEnv struct {
	Scope  map[string]*LVal
	Funcs  map[string]LBuiltin
	Parent *LEnv
}

// NewEnv returns an empty environment whose lookups fall back to parent.
func NewEnv(parent *LEnv) *LEnv {
	return &LEnv{
		Scope:  make(map[string]*LVal),
		Funcs:  make(map[string]LBuiltin),
		Parent: parent,
	}
}

// Get returns the value bound to k, searching enclosing scopes from the
// innermost outward.
func (env *LEnv) Get(k string) (*LVal, bool) {
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetFun returns the builtin procedure registered under k, searching
// enclosing scopes from the innermost outward.
func (env *LEnv) GetFun(k string) (LBuiltin, bool) {
	for e := env; e != nil; e = e.Parent {
		if fn, ok := e.Funcs[k]; ok {
			return fn, true
		}
	}
	return nil, false
}

// DefineVariable binds v to name in this scope, shadowing any binding in an
// enclosing scope.
func (env *LEnv) DefineVariable(name string, v *LVal) {
	env.Scope[name] = v
}

// DefineProcedure registers fn under name. The name also binds itself as a
// symbol value so that evaluating it outside call position yields an
// identifier rather than an error.
func (env *LEnv) DefineProcedure(name string, fn LBuiltin) {
	env.Scope[name] = Symbol(name)
	env.Funcs[name] = fn
}

// AddBuiltins registers defs as procedures in env.
func (env *LEnv) AddBuiltins(defs ...LBuiltinDef) {
	for _, def := range defs {
		env.DefineProcedure(def.Name(), def.Eval)
	}
}

// Eval evaluates v in env. Bools, numbers, and lambdas evaluate to
// themselves. A bound symbol evaluates to its bound value without forcing
// the value any further; an unbound symbol evaluates to itself. Lists are
// call forms.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LBool, LNumber, LLambda:
		return v, nil
	case LSymbol:
		if bound, ok := env.Get(v.Str); ok {
			return bound, nil
		}
		return v, nil
	case LSExpr:
		return env.evalSExpr(v)
	}
	return nil, ErrorConditionf(TypeError, "cannot evaluate %v value", v.Type).WithForm(v)
}

// evalSExpr resolves the head of a call form and dispatches. Builtins are
// consulted before symbol bindings, and either way the argument
// expressions are handed over unevaluated; each procedure evaluates the
// arguments it needs, in the order it chooses.
func (env *LEnv) evalSExpr(v *LVal) (*LVal, error) {
	if len(v.Cells) == 0 {
		return nil, ErrorConditionf(ArityError, "cannot evaluate an empty expression").WithForm(v)
	}
	head, tail := v.Cells[0], v.Cells[1:]
	if head.Type != LSymbol {
		return nil, ErrorConditionf(NotCallable, "cannot call %v value: %v", head.Type, head).WithForm(head)
	}
	if fn, ok := env.GetFun(head.Str); ok {
		return fn(env, SExpr(tail))
	}
	if bound, ok := env.Get(head.Str); ok && bound.Type == LLambda {
		return env.call(bound, tail)
	}
	return nil, ErrorConditionf(UndefinedProcedure, "undefined procedure: %v", head.Str).WithForm(head)
}

// call applies a lambda to raw argument expressions. Formal parameters
// bind the unevaluated arguments, and the new scope's parent is the
// caller's live environment, so free symbols in the body resolve against
// whatever scope is calling (dynamic scope, call by name).
func (env *LEnv) call(fun *LVal, args []*LVal) (*LVal, error) {
	formals := fun.Formals
	if formals.Type != LSExpr {
		return nil, ErrorConditionf(TypeError, "formal parameters are not a list: %v", formals.Type).WithForm(formals)
	}
	if len(args) != len(formals.Cells) {
		return nil, ErrorConditionf(ArityError, "expected %d arguments (got %d)", len(formals.Cells), len(args))
	}
	child := NewEnv(env)
	for i, p := range formals.Cells {
		if p.Type != LSymbol {
			return nil, ErrorConditionf(TypeError, "formal parameter is not a symbol: %v", p.Type).WithForm(p)
		}
		child.DefineVariable(p.Str, args[i])
	}
	return child.Eval(fun.Body)
}
