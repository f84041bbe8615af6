package lisp

import "math"

// Config initializes an environment during StandardEnv construction.
type Config func(env *LEnv) error

// WithBuiltins returns a Config that registers additional procedures.
func WithBuiltins(defs ...LBuiltinDef) Config {
	return func(env *LEnv) error {
		env.AddBuiltins(defs...)
		return nil
	}
}

// WithLibrary returns a Config that runs a package loader against the
// environment.
func WithLibrary(loader func(env *LEnv) error) Config {
	return func(env *LEnv) error {
		return loader(env)
	}
}

// StandardEnv returns a top-level environment with the default builtin and
// special-form tables registered, along with the constant pi. It is the
// starting scope for a session and has no parent.
func StandardEnv(config ...Config) (*LEnv, error) {
	env := NewEnv(nil)
	env.AddBuiltins(DefaultBuiltins()...)
	env.AddBuiltins(DefaultSpecialOps()...)
	env.DefineVariable("pi", Number(math.Pi))
	for _, fn := range config {
		if err := fn(env); err != nil {
			return nil, err
		}
	}
	return env, nil
}
