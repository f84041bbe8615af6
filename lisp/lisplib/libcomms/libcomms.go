// Package libcomms exposes the comms signal graph to risp programs.
package libcomms

import (
	"github.com/garbagetrash/risp/comms"
	"github.com/garbagetrash/risp/lisp"
)

// LoadPackage registers the comms builtins in env against a fresh signal
// graph.
func LoadPackage(env *lisp.LEnv) error {
	g := comms.NewGraph()
	env.DefineProcedure("qpsk", builtinQPSK(g))
	return nil
}

// builtinQPSK queues a QPSK modulator node on the graph. Running the graph
// from the language is not implemented, so after queueing the node the
// builtin reports not-implemented; the one argument names the output node
// the finished integration will connect.
func builtinQPSK(g *comms.Graph) lisp.LBuiltin {
	return func(env *lisp.LEnv, args *lisp.LVal) (*lisp.LVal, error) {
		if len(args.Cells) != 1 {
			return nil, lisp.ErrorConditionf(lisp.ArityError, "`qpsk` expects 1 argument (got %d)", len(args.Cells))
		}
		mod, err := comms.NewQPSKMod()
		if err != nil {
			return nil, err
		}
		g.AddNode(mod)
		return nil, lisp.ErrorConditionf(lisp.NotImplemented, "graph execution is not implemented")
	}
}
