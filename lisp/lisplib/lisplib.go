// Package lisplib is used to conveniently load the standard library for the
// risp environment.
package lisplib

import (
	"github.com/garbagetrash/risp/lisp"
	"github.com/garbagetrash/risp/lisp/lisplib/libcomms"
)

// LoadLibrary loads the standard library into env.
func LoadLibrary(env *lisp.LEnv) error {
	if err := libcomms.LoadPackage(env); err != nil {
		return err
	}
	return nil
}
