// Package repl implements the interactive risp session.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/garbagetrash/risp/lisp"
	"github.com/garbagetrash/risp/parser"
)

// RunRepl reads lines from the terminal and evaluates each one as a single
// expression in env. The session ends when the input is closed or the user
// types "exit" (any case). Values print to stdout, errors to stderr, and
// an empty line just prompts again.
func RunRepl(env *lisp.LEnv, prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		errlnf("failed to initialize readline: %v", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			errlnf("failed to read line: %v", err)
			os.Exit(1)
		}

		trimmed := strings.TrimRight(line, " \t\r\n")
		if strings.EqualFold(trimmed, "exit") {
			return
		}
		if trimmed == "" {
			continue
		}

		v, err := parser.Parse(line)
		if err != nil {
			errln(err)
			continue
		}
		r, err := env.Eval(v)
		if err != nil {
			errln(err)
			continue
		}
		fmt.Println(r)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func errlnf(format string, v ...interface{}) {
	errln(fmt.Sprintf(format, v...))
}
