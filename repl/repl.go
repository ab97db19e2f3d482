// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"bvcore/internal/engine"
	"bvcore/internal/termlang"
)

const PROMPT = ">> "

// Start runs a line-at-a-time read-eval-print loop over a single shared
// solver: each line is one term-language form (or several), evaluated
// against the same *engine.Solver so that decl/push/pop state persists
// across lines the way it would across a whole file.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	s := engine.New()
	ev := termlang.NewEval(s)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		program, err := termlang.ParseSource("<repl>", line)
		if err != nil {
			continue // termlang.ParseSource already reported the diagnostic
		}

		if err := ev.Run(program); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}

		for _, w := range ev.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		ev.Warnings = nil

		for _, r := range ev.Results {
			fmt.Fprintf(out, "%s -> %s\n", r.Kind, r.Answer)
		}
		ev.Results = nil

		if s.SAT.Unsat() {
			fmt.Fprintln(out, "unsat")
		}
	}
}
