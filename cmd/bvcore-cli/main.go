// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"bvcore/internal/engine"
	"bvcore/internal/termlang"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: bvcore <file.bv>")
		os.Exit(1)
	}

	path := os.Args[1]

	program, err := termlang.ParseFile(path)
	if err != nil {
		// termlang.ParseFile already printed a caret-annotated diagnostic.
		os.Exit(1)
	}

	s := engine.New()
	ev := termlang.NewEval(s)
	if err := ev.Run(program); err != nil {
		color.Red("❌ %s", err)
		os.Exit(1)
	}

	for _, w := range ev.Warnings {
		color.Yellow("⚠ %s", w)
	}

	for _, r := range ev.Results {
		fmt.Printf("%s(%d:%d) -> %s\n", r.Kind, r.Pos.Line, r.Pos.Column, r.Answer)
	}

	if s.SAT.Unsat() {
		color.Red("❌ unsat")
		os.Exit(1)
	}

	color.Green("✅ processed %s (%d vars, %d atoms)", path, s.Vars.Len(), s.Atoms.Len())
}
