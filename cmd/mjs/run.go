package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runCmd exists because every other subcommand here implies "and then you'd
// want to execute it" — this command says explicitly why that's not on offer.
// This core builds the heap and the parser; it has no value representation
// for functions, no call stack, and no evaluator, so there is nothing for a
// "run" command to drive. Wire an interpreter against internal/heap and
// internal/ast once one exists; until then this stays a stub.
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "(not implemented) evaluate a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("run: no evaluator is wired to the heap and parser yet; use 'mjs parse' to inspect the AST or 'mjs inspect' to explore the heap")
	},
}
