package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/driver"
	"github.com/lineCode/mjs-1/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Lex a source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

		res, err := driver.Tokenize(args[0], maxDiag)
		if err != nil {
			return err
		}

		if res.Bag.Len() > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), diag.Format(res.Bag.Items(), res.FileSet, true))
		}

		for _, tok := range res.Tokens {
			if tok.Kind == token.Whitespace || tok.Kind == token.LineTerminator || tok.Kind == token.Comment {
				continue
			}
			start, _ := res.FileSet.Resolve(tok.Span)
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %4d:%-4d %q\n", tok.Kind.String(), start.Line, start.Col, tok.Text)
		}
		return nil
	},
}
