package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lineCode/mjs-1/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mjs",
	Short: "Tokenizer, parser, and heap inspector for the mjs core",
	Long:  `mjs drives the core's lexer, parser, and garbage-collected heap from the command line.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "color mode (auto|on|off); no command consults it")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to report before giving up on a file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode == "auto" && isTerminal(f))
}
