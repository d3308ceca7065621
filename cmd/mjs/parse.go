package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lineCode/mjs-1/internal/astprint"
	"github.com/lineCode/mjs-1/internal/diag"
	"github.com/lineCode/mjs-1/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]...",
	Short: "Parse one or more source files and dump their ASTs",
	Long: `parse dumps the AST of each file named on the command line. With
no file arguments, it looks for an mjs.toml project manifest in the
current directory or an ancestor and parses its [run].main entry file.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		maxFiles, _ := cmd.Flags().GetInt("max-files")
		jobs, _ := cmd.Flags().GetInt("jobs")

		if len(args) == 0 {
			manifest, ok, err := loadProjectManifest(".")
			if err != nil {
				return err
			}
			if !ok {
				return errors.New(noManifestMessage)
			}
			main, err := resolveManifestMain(manifest)
			if err != nil {
				return err
			}
			if manifest.Config.Run.MaxDiagnostics > 0 {
				maxDiag = manifest.Config.Run.MaxDiagnostics
			}
			args = []string{main}
		}

		if len(args) == 1 {
			return parseOne(cmd, args[0], maxDiag)
		}

		results, err := driver.ParseFiles(args, driver.BatchOptions{MaxDiagnostics: maxDiag, MaxFiles: maxFiles, Jobs: jobs})
		if err != nil {
			return err
		}
		failed := false
		for i, res := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n", args[i])
			if res.Bag.Len() > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), diag.Format(res.Bag.Items(), res.FileSet, true))
			}
			if res.Bag.HasErrors() {
				failed = true
				continue
			}
			astprint.File(cmd.OutOrStdout(), res.Builder, res.File)
		}
		if failed {
			return fmt.Errorf("parse failed for one or more files")
		}
		return nil
	},
}

func parseOne(cmd *cobra.Command, path string, maxDiag int) error {
	res, err := driver.ParseFile(path, maxDiag)
	if err != nil {
		return err
	}

	if res.Bag.Len() > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), diag.Format(res.Bag.Items(), res.FileSet, true))
	}
	if res.Bag.HasErrors() {
		return fmt.Errorf("%s: parse failed", path)
	}

	astprint.File(cmd.OutOrStdout(), res.Builder, res.File)
	return nil
}

func init() {
	parseCmd.Flags().Int("max-files", 0, "maximum number of files accepted in a single run (0 = unlimited)")
	parseCmd.Flags().Int("jobs", 0, "maximum concurrent parses (0 = no limit)")
}
