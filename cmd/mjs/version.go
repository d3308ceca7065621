package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lineCode/mjs-1/internal/version"
)

type versionPayload struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		full, _ := cmd.Flags().GetBool("full")
		format, _ := cmd.Flags().GetString("format")

		payload := versionPayload{Version: version.Version}
		if full {
			payload.GitCommit = version.GitCommit
			payload.GitMessage = version.GitMessage
			payload.BuildDate = version.BuildDate
		}

		switch format {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "mjs %s\n", payload.Version)
			if full {
				if payload.GitCommit != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", payload.GitCommit)
				}
				if payload.GitMessage != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "message: %s\n", payload.GitMessage)
				}
				if payload.BuildDate != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", payload.BuildDate)
				}
			}
			return nil
		}
	},
}

func init() {
	versionCmd.Flags().Bool("full", false, "include commit, message, and build date")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}
