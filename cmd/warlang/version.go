package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"warlang/internal/version"
)

var versionJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "emit version info as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show warlang build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			payload := struct {
				Tool      string `json:"tool"`
				Version   string `json:"version"`
				GitCommit string `json:"git_commit,omitempty"`
				BuildDate string `json:"build_date,omitempty"`
			}{
				Tool:      "warlang",
				Version:   version.Version,
				GitCommit: version.GitCommit,
				BuildDate: version.BuildDate,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "warlang %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", version.BuildDate)
		}
		return nil
	},
}
