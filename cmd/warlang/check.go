package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warlang/internal/diagfmt"
	"warlang/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.war...",
	Short: "Type-check WarLang source files without emitting code",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "emit diagnostics as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		CheckOnly:      true,
	}

	failed := 0
	for _, path := range args {
		res, err := driver.Compile(path, opts)
		if err != nil {
			return err
		}
		if res.Bag.Len() > 0 {
			if asJSON {
				if err := diagfmt.JSON(os.Stdout, res.Bag, res.FileSet); err != nil {
					return err
				}
			} else {
				diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
					Color:     useColor(cmd, os.Stderr),
					ShowNotes: true,
				})
			}
		}
		if !res.Ok() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
