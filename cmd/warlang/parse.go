package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/diagfmt"
	"warlang/internal/lexer"
	"warlang/internal/parser"
	"warlang/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.war",
	Short: "Parse a WarLang source file and dump its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	fileID, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("cannot load %s: %w", args[0], err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics(cmd))
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	result := parser.ParseProgram(file, lx, arenas, parser.Options{Reporter: reporter})

	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if !result.Ok {
		return fmt.Errorf("parsing failed")
	}

	diagfmt.DumpProgram(os.Stdout, result.Program, arenas)
	return nil
}
