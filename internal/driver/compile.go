package driver

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/lexer"
	"warlang/internal/parser"
	"warlang/internal/pygen"
	"warlang/internal/sema"
	"warlang/internal/source"
)

// Stage identifies how far a compilation got.
type Stage uint8

const (
	StageLoad Stage = iota
	StageParse
	StageCheck
	StageEmit
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	case StageEmit:
		return "emit"
	default:
		return "unknown"
	}
}

type Options struct {
	// MaxDiagnostics caps the bag; 0 falls back to DefaultMaxDiagnostics.
	MaxDiagnostics int
	// CheckOnly stops after semantic analysis without emitting code.
	CheckOnly bool
}

const DefaultMaxDiagnostics = 100

func maxFor(opts Options) int {
	if opts.MaxDiagnostics > 0 {
		return opts.MaxDiagnostics
	}
	return DefaultMaxDiagnostics
}

type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Program *ast.Program
	Info    *sema.Info
	Bag     *diag.Bag
	// Stage is the last stage that ran to completion.
	Stage Stage
	// Output holds the generated Python when Stage == StageEmit.
	Output string
}

// Ok reports whether the compilation produced no errors.
func (r *Result) Ok() bool {
	return !r.Bag.HasErrors()
}

// Compile runs the full pipeline on one file. Lexical and syntax
// errors stop the unit before analysis; semantic diagnostics accumulate
// and are sorted into source order. The error return is reserved for
// internal failures, user problems always land in the bag.
func Compile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		bag := diag.NewBag(maxFor(opts))
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
			"cannot load '"+path+"': "+err.Error()))
		return &Result{FileSet: fs, Bag: bag, Stage: StageLoad}, nil
	}
	return compileFile(fs, fs.Get(fileID), maxFor(opts), opts)
}

// CompileSource compiles in-memory content under a virtual file name.
// The REPL and tests use this path.
func CompileSource(name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return compileFile(fs, fs.Get(fileID), maxFor(opts), opts)
}

func compileFile(fs *source.FileSet, file *source.File, maxDiagnostics int, opts Options) (*Result, error) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	res := &Result{
		FileSet: fs,
		File:    file,
		Bag:     bag,
		Stage:   StageLoad,
	}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	res.Builder = builder

	parsed := parser.ParseProgram(file, lx, builder, parser.Options{Reporter: reporter})
	res.Program = parsed.Program
	if !parsed.Ok || bag.HasErrors() {
		// lexical or syntax errors gate the unit
		return res, nil
	}
	res.Stage = StageParse

	res.Info = sema.Check(parsed.Program, builder, sema.Options{Reporter: reporter})
	bag.Sort()
	if bag.HasErrors() {
		return res, nil
	}
	res.Stage = StageCheck

	if opts.CheckOnly {
		return res, nil
	}

	output, err := pygen.Generate(parsed.Program, builder, res.Info)
	if err != nil {
		bag.Add(diag.NewError(diag.InternalError, parsed.Program.Span, err.Error()))
		return res, err
	}
	res.Output = output
	res.Stage = StageEmit
	return res, nil
}
