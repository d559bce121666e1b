package sema

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/source"
	"warlang/internal/symbols"
)

type Options struct {
	Reporter diag.Reporter
}

// Checker walks the program once, depth-first, accumulating every
// diagnostic. Unlike the parser it never aborts: the whole unit is
// checked so all semantic errors surface in one run.
type Checker struct {
	builder *ast.Builder
	table   *symbols.Table
	info    *Info
	opts    Options
	scope   symbols.ScopeID
}

// Check analyzes a parsed program. The returned Info is complete even
// when diagnostics were reported; callers decide whether to proceed by
// inspecting their reporter.
func Check(program *ast.Program, builder *ast.Builder, opts Options) *Info {
	table := symbols.NewTable()
	c := Checker{
		builder: builder,
		table:   table,
		info:    newInfo(table),
		opts:    opts,
		scope:   table.NewScope(symbols.NoScopeID, program.Span),
	}

	for _, id := range program.Stmts {
		c.checkStmt(id)
	}
	return c.info
}

func (c *Checker) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if c.opts.Reporter != nil {
		c.opts.Reporter.Report(code, sev, sp, msg, notes)
	}
}

func (c *Checker) errAt(code diag.Code, sp source.Span, msg string) {
	c.report(code, diag.SevError, sp, msg, nil)
}

func (c *Checker) warnAt(code diag.Code, sp source.Span, msg string) {
	c.report(code, diag.SevWarning, sp, msg, nil)
}

// enterScope pushes a child scope for the duration of fn.
func (c *Checker) enterScope(span source.Span, fn func()) {
	saved := c.scope
	c.scope = c.table.NewScope(saved, span)
	fn()
	c.scope = saved
}

func (c *Checker) name(id source.StringID) string {
	return c.builder.MustLookup(id)
}
