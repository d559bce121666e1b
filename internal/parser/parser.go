package parser

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/lexer"
	"warlang/internal/source"
	"warlang/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	Program *ast.Program
	// Ok is false when a syntax error aborted the parse. The Program is
	// partial in that case and must not reach later stages.
	Ok bool
}

// Parser holds the state for parsing one file. The first syntax error
// aborts the parse; there is no recovery.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     source.FileID
	opts     Options
	lastSpan source.Span // span of the last consumed token, for end-of-input diagnostics
	failed   bool
}

// ParseProgram is the entry point for parsing one file. It requires an
// already constructed lexer over the file's content.
func ParseProgram(file *source.File, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     file.ID,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	startSpan := p.lx.Peek().Span
	var stmts []ast.StmtID
	for !p.at(token.EOF) {
		id, ok := p.parseStmt()
		if !ok {
			break
		}
		stmts = append(stmts, id)
	}

	prog := &ast.Program{
		File:  file.ID,
		Span:  startSpan.Cover(p.lastSpan),
		Stmts: stmts,
	}
	return Result{Program: prog, Ok: !p.failed}
}

// parseStmt dispatches on the first token of a statement.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwSoldier, token.KwForce, token.KwIntel, token.KwFlag:
		return p.parseDecl(true)
	case token.Ident:
		return p.parseAssign(true)
	case token.KwShield:
		return p.parseIf()
	case token.KwMarch:
		return p.parseWhile()
	case token.KwDeploy:
		return p.parseFor()
	case token.KwShout:
		return p.parseShout()
	case token.KwScout:
		return p.parseScout()
	case token.LBrace:
		return p.parseBlock()
	default:
		peek := p.lx.Peek()
		p.report(diag.SynExpectStatement, diag.SevError, p.getDiagnosticSpan(),
			"expected statement, got "+peek.Kind.Describe())
		return ast.NoStmtID, false
	}
}
